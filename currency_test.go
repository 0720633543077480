package finanza

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestConvert(t *testing.T) {
	rate := decimal.NewFromInt(50)

	tests := []struct {
		name   string
		amount Money
		to     string
		rate   decimal.Decimal
		want   Money
	}{
		{"identity usd", USD(100), "USD", rate, USD(100)},
		{"identity ves", BS(100), "VES", rate, BS(100)},
		{"identity ignores zero rate", USD(100), "USD", decimal.Zero, USD(100)},
		{"usd to local multiplies", USD(10), "VES", rate, BS(500)},
		{"local to usd divides", BS(500), "USD", rate, USD(10)},
		{"fractional rate", USD(3), "VES", decimal.NewFromFloat(36.5), BS(109.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.amount, tt.to, tt.rate)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Convert() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestConvert_RoundTrip verifies that converting out and back with the same
// rate lands on the exact starting amount.
func TestConvert_RoundTrip(t *testing.T) {
	rate := decimal.NewFromFloat(36.58)
	local, err := Convert(USD(123.45), "VES", rate)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Convert(local, "USD", rate)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(USD(123.45)) {
		t.Errorf("round trip = %v, want %v", back, USD(123.45))
	}
}

func TestConvert_StaleRate(t *testing.T) {
	for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		_, err := Convert(USD(10), "VES", rate)
		var stale *StaleRateError
		if !errors.As(err, &stale) {
			t.Fatalf("Convert() error = %v, want StaleRateError", err)
		}
		if stale.From != "USD" || stale.To != "VES" {
			t.Errorf("StaleRateError = %v, want USD to VES", stale)
		}
	}
}

func TestConvert_NoReferenceLeg(t *testing.T) {
	_, err := Convert(BS(10), "EUR", decimal.NewFromInt(50))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Convert() error = %v, want ValidationError", err)
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile("Venezuela", "")
	if !p.DualCurrency() || p.MainCurrency != "USD" || p.SecondaryCurrency != "VES" {
		t.Errorf("DefaultProfile(Venezuela) = %+v", p)
	}
	p = DefaultProfile("Colombia", "COP")
	if p.DualCurrency() || p.MainCurrency != "COP" {
		t.Errorf("DefaultProfile(Colombia) = %+v", p)
	}
}

package finanza

import (
	"github.com/shopspring/decimal"
)

// ReferenceCurrency is the currency all exchange rates are quoted against:
// a rate of 50 means 50 units of local currency per 1 USD.
const ReferenceCurrency = "USD"

// VES is the Venezuelan bolívar, the local currency of the dual-currency mode.
const VES = "VES"

// Profile is the user-level configuration threaded into the engine: where the
// user lives and which currencies the ledger operates in. SecondaryCurrency
// is empty outside dual-currency mode.
type Profile struct {
	Country           string `yaml:"country"`
	MainCurrency      string `yaml:"mainCurrency"`
	SecondaryCurrency string `yaml:"secondaryCurrency,omitempty"`
}

// DualCurrency reports whether the profile tracks a local currency alongside USD.
func (p Profile) DualCurrency() bool { return p.SecondaryCurrency != "" }

// DefaultProfile returns the profile for a given country. Venezuela gets the
// USD/VES dual-currency mode; everywhere else is single-currency.
func DefaultProfile(country, currency string) Profile {
	if country == "Venezuela" {
		return Profile{Country: country, MainCurrency: ReferenceCurrency, SecondaryCurrency: VES}
	}
	return Profile{Country: country, MainCurrency: currency}
}

// Convert converts amount into the currency 'to' using rate, quoted as local
// units per one ReferenceCurrency unit.
//
// Same-currency conversion is the identity and ignores the rate. Converting
// from USD multiplies by the rate, converting to USD divides by it. A zero or
// negative rate when a conversion is required is a StaleRateError: the engine
// never divides by zero and never silently skips a conversion. Pairs with no
// USD leg are rejected.
func Convert(amount Money, to string, rate decimal.Decimal) (Money, error) {
	from := amount.Currency()
	if from == to {
		return amount, nil
	}
	if !rate.IsPositive() {
		return Money{}, &StaleRateError{From: from, To: to}
	}
	switch {
	case from == ReferenceCurrency:
		return Money{value: amount.value.Mul(rate), cur: to}, nil
	case to == ReferenceCurrency:
		return Money{value: amount.value.Div(rate), cur: to}, nil
	default:
		return Money{}, invalidf("cannot convert %s to %s: no %s leg", from, to, ReferenceCurrency)
	}
}

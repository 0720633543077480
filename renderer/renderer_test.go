package renderer

import (
	"strings"
	"testing"

	"github.com/finanzapro/finanza"
	"github.com/shopspring/decimal"
)

func usd(v float64) finanza.Money { return finanza.M(v, "USD") }

func TestAccounts(t *testing.T) {
	got := Accounts([]finanza.Account{
		{ID: "a1", Name: "Efectivo", Type: finanza.Cash, Currency: "USD", Balance: usd(100), Icon: "💵"},
	})
	for _, want := range []string{"# Cuentas", "| 💵 Efectivo |", "| $100.00 |", "| CASH |"} {
		if !strings.Contains(got, want) {
			t.Errorf("Accounts() missing %q in:\n%s", want, got)
		}
	}

	if got := Accounts(nil); !strings.Contains(got, "No hay cuentas") {
		t.Errorf("Accounts(nil) = %q", got)
	}
}

func TestTransaction(t *testing.T) {
	tests := []struct {
		name string
		tx   finanza.Transaction
		want string
	}{
		{"income", finanza.Transaction{Type: finanza.Income, Amount: usd(250), Date: finanza.NewDate(2025, 4, 1)},
			"Ingreso de $250.00 el 2025-04-01"},
		{"expense with note", finanza.Transaction{Type: finanza.Expense, Amount: usd(10), Date: finanza.NewDate(2025, 4, 2), Note: "Almuerzo"},
			"Gasto de $10.00 el 2025-04-02 (Almuerzo)"},
		{"transfer", finanza.Transaction{Type: finanza.Transfer, Amount: usd(30), Date: finanza.NewDate(2025, 4, 3)},
			"Transferencia de $30.00 el 2025-04-03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transaction(tt.tx); got != tt.want {
				t.Errorf("Transaction() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDebts(t *testing.T) {
	got := Debts([]finanza.Debt{
		{ID: "d1", Name: "Tarjeta", Type: finanza.IOwe, Amount: usd(100), PaidAmount: usd(60)},
		{ID: "d2", Name: "Pedro", Type: finanza.OwesMe, Amount: usd(50), PaidAmount: usd(50), IsPaid: true},
	})
	for _, want := range []string{"Pendiente", "Pagada", "| Tarjeta |", "| Pedro |"} {
		if !strings.Contains(got, want) {
			t.Errorf("Debts() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummary(t *testing.T) {
	l := finanza.NewLedger(finanza.DefaultProfile("Venezuela", ""))
	if _, err := l.AddAccount(finanza.Account{Name: "Efectivo", Type: finanza.Cash, Currency: "USD", Balance: usd(100)}); err != nil {
		t.Fatal(err)
	}
	got := Summary(l, l.GrandTotal(decimal.NewFromInt(50)))
	for _, want := range []string{"# Resumen", "Total USD: $100.00", "Total global: $100.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Summary() missing %q in:\n%s", want, got)
		}
	}
}

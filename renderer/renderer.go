// Package renderer turns ledger state into markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/finanzapro/finanza"
)

// table builds a markdown table with a header row.
type table struct {
	strings.Builder
}

func (t *table) row(cells ...string) {
	t.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}

func (t *table) header(cells ...string) {
	t.row(cells...)
	seps := make([]string, len(cells))
	for i := range seps {
		seps[i] = "---"
	}
	t.row(seps...)
}

// Accounts renders the account list with balances.
func Accounts(accounts []finanza.Account) string {
	var b strings.Builder
	b.WriteString("# Cuentas\n\n")
	if len(accounts) == 0 {
		b.WriteString("No hay cuentas todavía.\n")
		return b.String()
	}
	var t table
	t.header("Cuenta", "Tipo", "Moneda", "Saldo")
	for _, a := range accounts {
		name := a.Name
		if a.Icon != "" {
			name = a.Icon + " " + name
		}
		t.row(name, string(a.Type), a.Currency, a.Balance.String())
	}
	b.WriteString(t.String())
	return b.String()
}

// Transaction renders a one-line description of a transaction.
func Transaction(tx finanza.Transaction) string {
	var verb string
	switch tx.Type {
	case finanza.Income:
		verb = "Ingreso de"
	case finanza.Expense:
		verb = "Gasto de"
	case finanza.Transfer:
		verb = "Transferencia de"
	default:
		return string(tx.Type)
	}
	s := fmt.Sprintf("%s %s el %s", verb, tx.Amount, tx.Date)
	if tx.Note != "" {
		s += fmt.Sprintf(" (%s)", tx.Note)
	}
	return s
}

// Transactions renders the transaction list.
func Transactions(transactions []finanza.Transaction) string {
	var b strings.Builder
	b.WriteString("# Transacciones\n\n")
	if len(transactions) == 0 {
		b.WriteString("No hay transacciones todavía.\n")
		return b.String()
	}
	var t table
	t.header("Fecha", "Tipo", "Monto", "Nota", "ID")
	for _, tx := range transactions {
		t.row(tx.Date.String(), string(tx.Type), tx.Amount.SignedString(), tx.Note, tx.ID)
	}
	b.WriteString(t.String())
	return b.String()
}

// Debts renders the debt list with progress.
func Debts(debts []finanza.Debt) string {
	var b strings.Builder
	b.WriteString("# Deudas\n\n")
	if len(debts) == 0 {
		b.WriteString("No hay deudas registradas.\n")
		return b.String()
	}
	var t table
	t.header("Nombre", "Tipo", "Monto", "Pagado", "Vence", "Estado", "ID")
	for _, d := range debts {
		status := "Pendiente"
		if d.IsPaid {
			status = "Pagada"
		}
		due := ""
		if !d.DueDate.IsZero() {
			due = d.DueDate.String()
		}
		t.row(d.Name, string(d.Type), d.Amount.String(), d.PaidAmount.String(), due, status, d.ID)
	}
	b.WriteString(t.String())
	return b.String()
}

// Recurring renders the recurring template list.
func Recurring(templates []finanza.RecurringTransaction) string {
	var b strings.Builder
	b.WriteString("# Pagos recurrentes\n\n")
	if len(templates) == 0 {
		b.WriteString("No hay pagos recurrentes.\n")
		return b.String()
	}
	var t table
	t.header("Tipo", "Monto", "Frecuencia", "Próximo", "Activo", "Nota", "ID")
	for _, rt := range templates {
		freq := string(rt.Frequency)
		if rt.Frequency == finanza.Custom {
			freq = fmt.Sprintf("%s (%d %s)", rt.Frequency, rt.CustomInterval, rt.CustomUnit)
		}
		active := "sí"
		if !rt.Active {
			active = "no"
		}
		t.row(string(rt.Type), rt.Amount.String(), freq, rt.NextDueDate.String(), active, rt.Note, rt.ID)
	}
	b.WriteString(t.String())
	return b.String()
}

// Summary renders the dashboard: streak, per-currency totals, grand total
// and expenses by category.
func Summary(l *finanza.Ledger, grandTotal finanza.Money) string {
	var b strings.Builder
	profile := l.Profile()
	b.WriteString(fmt.Sprintf("# Resumen al %s\n\n", finanza.Today()))

	streak := l.Streak()
	if streak.Count > 0 {
		b.WriteString(fmt.Sprintf("🔥 Racha: %d día(s)\n\n", streak.Count))
	}

	b.WriteString(fmt.Sprintf("Total %s: %s\n", profile.MainCurrency, l.TotalBalance(profile.MainCurrency)))
	if profile.DualCurrency() {
		b.WriteString(fmt.Sprintf("Total %s: %s\n", profile.SecondaryCurrency, l.TotalBalance(profile.SecondaryCurrency)))
		b.WriteString(fmt.Sprintf("Total global: %s\n", grandTotal))
	}
	b.WriteString("\n")

	expenses := l.ExpensesByCategory(profile.MainCurrency)
	if len(expenses) > 0 {
		b.WriteString("## Gastos por categoría\n\n")
		var t table
		t.header("Categoría", "Total")
		for _, e := range expenses {
			t.row(e.Name, e.Total.String())
		}
		b.WriteString(t.String())
	}
	return b.String()
}

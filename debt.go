package finanza

import (
	"github.com/shopspring/decimal"
)

// DebtType tells which direction a debt runs.
type DebtType string

const (
	IOwe   DebtType = "I_OWE"
	OwesMe DebtType = "OWES_ME"
)

// Debt tracks a named obligation and how much of it has been settled.
//
// Amount is fixed at creation. PaidAmount only grows, through PayDebt, and
// IsPaid holds exactly when PaidAmount has reached Amount.
type Debt struct {
	ID         string
	Name       string // who owes me, or who I owe
	Type       DebtType
	Amount     Money
	PaidAmount Money
	DueDate    Date // optional
	IsPaid     bool
}

// Remaining returns the unpaid part of the debt, never negative.
func (d Debt) Remaining() Money {
	r := d.Amount.Sub(d.PaidAmount)
	if r.IsNegative() {
		return M(0, d.Amount.Currency())
	}
	return r
}

// MarshalJSON implements the json.Marshaler interface with a canonical key order.
func (d Debt) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", d.ID)
	w.Append("name", d.Name)
	w.Append("type", d.Type)
	w.EmbedFrom(d.Amount)
	w.Append("paidAmount", d.PaidAmount.Amount())
	if !d.DueDate.IsZero() {
		w.Append("dueDate", d.DueDate)
	}
	w.Append("isPaid", d.IsPaid)
	return w.MarshalJSON()
}

// jdebt is a specialized struct for decoding json.
type jdebt struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Type       DebtType        `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	PaidAmount decimal.Decimal `json:"paidAmount"`
	DueDate    Date            `json:"dueDate"`
	IsPaid     bool            `json:"isPaid"`
}

func (j jdebt) Debt() Debt {
	return Debt{
		ID:         j.ID,
		Name:       j.Name,
		Type:       j.Type,
		Amount:     M(j.Amount, j.Currency),
		PaidAmount: M(j.PaidAmount, j.Currency),
		DueDate:    j.DueDate,
		IsPaid:     j.IsPaid,
	}
}

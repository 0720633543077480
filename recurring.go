package finanza

import (
	"github.com/shopspring/decimal"
)

// Frequency is a typed string for how often a recurring template fires.
type Frequency string

// Template frequencies. Biweekly is the Venezuelan "quincena", fifteen days.
const (
	Daily    Frequency = "DAILY"
	Weekly   Frequency = "WEEKLY"
	Biweekly Frequency = "BIWEEKLY"
	Monthly  Frequency = "MONTHLY"
	Yearly   Frequency = "YEARLY"
	Custom   Frequency = "CUSTOM"
)

// CustomUnit is the unit of a CUSTOM frequency interval.
type CustomUnit string

const (
	Days   CustomUnit = "DAYS"
	Weeks  CustomUnit = "WEEKS"
	Months CustomUnit = "MONTHS"
	Years  CustomUnit = "YEARS"
)

// recurringNotePrefix marks materialized occurrences as auto-generated.
const recurringNotePrefix = "(Recurrente) "

// defaultRecurringNote is used when the originating transaction had no note.
const defaultRecurringNote = "Pago recurrente"

// RecurringTransaction is a template that the scheduler materializes into
// concrete transactions. Only NextDueDate ever changes after creation, and
// only by advancing one period at a time. Recurring transfers are not
// supported: templates are income or expense only.
type RecurringTransaction struct {
	ID             string
	Amount         Money
	Type           TransactionType
	AccountID      string
	CategoryID     string
	Note           string
	Frequency      Frequency
	CustomInterval int        // CUSTOM only
	CustomUnit     CustomUnit // CUSTOM only
	NextDueDate    Date
	Active         bool
}

// NextDueDate advances a date by one period of the given frequency.
// An unknown frequency falls back to monthly. For CUSTOM, interval defaults
// to 1 and unit to months when unset.
func NextDueDate(from Date, freq Frequency, interval int, unit CustomUnit) Date {
	if interval <= 0 {
		interval = 1
	}
	switch freq {
	case Daily:
		return from.Add(1)
	case Weekly:
		return from.Add(7)
	case Biweekly:
		return from.Add(15)
	case Yearly:
		return from.AddYear(1)
	case Custom:
		switch unit {
		case Days:
			return from.Add(interval)
		case Weeks:
			return from.Add(interval * 7)
		case Years:
			return from.AddYear(interval)
		default:
			return from.AddMonth(interval)
		}
	default:
		return from.AddMonth(1)
	}
}

// advance moves the template's due date forward by one period.
func (r *RecurringTransaction) advance() {
	r.NextDueDate = NextDueDate(r.NextDueDate, r.Frequency, r.CustomInterval, r.CustomUnit)
}

// due reports whether the template should fire on or before today.
func (r *RecurringTransaction) due(today Date) bool {
	return r.Active && !r.NextDueDate.After(today)
}

// MarshalJSON implements the json.Marshaler interface with a canonical key order.
func (r RecurringTransaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("type", r.Type)
	w.EmbedFrom(r.Amount)
	w.Append("accountId", r.AccountID)
	w.Optional("categoryId", r.CategoryID)
	w.Optional("note", r.Note)
	w.Append("frequency", r.Frequency)
	if r.Frequency == Custom {
		w.Append("customInterval", r.CustomInterval)
		w.Append("customUnit", r.CustomUnit)
	}
	w.Append("nextDueDate", r.NextDueDate)
	w.Append("active", r.Active)
	return w.MarshalJSON()
}

// jrecurring is a specialized struct for decoding json.
type jrecurring struct {
	ID             string          `json:"id"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	AccountID      string          `json:"accountId"`
	CategoryID     string          `json:"categoryId"`
	Note           string          `json:"note"`
	Frequency      Frequency       `json:"frequency"`
	CustomInterval int             `json:"customInterval"`
	CustomUnit     CustomUnit      `json:"customUnit"`
	NextDueDate    Date            `json:"nextDueDate"`
	Active         bool            `json:"active"`
}

func (j jrecurring) RecurringTransaction() RecurringTransaction {
	return RecurringTransaction{
		ID:             j.ID,
		Amount:         M(j.Amount, j.Currency),
		Type:           j.Type,
		AccountID:      j.AccountID,
		CategoryID:     j.CategoryID,
		Note:           j.Note,
		Frequency:      j.Frequency,
		CustomInterval: j.CustomInterval,
		CustomUnit:     j.CustomUnit,
		NextDueDate:    j.NextDueDate,
		Active:         j.Active,
	}
}

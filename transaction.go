package finanza

import (
	"github.com/shopspring/decimal"
)

// TransactionType is a typed string for the kind of transaction.
type TransactionType string

// Transaction types recorded in the ledger.
const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// Transaction is a posted ledger record. It is immutable once created; its
// only lifecycle operation is deletion, which reverses its balance effect
// exactly.
//
// Amount is expressed in the source account's currency. For cross-currency
// transfers the receiving leg is recomputed from ExchangeRate, which is
// retained precisely so that deletion can reverse the transfer with the rate
// in force at creation time, not a fresh quote.
type Transaction struct {
	ID           string
	Date         Date
	Type         TransactionType
	Amount       Money
	AccountID    string
	ToAccountID  string // set iff Type is Transfer
	CategoryID   string
	Note         string
	ExchangeRate decimal.Decimal // zero when no conversion occurred
}

// Converted reports whether a cross-currency conversion happened at creation.
func (t Transaction) Converted() bool { return !t.ExchangeRate.IsZero() }

// MarshalJSON implements the json.Marshaler interface with a canonical key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("type", t.Type)
	w.EmbedFrom(t.Amount)
	w.Append("accountId", t.AccountID)
	w.Optional("toAccountId", t.ToAccountID)
	w.Optional("categoryId", t.CategoryID)
	w.Optional("note", t.Note)
	if t.Converted() {
		w.Append("exchangeRate", t.ExchangeRate)
	}
	return w.MarshalJSON()
}

// jtransaction is a specialized struct for decoding json.
type jtransaction struct {
	ID           string          `json:"id"`
	Date         Date            `json:"date"`
	Type         TransactionType `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	AccountID    string          `json:"accountId"`
	ToAccountID  string          `json:"toAccountId"`
	CategoryID   string          `json:"categoryId"`
	Note         string          `json:"note"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

func (j jtransaction) Transaction() Transaction {
	return Transaction{
		ID:           j.ID,
		Date:         j.Date,
		Type:         j.Type,
		Amount:       M(j.Amount, j.Currency),
		AccountID:    j.AccountID,
		ToAccountID:  j.ToAccountID,
		CategoryID:   j.CategoryID,
		Note:         j.Note,
		ExchangeRate: j.ExchangeRate,
	}
}

// TransactionInput carries the user's intent for a new transaction, before
// validation and posting. Amount must be in the source account's currency.
type TransactionInput struct {
	Date         Date
	Type         TransactionType
	Amount       Money
	AccountID    string
	ToAccountID  string // transfers only
	CategoryID   string
	Note         string
	ExchangeRate decimal.Decimal // required only for cross-currency transfers

	// Recurring registers a template alongside the transaction. The posted
	// transaction is the first occurrence; the template's next due date is
	// the second occurrence's date.
	Recurring      bool
	Frequency      Frequency
	CustomInterval int
	CustomUnit     CustomUnit
}

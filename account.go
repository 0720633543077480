package finanza

import "github.com/shopspring/decimal"

// AccountType is a typed string for the kind of account.
type AccountType string

// Account types supported by the tracker.
const (
	Cash    AccountType = "CASH"
	Bank    AccountType = "BANK"
	Wallet  AccountType = "WALLET"
	Savings AccountType = "SAVINGS"
)

// Account is a user account holding a balance in a single currency.
//
// Balance is the only numeric field the engine mutates, and it is mutated
// only through transaction, debt-payment and recurring-materialization
// operations on the Ledger.
type Account struct {
	ID       string
	Name     string
	Type     AccountType
	Currency string
	Balance  Money
	Color    string // hex color for display
	Icon     string // emoji
}

// MarshalJSON implements the json.Marshaler interface with a canonical key order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Append("type", a.Type)
	w.Append("currency", a.Currency)
	w.Append("balance", a.Balance.Amount())
	w.Optional("color", a.Color)
	w.Optional("icon", a.Icon)
	return w.MarshalJSON()
}

// jaccount is a specialized struct for decoding json.
type jaccount struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Type     AccountType     `json:"type"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
}

func (j jaccount) Account() Account {
	return Account{
		ID:       j.ID,
		Name:     j.Name,
		Type:     j.Type,
		Currency: j.Currency,
		Balance:  M(j.Balance, j.Currency),
		Color:    j.Color,
		Icon:     j.Icon,
	}
}

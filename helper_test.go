package finanza

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// BS is a helper for test to create bolívar money from const
func BS(v float64) Money { return M(v, "VES") }

// testProfile is the dual-currency Venezuela profile used across tests.
var testProfile = Profile{Country: "Venezuela", MainCurrency: "USD", SecondaryCurrency: "VES"}

// testLedger creates a ledger with one USD and one VES account, named "usd"
// and "ves", and returns it.
func testLedger(usdBalance, vesBalance float64) *Ledger {
	l := NewLedger(testProfile)
	l.accounts = []Account{
		{ID: "usd", Name: "Efectivo USD", Type: Cash, Currency: "USD", Balance: USD(usdBalance), Icon: "💵"},
		{ID: "ves", Name: "Banco Bs", Type: Bank, Currency: "VES", Balance: BS(vesBalance), Icon: "🏦"},
	}
	return l
}

// balance returns the balance of the account with this id, panicking on an
// unknown id to keep test call sites short.
func balance(l *Ledger, id string) Money {
	a, ok := l.Account(id)
	if !ok {
		panic("unknown test account " + id)
	}
	return a.Balance
}

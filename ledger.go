package finanza

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Notifier receives user-facing outcomes from the engine ("N transactions
// generated", streak kept). Presentation is the caller's concern.
type Notifier func(kind, title, message string)

// Ledger is the single state container owning every collection of the
// tracker: accounts, transactions, debts, recurring templates, the category
// directory and the streak cursor.
//
// All balance mutations flow through its methods, one at a time. A method
// either applies fully or rejects with an error before any state change.
type Ledger struct {
	profile      Profile
	accounts     []Account
	transactions []Transaction
	debts        []Debt
	recurring    []RecurringTransaction
	categories   []Category
	streak       Streak
	notify       Notifier
}

// NewLedger creates an empty ledger with the default category directory.
func NewLedger(profile Profile) *Ledger {
	return &Ledger{
		profile:    profile,
		categories: DefaultCategories(),
	}
}

// SetNotifier installs the user-facing notification callback. A nil notifier
// silently drops notifications.
func (l *Ledger) SetNotifier(n Notifier) { l.notify = n }

func (l *Ledger) notifyf(kind, title, format string, args ...any) {
	if l.notify != nil {
		l.notify(kind, title, fmt.Sprintf(format, args...))
	}
}

// Profile returns the user profile the ledger operates under.
func (l *Ledger) Profile() Profile { return l.profile }

// SetProfile replaces the user profile.
func (l *Ledger) SetProfile(p Profile) { l.profile = p }

// Streak returns a copy of the current streak cursor.
func (l *Ledger) Streak() Streak { return l.streak }

// DecayStreak runs the passive streak check for today. Meant to be called
// once at session start, before any user action.
func (l *Ledger) DecayStreak() { l.streak.Decay(Today()) }

// SkipDay counts today as active without any ledger mutation.
func (l *Ledger) SkipDay() {
	l.streak.Touch(Today())
	l.notifyf("streak", "¡Racha mantenida! 🔥", "Marcaste el día sin movimientos.")
}

// ── Accounts ──

// account returns a pointer into the accounts slice, or nil.
func (l *Ledger) account(id string) *Account {
	for i := range l.accounts {
		if l.accounts[i].ID == id {
			return &l.accounts[i]
		}
	}
	return nil
}

// Account returns a copy of the account with this id.
func (l *Ledger) Account(id string) (Account, bool) {
	if a := l.account(id); a != nil {
		return *a, true
	}
	return Account{}, false
}

// Accounts returns a copy of all accounts, in creation order.
func (l *Ledger) Accounts() []Account { return slices.Clone(l.accounts) }

// AddAccount registers a new account. An empty ID is assigned a fresh one.
// The opening balance, if any, is normalized to the account's currency.
func (l *Ledger) AddAccount(a Account) (Account, error) {
	if strings.TrimSpace(a.Name) == "" {
		return Account{}, invalidf("account name is required")
	}
	if a.Currency == "" {
		return Account{}, invalidf("account currency is required")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if l.account(a.ID) != nil {
		return Account{}, invalidf("account %q already exists", a.ID)
	}
	a.Balance = M(a.Balance.Amount(), a.Currency)
	l.accounts = append(l.accounts, a)
	return a, nil
}

// UpdateAccount changes the display fields of an account: name, type, color
// and icon. Currency and balance are engine-owned and cannot be edited here.
func (l *Ledger) UpdateAccount(id, name string, typ AccountType, color, icon string) error {
	a := l.account(id)
	if a == nil {
		return fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	if strings.TrimSpace(name) == "" {
		return invalidf("account name is required")
	}
	a.Name, a.Type, a.Color, a.Icon = name, typ, color, icon
	return nil
}

// DeleteAccount removes an account that no transaction references. When
// transactions still point at it, as source or destination, the deletion is
// blocked with a ReferenceError carrying the reference count.
func (l *Ledger) DeleteAccount(id string) error {
	if l.account(id) == nil {
		return fmt.Errorf("account %q: %w", id, ErrNotFound)
	}
	count := 0
	for _, t := range l.transactions {
		if t.AccountID == id || t.ToAccountID == id {
			count++
		}
	}
	if count > 0 {
		return &ReferenceError{AccountID: id, Count: count}
	}
	l.accounts = slices.DeleteFunc(l.accounts, func(a Account) bool { return a.ID == id })
	return nil
}

// applyDelta mutates exactly one account's balance by delta. An unknown
// account id is a no-op: the referential invariant keeps this from happening
// on any path that matters.
func (l *Ledger) applyDelta(accountID string, delta Money) {
	if a := l.account(accountID); a != nil {
		a.Balance = a.Balance.Add(delta)
	}
}

// ── Categories ──

// Category returns the category with this id from the directory.
func (l *Ledger) Category(id string) (Category, bool) {
	for _, c := range l.categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Categories returns a copy of the category directory.
func (l *Ledger) Categories() []Category { return slices.Clone(l.categories) }

// AddCategory registers a custom category.
func (l *Ledger) AddCategory(name, icon string, kind CategoryKind) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return Category{}, invalidf("category name is required")
	}
	c := Category{ID: uuid.NewString(), Name: name, Icon: icon, Kind: kind, IsCustom: true}
	l.categories = append(l.categories, c)
	return c, nil
}

// ── Transactions ──

// Transaction returns a copy of the transaction with this id.
func (l *Ledger) Transaction(id string) (Transaction, bool) {
	for _, t := range l.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Transactions returns a copy of all transactions, in posting order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// AddTransaction validates the input, posts the transaction and applies its
// balance deltas. Nothing is mutated when validation fails.
//
// For transfers the source account is debited by the entered amount and the
// destination credited with the converted amount; the conversion happens on
// the receiving leg only. The rate used, when a conversion occurred, is
// persisted on the record so that a later deletion reverses the transfer
// exactly.
func (l *Ledger) AddTransaction(input TransactionInput) (Transaction, error) {
	if !input.Amount.IsPositive() {
		return Transaction{}, invalidf("amount must be positive")
	}
	src := l.account(input.AccountID)
	if src == nil {
		return Transaction{}, invalidf("unknown account %q", input.AccountID)
	}
	if input.Amount.Currency() != src.Currency {
		return Transaction{}, invalidf("amount is in %s but account %q holds %s",
			input.Amount.Currency(), src.Name, src.Currency)
	}

	tx := Transaction{
		ID:         uuid.NewString(),
		Date:       input.Date,
		Type:       input.Type,
		Amount:     input.Amount,
		AccountID:  input.AccountID,
		CategoryID: input.CategoryID,
		Note:       input.Note,
	}
	if tx.Date.IsZero() {
		tx.Date = Today()
	}

	// received is the destination leg of a transfer, in its own currency.
	var received Money
	switch input.Type {
	case Income, Expense:
		if input.CategoryID == "" {
			return Transaction{}, invalidf("category is required")
		}
	case Transfer:
		if input.ToAccountID == "" {
			return Transaction{}, invalidf("destination account is required")
		}
		if input.ToAccountID == input.AccountID {
			return Transaction{}, invalidf("cannot transfer an account onto itself")
		}
		dest := l.account(input.ToAccountID)
		if dest == nil {
			return Transaction{}, invalidf("unknown account %q", input.ToAccountID)
		}
		var err error
		received, err = Convert(input.Amount, dest.Currency, input.ExchangeRate)
		if err != nil {
			return Transaction{}, err
		}
		tx.ToAccountID = input.ToAccountID
		if src.Currency != dest.Currency {
			tx.ExchangeRate = input.ExchangeRate
		}
	default:
		return Transaction{}, invalidf("unknown transaction type %q", input.Type)
	}

	// Validation is over: apply the deltas and post the record.
	switch tx.Type {
	case Income:
		l.applyDelta(tx.AccountID, tx.Amount)
	case Expense:
		l.applyDelta(tx.AccountID, tx.Amount.Neg())
	case Transfer:
		l.applyDelta(tx.AccountID, tx.Amount.Neg())
		l.applyDelta(tx.ToAccountID, received)
	}
	l.transactions = append(l.transactions, tx)

	if input.Recurring && tx.Type != Transfer {
		note := input.Note
		if note == "" {
			note = defaultRecurringNote
		}
		freq := input.Frequency
		if freq == "" {
			freq = Monthly
		}
		l.recurring = append(l.recurring, RecurringTransaction{
			ID:             uuid.NewString(),
			Amount:         input.Amount,
			Type:           tx.Type,
			AccountID:      input.AccountID,
			CategoryID:     input.CategoryID,
			Note:           note,
			Frequency:      freq,
			CustomInterval: input.CustomInterval,
			CustomUnit:     input.CustomUnit,
			NextDueDate:    NextDueDate(tx.Date, freq, input.CustomInterval, input.CustomUnit),
			Active:         true,
		})
	}

	l.streak.Touch(Today())
	return tx, nil
}

// DeleteTransaction reverses exactly the deltas applied when the transaction
// was created and removes the record. The receiving leg of a cross-currency
// transfer is recomputed from the stored rate, never from a fresh quote.
//
// Deleting a materialized recurring occurrence does not cancel or adjust its
// template; the schedule keeps running.
func (l *Ledger) DeleteTransaction(id string) error {
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return fmt.Errorf("transaction %q: %w", id, ErrNotFound)
	}
	tx := l.transactions[i]

	switch tx.Type {
	case Income:
		l.applyDelta(tx.AccountID, tx.Amount.Neg())
	case Expense:
		l.applyDelta(tx.AccountID, tx.Amount)
	case Transfer:
		l.applyDelta(tx.AccountID, tx.Amount)
		if dest := l.account(tx.ToAccountID); dest != nil {
			received, err := Convert(tx.Amount, dest.Currency, tx.ExchangeRate)
			if err != nil {
				// The stored rate made this conversion at creation time; it
				// cannot fail now without the record being corrupt.
				return fmt.Errorf("cannot reverse transfer %q: %w", id, err)
			}
			l.applyDelta(tx.ToAccountID, received.Neg())
		}
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return nil
}

// ── Debts ──

// debt returns a pointer into the debts slice, or nil.
func (l *Ledger) debt(id string) *Debt {
	for i := range l.debts {
		if l.debts[i].ID == id {
			return &l.debts[i]
		}
	}
	return nil
}

// Debt returns a copy of the debt with this id.
func (l *Ledger) Debt(id string) (Debt, bool) {
	if d := l.debt(id); d != nil {
		return *d, true
	}
	return Debt{}, false
}

// Debts returns a copy of all debts, in creation order.
func (l *Ledger) Debts() []Debt { return slices.Clone(l.debts) }

// AddDebt registers a new debt, unpaid. Amount is fixed for the life of the
// debt: there is no edit operation, only payments.
func (l *Ledger) AddDebt(name string, typ DebtType, amount Money, dueDate Date) (Debt, error) {
	if strings.TrimSpace(name) == "" {
		return Debt{}, invalidf("debt name is required")
	}
	if !amount.IsPositive() {
		return Debt{}, invalidf("amount must be positive")
	}
	d := Debt{
		ID:         uuid.NewString(),
		Name:       name,
		Type:       typ,
		Amount:     amount,
		PaidAmount: M(0, amount.Currency()),
		DueDate:    dueDate,
	}
	l.debts = append(l.debts, d)
	return d, nil
}

// DeleteDebt removes a debt. Unconditional once called: confirmation, if
// any, happens at the boundary. Past payment transactions stay untouched.
func (l *Ledger) DeleteDebt(id string) error {
	if l.debt(id) == nil {
		return fmt.Errorf("debt %q: %w", id, ErrNotFound)
	}
	l.debts = slices.DeleteFunc(l.debts, func(d Debt) bool { return d.ID == id })
	return nil
}

// PayDebt applies a payment to a debt: the paid amount grows, the account is
// debited (I_OWE) or credited (OWES_ME) by the converted amount, and a mirror
// transaction records the movement under the built-in debt category.
//
// amount is in the debt's currency; when the account holds a different
// currency the rate converts it, and the mirror transaction carries the
// converted amount plus the rate, so deleting it reverses the account side
// exactly.
func (l *Ledger) PayDebt(debtID string, amount Money, accountID string, rate decimal.Decimal, on Date) (Transaction, error) {
	d := l.debt(debtID)
	if d == nil {
		return Transaction{}, fmt.Errorf("debt %q: %w", debtID, ErrNotFound)
	}
	acc := l.account(accountID)
	if acc == nil {
		return Transaction{}, invalidf("unknown account %q", accountID)
	}
	if !amount.IsPositive() {
		return Transaction{}, invalidf("amount must be positive")
	}
	if amount.Currency() != d.Amount.Currency() {
		return Transaction{}, invalidf("payment is in %s but debt %q is in %s",
			amount.Currency(), d.Name, d.Amount.Currency())
	}
	delta, err := Convert(amount, acc.Currency, rate)
	if err != nil {
		return Transaction{}, err
	}
	if on.IsZero() {
		on = Today()
	}

	d.PaidAmount = d.PaidAmount.Add(amount)
	d.IsPaid = d.PaidAmount.GreaterThanOrEqual(d.Amount)

	tx := Transaction{
		ID:         uuid.NewString(),
		Date:       on,
		Amount:     delta,
		AccountID:  accountID,
		CategoryID: debtCategoryID,
	}
	if d.Type == IOwe {
		tx.Type = Expense
		tx.Note = fmt.Sprintf("Pago de deuda: %s", d.Name)
		l.applyDelta(accountID, delta.Neg())
	} else {
		tx.Type = Income
		tx.Note = fmt.Sprintf("Cobro de deuda: %s", d.Name)
		l.applyDelta(accountID, delta)
	}
	if amount.Currency() != acc.Currency {
		tx.ExchangeRate = rate
		tx.Note += fmt.Sprintf(" (Tasa: %s)", rate)
	}
	l.transactions = append(l.transactions, tx)

	l.streak.Touch(Today())
	return tx, nil
}

// ── Recurring scheduler ──

// Recurring returns a copy of all recurring templates.
func (l *Ledger) Recurring() []RecurringTransaction { return slices.Clone(l.recurring) }

// SetRecurringActive flips a template's active flag. An inactive template is
// never materialized but keeps its schedule.
func (l *Ledger) SetRecurringActive(id string, active bool) error {
	for i := range l.recurring {
		if l.recurring[i].ID == id {
			l.recurring[i].Active = active
			return nil
		}
	}
	return fmt.Errorf("recurring transaction %q: %w", id, ErrNotFound)
}

// ProcessDue materializes every active template due on or before today into
// exactly one transaction dated at the template's due date, applies its
// balance delta, and advances the template by one period.
//
// One occurrence per template per call, even when several periods have
// elapsed: a template overdue by three months catches up one session at a
// time. Callers must invoke this exactly once per session start; a second
// immediate call is a no-op only for templates already advanced past today.
func (l *Ledger) ProcessDue(today Date) []Transaction {
	var generated []Transaction
	for i := range l.recurring {
		rt := &l.recurring[i]
		if !rt.due(today) {
			continue
		}
		// The account may have been deleted since the template was created:
		// skip rather than post an orphan occurrence.
		if l.account(rt.AccountID) == nil {
			continue
		}
		tx := Transaction{
			ID:         uuid.NewString(),
			Date:       rt.NextDueDate,
			Type:       rt.Type,
			Amount:     rt.Amount,
			AccountID:  rt.AccountID,
			CategoryID: rt.CategoryID,
			Note:       recurringNotePrefix + rt.Note,
		}
		// Post and apply in one synchronous step: per template, either the
		// record exists and the balance moved, or neither.
		if rt.Type == Income {
			l.applyDelta(rt.AccountID, rt.Amount)
		} else {
			l.applyDelta(rt.AccountID, rt.Amount.Neg())
		}
		l.transactions = append(l.transactions, tx)
		rt.advance()
		generated = append(generated, tx)
	}
	if len(generated) > 0 {
		l.notifyf("info", fmt.Sprintf("%d transacciones generadas", len(generated)),
			"Se procesaron tus pagos recurrentes pendientes.")
	}
	return generated
}

// ── Derived balances ──

// TotalBalance sums the balances of all accounts held in the given currency.
func (l *Ledger) TotalBalance(currency string) Money {
	total := M(0, currency)
	for _, a := range l.accounts {
		if a.Currency == currency {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// GrandTotal is the net worth in the reference currency: USD balances plus
// local balances divided by the rate. Without a positive rate the local part
// is left out rather than guessed.
func (l *Ledger) GrandTotal(rate decimal.Decimal) Money {
	total := l.TotalBalance(ReferenceCurrency)
	if !l.profile.DualCurrency() || !rate.IsPositive() {
		return total
	}
	local := l.TotalBalance(l.profile.SecondaryCurrency)
	converted, err := Convert(local, ReferenceCurrency, rate)
	if err != nil {
		return total
	}
	return total.Add(converted)
}

// CategoryTotal is one slice of the expenses-by-category aggregation.
type CategoryTotal struct {
	CategoryID string
	Name       string
	Total      Money
}

// ExpensesByCategory aggregates expense transactions in the given currency by
// category, largest first. Unknown categories land under "Otros".
func (l *Ledger) ExpensesByCategory(currency string) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	var order []string
	for _, t := range l.transactions {
		if t.Type != Expense || t.Amount.Currency() != currency {
			continue
		}
		ct, ok := totals[t.CategoryID]
		if !ok {
			name := "Otros"
			if c, found := l.Category(t.CategoryID); found {
				name = c.Name
			}
			ct = &CategoryTotal{CategoryID: t.CategoryID, Name: name, Total: M(0, currency)}
			totals[t.CategoryID] = ct
			order = append(order, t.CategoryID)
		}
		ct.Total = ct.Total.Add(t.Amount)
	}
	result := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		result = append(result, *totals[id])
	}
	slices.SortStableFunc(result, func(a, b CategoryTotal) int {
		return b.Total.Amount().Cmp(a.Total.Amount())
	})
	return result
}

// stableSort orders transactions chronologically, keeping the relative order
// of same-day postings.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
}

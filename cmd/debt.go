package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finanzapro/finanza"
	"github.com/finanzapro/finanza/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type debtAddCmd struct {
	name     string
	typ      string
	amount   string
	currency string
	due      string
}

func (*debtAddCmd) Name() string     { return "add-debt" }
func (*debtAddCmd) Synopsis() string { return "register a debt, owed or owed to you" }
func (*debtAddCmd) Usage() string {
	return `fzp add-debt -name <who> -a <amount> [-type I_OWE|OWES_ME] [-currency <code>] [-due <date>]

  Registers a debt. The amount is fixed for the life of the debt; it is
  settled through 'fzp pay-debt' payments.

Usage Examples:
$ fzp add-debt -name "María" -a 200 -type OWES_ME -due 2026-10-01
`
}

func (p *debtAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Who owes you, or who you owe.")
	f.StringVar(&p.typ, "type", "I_OWE", "Debt direction (I_OWE or OWES_ME).")
	f.StringVar(&p.amount, "a", "", "Total amount of the debt.")
	f.StringVar(&p.currency, "currency", "", "Currency code (defaults to the profile's main currency).")
	f.StringVar(&p.due, "due", "", "Optional due date.")
}

func (p *debtAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	currency := p.currency
	if currency == "" {
		currency = l.Profile().MainCurrency
	}
	amount, err := parseAmount(p.amount, currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	var due finanza.Date
	if p.due != "" {
		if due, err = finanza.ParseDate(p.due); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	d, err := l.AddDebt(p.name, finanza.DebtType(p.typ), amount, due)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Registered debt %q for %s (%s)\n", d.Name, d.Amount, d.ID)
	return subcommands.ExitSuccess
}

type debtsCmd struct{}

func (*debtsCmd) Name() string             { return "debts" }
func (*debtsCmd) Synopsis() string         { return "list all debts and their progress" }
func (*debtsCmd) Usage() string            { return "fzp debts\n" }
func (*debtsCmd) SetFlags(f *flag.FlagSet) {}

func (p *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Debts(l.Debts()))
	return subcommands.ExitSuccess
}

type payDebtCmd struct {
	id      string
	amount  string
	account string
	rate    string
	date    string
}

func (*payDebtCmd) Name() string     { return "pay-debt" }
func (*payDebtCmd) Synopsis() string { return "apply a payment to a debt" }
func (*payDebtCmd) Usage() string {
	return `fzp pay-debt -id <debt-id> -a <amount> -account <account-id> [-rate <rate>] [-d <date>]

  Applies a payment in the debt's currency: the debt's paid amount grows, the
  account is debited (I_OWE) or credited (OWES_ME), and a mirror transaction
  records the movement. When the account holds a different currency the
  amount is converted with the rate.

Usage Examples:
$ fzp pay-debt -id 4f1c... -a 60 -account 2 -rate 50
`
}

func (p *payDebtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Debt id.")
	f.StringVar(&p.amount, "a", "", "Payment amount, in the debt's currency.")
	f.StringVar(&p.account, "account", "", "Account the payment moves through.")
	f.StringVar(&p.rate, "rate", "", "Exchange rate for cross-currency payments (defaults to the BCV rate).")
	f.StringVar(&p.date, "d", "", "Date of the payment (defaults to today).")
}

func (p *payDebtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	d, ok := l.Debt(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no debt %q.\n", p.id)
		return subcommands.ExitFailure
	}
	acc, ok := l.Account(p.account)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no account %q.\n", p.account)
		return subcommands.ExitFailure
	}
	amount, err := parseAmount(p.amount, d.Amount.Currency())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	date, err := parseDate(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	var rate decimal.Decimal
	if acc.Currency != d.Amount.Currency() {
		if rate, err = resolveRate(p.rate); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	tx, err := l.PayDebt(p.id, amount, p.account, rate, date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	paid, _ := l.Debt(p.id)
	state := "pendiente"
	if paid.IsPaid {
		state = "pagada"
	}
	fmt.Printf("Applied %s to %q (%s), debt is now %s\n", tx.Amount, paid.Name, tx.ID, state)
	return subcommands.ExitSuccess
}

type debtDeleteCmd struct {
	id  string
	yes bool
}

func (*debtDeleteCmd) Name() string     { return "delete-debt" }
func (*debtDeleteCmd) Synopsis() string { return "delete a debt" }
func (*debtDeleteCmd) Usage() string {
	return `fzp delete-debt -id <debt-id> [-y]

  Deletes a debt. Past payment transactions are left untouched.
`
}

func (p *debtDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Debt id to delete.")
	f.BoolVar(&p.yes, "y", false, "Skip the confirmation prompt.")
}

func (p *debtDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	d, ok := l.Debt(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no debt %q.\n", p.id)
		return subcommands.ExitFailure
	}
	if !p.yes && !confirm(fmt.Sprintf("¿Eliminar la deuda %q?", d.Name)) {
		return subcommands.ExitSuccess
	}
	if err := l.DeleteDebt(p.id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return saveLedger(l)
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finanzapro/finanza"
	"github.com/google/subcommands"
)

// entryCmd holds the flags shared by the income and expense commands.
type entryCmd struct {
	amount    string
	account   string
	category  string
	date      string
	note      string
	recurring bool
	frequency string
	interval  int
	unit      string
}

func (p *entryCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&p.amount, "a", "", "Amount, in the account's currency.")
	f.StringVar(&p.account, "account", "", "Account id.")
	f.StringVar(&p.category, "category", "", "Category id.")
	f.StringVar(&p.date, "d", "", "Date of the transaction (defaults to today).")
	f.StringVar(&p.note, "note", "", "Optional note.")
	f.BoolVar(&p.recurring, "recurring", false, "Also register a recurring template.")
	f.StringVar(&p.frequency, "freq", "MONTHLY", "Recurring frequency (DAILY, WEEKLY, BIWEEKLY, MONTHLY, YEARLY, CUSTOM).")
	f.IntVar(&p.interval, "interval", 1, "Interval for CUSTOM frequency.")
	f.StringVar(&p.unit, "unit", "MONTHS", "Unit for CUSTOM frequency (DAYS, WEEKS, MONTHS, YEARS).")
}

func (p *entryCmd) execute(typ finanza.TransactionType) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	acc, ok := l.Account(p.account)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no account %q.\n", p.account)
		return subcommands.ExitFailure
	}
	amount, err := parseAmount(p.amount, acc.Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	date, err := parseDate(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	tx, err := l.AddTransaction(finanza.TransactionInput{
		Date:           date,
		Type:           typ,
		Amount:         amount,
		AccountID:      p.account,
		CategoryID:     p.category,
		Note:           p.note,
		Recurring:      p.recurring,
		Frequency:      finanza.Frequency(p.frequency),
		CustomInterval: p.interval,
		CustomUnit:     finanza.CustomUnit(p.unit),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Recorded %s %s on %s (%s)\n", tx.Type, tx.Amount, tx.Date, tx.ID)
	return subcommands.ExitSuccess
}

type incomeCmd struct{ entryCmd }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income into an account" }
func (*incomeCmd) Usage() string {
	return `fzp income -a <amount> -account <id> -category <id> [-d <date>] [-note <text>] [-recurring [-freq <f>]]

  Credits the account with the amount. With -recurring, also registers a
  template whose first occurrence is this transaction.

Usage Examples:
$ fzp income -a 1200 -account 1 -category 6 -note "Salario" -recurring -freq MONTHLY
`
}
func (p *incomeCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }
func (p *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.execute(finanza.Income)
}

type expenseCmd struct{ entryCmd }

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense from an account" }
func (*expenseCmd) Usage() string {
	return `fzp expense -a <amount> -account <id> -category <id> [-d <date>] [-note <text>] [-recurring [-freq <f>]]

  Debits the account by the amount.

Usage Examples:
$ fzp expense -a 35.50 -account 1 -category 1 -note "Mercado"
`
}
func (p *expenseCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }
func (p *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return p.execute(finanza.Expense)
}

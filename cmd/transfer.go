package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finanzapro/finanza"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type transferCmd struct {
	amount string
	from   string
	to     string
	rate   string
	date   string
	note   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `fzp transfer -a <amount> -from <account-id> -to <account-id> [-rate <rate>] [-d <date>] [-note <text>]

  Debits the source account by the amount (in the source currency) and
  credits the destination with the converted amount. When the accounts hold
  different currencies a positive exchange rate is required; without -rate
  the cached or freshly fetched BCV rate is used. The rate is stored on the
  transaction so a later deletion reverses both legs exactly.

Usage Examples:
$ fzp transfer -a 10 -from 1 -to 2 -rate 50
`
}

func (p *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.amount, "a", "", "Amount, in the source account's currency.")
	f.StringVar(&p.from, "from", "", "Source account id.")
	f.StringVar(&p.to, "to", "", "Destination account id.")
	f.StringVar(&p.rate, "rate", "", "Exchange rate, local units per USD (defaults to the BCV rate).")
	f.StringVar(&p.date, "d", "", "Date of the transfer (defaults to today).")
	f.StringVar(&p.note, "note", "", "Optional note.")
}

func (p *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	src, ok := l.Account(p.from)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no account %q.\n", p.from)
		return subcommands.ExitFailure
	}
	dest, ok := l.Account(p.to)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no account %q.\n", p.to)
		return subcommands.ExitFailure
	}
	amount, err := parseAmount(p.amount, src.Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	date, err := parseDate(p.date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	// The rate is only needed for a cross-currency transfer.
	var rate decimal.Decimal
	if src.Currency != dest.Currency {
		if rate, err = resolveRate(p.rate); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	tx, err := l.AddTransaction(finanza.TransactionInput{
		Date:         date,
		Type:         finanza.Transfer,
		Amount:       amount,
		AccountID:    p.from,
		ToAccountID:  p.to,
		Note:         p.note,
		ExchangeRate: rate,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Transferred %s from %q to %q on %s (%s)\n", tx.Amount, src.Name, dest.Name, tx.Date, tx.ID)
	return subcommands.ExitSuccess
}

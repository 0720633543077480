package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/finanzapro/finanza"
	"github.com/finanzapro/finanza/renderer"
	"github.com/google/subcommands"
)

type accountAddCmd struct {
	name     string
	typ      string
	currency string
	balance  string
	color    string
	icon     string
}

func (*accountAddCmd) Name() string     { return "add-account" }
func (*accountAddCmd) Synopsis() string { return "create a new account" }
func (*accountAddCmd) Usage() string {
	return `fzp add-account -name <name> [-type CASH|BANK|WALLET|SAVINGS] [-currency <code>] [-balance <amount>]

  Creates an account. The opening balance, if given, is recorded as-is; all
  later balance changes go through transactions.

Usage Examples:
$ fzp add-account -name "Banco Mercantil" -type BANK -currency VES
`
}

func (p *accountAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Account name.")
	f.StringVar(&p.typ, "type", "BANK", "Account type (CASH, BANK, WALLET, SAVINGS).")
	f.StringVar(&p.currency, "currency", "", "Currency code (defaults to the profile's main currency).")
	f.StringVar(&p.balance, "balance", "", "Opening balance (defaults to 0).")
	f.StringVar(&p.color, "color", "#3b82f6", "Display color.")
	f.StringVar(&p.icon, "icon", "🏦", "Display icon.")
}

func (p *accountAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	currency := p.currency
	if currency == "" {
		currency = l.Profile().MainCurrency
	}
	balance := finanza.M(0, currency)
	if p.balance != "" {
		if balance, err = parseAmount(p.balance, currency); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}
	acc, err := l.AddAccount(finanza.Account{
		Name:     p.name,
		Type:     finanza.AccountType(p.typ),
		Currency: currency,
		Balance:  balance,
		Color:    p.color,
		Icon:     p.icon,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Created account %q (%s)\n", acc.Name, acc.ID)
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string             { return "accounts" }
func (*accountsCmd) Synopsis() string         { return "list all accounts and their balances" }
func (*accountsCmd) Usage() string            { return "fzp accounts\n" }
func (*accountsCmd) SetFlags(f *flag.FlagSet) {}

func (p *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Accounts(l.Accounts()))
	return subcommands.ExitSuccess
}

type accountDeleteCmd struct {
	id  string
	yes bool
}

func (*accountDeleteCmd) Name() string     { return "delete-account" }
func (*accountDeleteCmd) Synopsis() string { return "delete an account with no transactions" }
func (*accountDeleteCmd) Usage() string {
	return `fzp delete-account -id <account-id> [-y]

  Deletes an account. Blocked when any transaction still references the
  account, as source or destination.
`
}

func (p *accountDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Account id to delete.")
	f.BoolVar(&p.yes, "y", false, "Skip the confirmation prompt.")
}

func (p *accountDeleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	acc, ok := l.Account(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no account %q.\n", p.id)
		return subcommands.ExitFailure
	}
	if !p.yes && !confirm(fmt.Sprintf("¿Eliminar la cuenta %q? Esta acción no se puede deshacer.", acc.Name)) {
		return subcommands.ExitSuccess
	}
	if err := l.DeleteAccount(p.id); err != nil {
		var refErr *finanza.ReferenceError
		if errors.As(err, &refErr) {
			fmt.Fprintf(os.Stderr, "No se puede eliminar: la cuenta tiene %d transacciones asociadas.\n", refErr.Count)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return saveLedger(l)
}

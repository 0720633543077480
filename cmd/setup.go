package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finanzapro/finanza"
	"github.com/google/subcommands"
)

type setupCmd struct {
	country  string
	currency string
}

func (*setupCmd) Name() string     { return "setup" }
func (*setupCmd) Synopsis() string { return "initialize the data directory with a user profile" }
func (*setupCmd) Usage() string {
	return `fzp setup -country <country> [-currency <code>]

  Creates the user profile and seeds the starting accounts and the default
  category directory. Venezuela gets the dual-currency mode (USD + VES) with
  a cash and a bank account; any other country gets a single cash account in
  the chosen currency.

Usage Examples:
$ fzp setup -country Venezuela
$ fzp setup -country Chile -currency CLP
`
}

func (p *setupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.country, "country", "", "Country the user lives in.")
	f.StringVar(&p.currency, "currency", "USD", "Main currency code (ignored for Venezuela).")
}

func (p *setupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.country == "" {
		fmt.Fprintln(os.Stderr, "Error: -country is required.")
		return subcommands.ExitUsageError
	}
	if _, err := finanza.LoadLedger(DataPath()); err == nil {
		fmt.Fprintf(os.Stderr, "Error: data directory %q is already set up.\n", DataPath())
		return subcommands.ExitFailure
	}

	profile := finanza.DefaultProfile(p.country, p.currency)
	l := finanza.NewLedger(profile)

	// Starting accounts, mirroring the onboarding defaults.
	if profile.DualCurrency() {
		l.AddAccount(finanza.Account{
			Name: "Efectivo USD", Type: finanza.Cash, Currency: finanza.ReferenceCurrency,
			Color: "#10b981", Icon: "💵",
		})
		l.AddAccount(finanza.Account{
			Name: "Banco Bs", Type: finanza.Bank, Currency: profile.SecondaryCurrency,
			Color: "#3b82f6", Icon: "🏦",
		})
	} else {
		l.AddAccount(finanza.Account{
			Name: "Efectivo", Type: finanza.Cash, Currency: profile.MainCurrency,
			Color: "#10b981", Icon: "💵",
		})
	}

	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	log.Info().Str("country", profile.Country).Str("currency", profile.MainCurrency).
		Msg("profile created")
	return subcommands.ExitSuccess
}

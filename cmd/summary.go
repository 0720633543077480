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

type summaryCmd struct {
	rate string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show streak, balances and expenses by category" }
func (*summaryCmd) Usage() string {
	return `fzp summary [-rate <rate>]

  Shows the streak, per-currency totals, the grand total in USD and the
  expenses-by-category breakdown. In dual-currency mode the grand total uses
  the given rate, or the cached/fetched BCV rate.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.rate, "rate", "", "Exchange rate for the grand total (defaults to the BCV rate).")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var rate decimal.Decimal
	if l.Profile().DualCurrency() {
		// Best effort: without a rate the grand total just leaves the local side out.
		if rate, err = resolveRate(p.rate); err != nil {
			log.Warn().Err(err).Msg("no exchange rate available")
		}
	}
	printMarkdown(renderer.Summary(l, l.GrandTotal(rate)))
	return subcommands.ExitSuccess
}

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the data files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fzp fmt

  Reads all collections and writes them back in canonical form: transactions
  sorted chronologically, keys in a stable order. Useful before committing
  the data directory to version control.
`
}
func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Fprintf(os.Stderr, "Formatted data in %q.\n", DataPath())
	return subcommands.ExitSuccess
}

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "fetch and cache the official BCV exchange rate" }
func (*rateCmd) Usage() string {
	return `fzp rate

  Fetches today's official USD/VES rate and caches it in the data directory.
  A failed fetch keeps the previous cached rate.
`
}
func (*rateCmd) SetFlags(f *flag.FlagSet) {}

func (p *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, err := finanza.FetchBCVRate()
	if err != nil {
		cached, on, cacheErr := finanza.LoadCachedRate(DataPath())
		if cacheErr == nil && cached.IsPositive() {
			fmt.Fprintf(os.Stderr, "Fetch failed (%v); keeping cached rate %s from %s.\n", err, cached, on)
			return subcommands.ExitSuccess
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := finanza.SaveCachedRate(DataPath(), rate, finanza.Today()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("1 USD = %s VES (BCV)\n", rate)
	return subcommands.ExitSuccess
}

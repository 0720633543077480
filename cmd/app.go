// Package cmd implements the CLI application to manage the finance tracker.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/finanzapro/finanza"
	"github.com/finanzapro/finanza/logger"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&setupCmd{}, "profile")
	c.Register(&rateCmd{}, "profile")

	c.Register(&accountAddCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&accountDeleteCmd{}, "accounts")

	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&deleteTxCmd{}, "transactions")
	c.Register(&recurringCmd{}, "transactions")

	c.Register(&debtAddCmd{}, "debts")
	c.Register(&debtsCmd{}, "debts")
	c.Register(&payDebtCmd{}, "debts")
	c.Register(&debtDeleteCmd{}, "debts")

	c.Register(&skipDayCmd{}, "streak")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&fmtCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data-path", "", "Path to the data directory (defaults to $FINANZA_PATH, then .finanza)")

var log = logger.New()

// DataPath resolves the data directory: flag, then environment, then default.
func DataPath() string {
	if *dataPath != "" {
		return *dataPath
	}
	if p := os.Getenv("FINANZA_PATH"); p != "" {
		return p
	}
	return ".finanza"
}

// notify maps engine notifications onto the structured logger.
func notify(kind, title, message string) {
	log.Info().Str("kind", kind).Str("detail", message).Msg(title)
}

// openSession loads the ledger and runs the once-per-session steps: the
// passive streak decay and the recurring materialization pass. Changes those
// steps make are persisted immediately so that a crash later in the command
// cannot double-post occurrences.
func openSession() (*finanza.Ledger, error) {
	l, err := finanza.LoadLedger(DataPath())
	if err != nil {
		return nil, fmt.Errorf("could not open data in %q (run 'fzp setup' first?): %w", DataPath(), err)
	}
	l.SetNotifier(notify)

	before := l.Streak()
	l.DecayStreak()
	generated := l.ProcessDue(finanza.Today())
	if len(generated) > 0 || l.Streak() != before {
		if err := finanza.SaveLedger(DataPath(), l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// saveLedger persists the ledger back to the data directory.
func saveLedger(l *finanza.Ledger) subcommands.ExitStatus {
	if err := finanza.SaveLedger(DataPath(), l); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// confirm is the yes/no gate in front of destructive operations. The engine
// itself deletes unconditionally; this boundary decides whether to call it.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "si"
}

// resolveRate returns the exchange rate to use for a conversion: an explicit
// flag value wins, then today's cached rate, then a fresh fetch (which
// refreshes the cache). A failed fetch falls back to a stale cached rate
// when one exists, and leaves the cache untouched.
func resolveRate(flagValue string) (decimal.Decimal, error) {
	if flagValue != "" {
		rate, err := decimal.NewFromString(flagValue)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid rate %q: %w", flagValue, err)
		}
		return rate, nil
	}
	cached, on, err := finanza.LoadCachedRate(DataPath())
	if err == nil && cached.IsPositive() && on == finanza.Today() {
		return cached, nil
	}
	rate, err := finanza.FetchBCVRate()
	if err != nil {
		if cached.IsPositive() {
			log.Warn().Err(err).Msg("rate fetch failed, using cached rate")
			return cached, nil
		}
		return decimal.Decimal{}, err
	}
	if err := finanza.SaveCachedRate(DataPath(), rate, finanza.Today()); err != nil {
		log.Warn().Err(err).Msg("could not cache rate")
	}
	return rate, nil
}

// parseAmount parses a positive decimal amount in the given currency.
func parseAmount(s, currency string) (finanza.Money, error) {
	if s == "" {
		return finanza.Money{}, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return finanza.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return finanza.M(d, currency), nil
}

// parseDate parses an optional date flag, defaulting to today.
func parseDate(s string) (finanza.Date, error) {
	if s == "" {
		return finanza.Today(), nil
	}
	return finanza.ParseDate(s)
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type skipDayCmd struct{}

func (*skipDayCmd) Name() string     { return "skip-day" }
func (*skipDayCmd) Synopsis() string { return "keep the streak alive without recording anything" }
func (*skipDayCmd) Usage() string {
	return `fzp skip-day

  Counts today as active without any ledger mutation, so a day with no
  movements does not break the streak.
`
}
func (*skipDayCmd) SetFlags(f *flag.FlagSet) {}

func (p *skipDayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	l.SkipDay()
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("🔥 Racha: %d día(s)\n", l.Streak().Count)
	return subcommands.ExitSuccess
}

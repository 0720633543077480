package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finanzapro/finanza/renderer"
	"github.com/google/subcommands"
)

type recurringCmd struct {
	pause  string
	resume string
}

func (*recurringCmd) Name() string     { return "recurring" }
func (*recurringCmd) Synopsis() string { return "list recurring templates, pause or resume one" }
func (*recurringCmd) Usage() string {
	return `fzp recurring [-pause <id> | -resume <id>]

  Lists the recurring templates and their next due dates. A paused template
  keeps its schedule but is never materialized. Overdue templates catch up
  one occurrence per session, not all at once.
`
}

func (p *recurringCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.pause, "pause", "", "Template id to deactivate.")
	f.StringVar(&p.resume, "resume", "", "Template id to reactivate.")
}

func (p *recurringCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if p.pause != "" || p.resume != "" {
		id, active := p.pause, false
		if p.resume != "" {
			id, active = p.resume, true
		}
		if err := l.SetRecurringActive(id, active); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if status := saveLedger(l); status != subcommands.ExitSuccess {
			return status
		}
	}
	printMarkdown(renderer.Recurring(l.Recurring()))
	return subcommands.ExitSuccess
}

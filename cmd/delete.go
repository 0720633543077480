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

type deleteTxCmd struct {
	id  string
	yes bool
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "delete a transaction, reversing its balance effect" }
func (*deleteTxCmd) Usage() string {
	return `fzp delete-tx -id <transaction-id> [-y]

  Reverses exactly the balance deltas the transaction applied when it was
  created. Cross-currency transfers reverse with the rate stored on the
  record, not today's rate. Deleting a recurring occurrence does not cancel
  its template.
`
}

func (p *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Transaction id to delete.")
	f.BoolVar(&p.yes, "y", false, "Skip the confirmation prompt.")
}

func (p *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := openSession()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tx, ok := l.Transaction(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no transaction %q.\n", p.id)
		return subcommands.ExitFailure
	}
	if !p.yes && !confirm(fmt.Sprintf("¿Eliminar? %s", renderer.Transaction(tx))) {
		return subcommands.ExitSuccess
	}
	if err := l.DeleteTransaction(p.id); err != nil {
		if errors.Is(err, finanza.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no transaction %q.\n", p.id)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}
	return saveLedger(l)
}

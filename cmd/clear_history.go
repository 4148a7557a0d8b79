package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearHistoryCmd struct {
	yes bool
}

func (*clearHistoryCmd) Name() string     { return "clear-history" }
func (*clearHistoryCmd) Synopsis() string { return "delete the entire sales history" }
func (*clearHistoryCmd) Usage() string {
	return `apos clear-history [-y]

  Deletes every recorded sale. This cannot be undone.
`
}

func (c *clearHistoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation.")
}

func (c *clearHistoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	n := len(db.Sales())
	if n == 0 {
		fmt.Println("The sales history is already empty.")
		return subcommands.ExitSuccess
	}

	if !confirm(fmt.Sprintf("¿Estás seguro de que deseas eliminar las %d ventas del historial?", n), c.yes) {
		return subcommands.ExitSuccess
	}

	if err := db.ClearSales(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Sales history cleared.")
	return subcommands.ExitSuccess
}

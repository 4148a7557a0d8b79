package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmSaleCmd struct {
	yes bool
}

func (*rmSaleCmd) Name() string     { return "rm-sale" }
func (*rmSaleCmd) Synopsis() string { return "delete one sale from the history" }
func (*rmSaleCmd) Usage() string {
	return `apos rm-sale <number> [-y]

  Deletes a sale, referenced by receipt number or sale id. Stock is not
  restored.
`
}

func (c *rmSaleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation.")
}

func (c *rmSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one receipt number.")
		return subcommands.ExitUsageError
	}

	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sale := db.Sale(f.Arg(0))
	if sale == nil {
		fmt.Fprintf(os.Stderr, "Error: no sale matches %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	if !confirm(fmt.Sprintf("¿Estás seguro de que deseas eliminar el recibo #%s?", sale.ReceiptNumber), c.yes) {
		return subcommands.ExitSuccess
	}

	if err := db.DeleteSale(sale.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Sale deleted.")
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a product from the inventory" }
func (*rmCmd) Usage() string {
	return `apos rm <product> [-y]

  Deletes a product, referenced by id, barcode or exact name. Recorded
  sales keep their snapshots of the product.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product reference.")
		return subcommands.ExitUsageError
	}

	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p := db.FindProduct(f.Arg(0))
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: no product matches %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	if !confirm(fmt.Sprintf("¿Estás seguro de que deseas eliminar %q?", p.Name), c.yes) {
		return subcommands.ExitSuccess
	}

	if err := db.DeleteProduct(p.ID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %q\n", p.Name)
	return subcommands.ExitSuccess
}

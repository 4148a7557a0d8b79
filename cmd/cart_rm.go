package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type cartRmCmd struct {
	qty int
}

func (*cartRmCmd) Name() string     { return "cart-rm" }
func (*cartRmCmd) Synopsis() string { return "remove a product from the cart" }
func (*cartRmCmd) Usage() string {
	return `apos cart-rm <product> [-n <qty>]

  Removes a cart line, or with -n sets its remaining quantity.
`
}

func (c *cartRmCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.qty, "n", 0, "Quantity to keep; 0 removes the line.")
}

func (c *cartRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := db.SetCartQuantity(p.ID, c.qty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.qty <= 0 {
		fmt.Printf("Removed %q from the cart\n", p.Name)
	} else {
		fmt.Printf("Set %q to %d unit(s)\n", p.Name, c.qty)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// decimalFromInt is shared by the cart display commands.
func decimalFromInt(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

type cartAddCmd struct {
	qty int
}

func (*cartAddCmd) Name() string     { return "cart-add" }
func (*cartAddCmd) Synopsis() string { return "add a product to the cart" }
func (*cartAddCmd) Usage() string {
	return `apos cart-add <product> [-n <qty>]

  Adds units of a product (referenced by id, barcode or exact name) to the
  cart. The line quantity is capped at the available stock.
`
}

func (c *cartAddCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.qty, "n", 1, "Units to add.")
}

func (c *cartAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := db.AddToCart(p.ID, c.qty); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %d x %q to the cart\n", c.qty, p.Name)
	return subcommands.ExitSuccess
}

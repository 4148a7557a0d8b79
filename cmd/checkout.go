package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos/renderer"
)

type checkoutCmd struct{}

func (*checkoutCmd) Name() string     { return "checkout" }
func (*checkoutCmd) Synopsis() string { return "complete the sale and print the receipt" }
func (*checkoutCmd) Usage() string {
	return `apos checkout

  Completes the sale in progress: stock is decremented, the sale is
  recorded in the history with the next receipt number, and the cart is
  cleared. Prints the receipt.
`
}

func (*checkoutCmd) SetFlags(*flag.FlagSet) {}

func (*checkoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, cfg, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sale, err := db.Checkout()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderReceipt(renderer.NewReceipt(sale, cfg.Shop, cfg.Currency)))
	return subcommands.ExitSuccess
}

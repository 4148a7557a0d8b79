package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos/renderer"
)

type receiptCmd struct{}

func (*receiptCmd) Name() string     { return "receipt" }
func (*receiptCmd) Synopsis() string { return "reprint the receipt of a recorded sale" }
func (*receiptCmd) Usage() string {
	return `apos receipt <number>

  Prints the receipt of a sale, referenced by receipt number (R-000042) or
  sale id. Pipe to a printer to reprint it.
`
}

func (*receiptCmd) SetFlags(*flag.FlagSet) {}

func (*receiptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one receipt number.")
		return subcommands.ExitUsageError
	}

	db, cfg, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sale := db.Sale(f.Arg(0))
	if sale == nil {
		fmt.Fprintf(os.Stderr, "Error: no sale matches %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderReceipt(renderer.NewReceipt(*sale, cfg.Shop, cfg.Currency)))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import products from a CSV file" }
func (*importCmd) Usage() string {
	return `apos import <file.csv>

  Imports products. The header must contain at least name, buyPrice,
  sellPrice, stock and barcode; id and category are optional. Products
  with a known id are updated, the rest are added. Bad rows are skipped
  and reported at the end.
`
}

func (*importCmd) SetFlags(*flag.FlagSet) {}

func (*importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one CSV file.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	res, err := pos.ImportCSV(in)
	if err != nil {
		var formatErr *pos.FormatError
		if errors.As(err, &formatErr) {
			fmt.Fprintf(os.Stderr, "El archivo CSV no tiene el formato correcto: %v\n", formatErr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return subcommands.ExitFailure
	}

	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	updated, added, err := db.ImportProducts(res.Products)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d product(s): %d added, %d updated\n", len(res.Products), added, updated)
	// Row errors were collected, not fatal: the import still succeeded.
	for _, msg := range res.RowErrors {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}
	return subcommands.ExitSuccess
}

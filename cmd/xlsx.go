package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos"
)

type xlsxCmd struct {
	output string
}

func (*xlsxCmd) Name() string     { return "xlsx" }
func (*xlsxCmd) Synopsis() string { return "export the inventory to an Excel workbook" }
func (*xlsxCmd) Usage() string {
	return `apos xlsx [-o <file>]

  Writes the product list as an .xlsx workbook with category names
  resolved, for shops that live in spreadsheets.
`
}

func (c *xlsxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file.")
}

func (c *xlsxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	name := c.output
	if name == "" {
		name = strings.TrimSuffix(pos.ExportFilename(time.Now()), ".csv") + ".xlsx"
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	products := db.Products()
	if err := pos.ExportXLSX(out, products, db.Categories()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d product(s) to %s\n", len(products), name)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the inventory to a CSV file" }
func (*exportCmd) Usage() string {
	return `apos export [-o <file>]

  Writes the whole product list as CSV, openable with Excel or any
  spreadsheet. Defaults to inventario-libreria-amelia-<date>.csv.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file; \"-\" for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	products := db.Products()

	if c.output == "-" {
		if err := pos.ExportCSV(os.Stdout, products); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = pos.ExportFilename(time.Now())
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := pos.ExportCSV(out, products); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d product(s) to %s\n", len(products), name)
	return subcommands.ExitSuccess
}

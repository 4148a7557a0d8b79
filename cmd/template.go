package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos"
)

type templateCmd struct {
	output string
}

func (*templateCmd) Name() string     { return "template" }
func (*templateCmd) Synopsis() string { return "write an empty CSV import template" }
func (*templateCmd) Usage() string {
	return `apos template [-o <file>]

  Writes a CSV template with the import columns and one example row.
`
}

func (c *templateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", pos.TemplateFilename, "Output file; \"-\" for stdout.")
}

func (c *templateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "-" {
		if err := pos.WriteTemplate(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := pos.WriteTemplate(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Template written to %s\n", c.output)
	return subcommands.ExitSuccess
}

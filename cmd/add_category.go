package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCategoryCmd struct{}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create a new product category" }
func (*addCategoryCmd) Usage() string {
	return `apos add-category <name>

  Creates a category. Names are unique, compared case-insensitively.
`
}

func (*addCategoryCmd) SetFlags(*flag.FlagSet) {}

func (*addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one category name.")
		return subcommands.ExitUsageError
	}

	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cat, err := db.AddCategory(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added category %q (id %s)\n", cat.Name, cat.ID)
	return subcommands.ExitSuccess
}

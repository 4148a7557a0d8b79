package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCategoryCmd struct {
	yes bool
}

func (*rmCategoryCmd) Name() string     { return "rm-category" }
func (*rmCategoryCmd) Synopsis() string { return "delete a category" }
func (*rmCategoryCmd) Usage() string {
	return `apos rm-category <name> [-y]

  Deletes a category. Products in it are left uncategorized, never deleted.
`
}

func (c *rmCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation.")
}

func (c *rmCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one category name.")
		return subcommands.ExitUsageError
	}

	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := resolveCategory(db, f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if id == "" {
		fmt.Fprintln(os.Stderr, "Error: expected a category name.")
		return subcommands.ExitUsageError
	}

	prompt := "¿Estás seguro de que deseas eliminar esta categoría? Los productos asociados quedarán sin categoría."
	if !confirm(prompt, c.yes) {
		return subcommands.ExitSuccess
	}

	if err := db.DeleteCategory(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Category deleted.")
	return subcommands.ExitSuccess
}

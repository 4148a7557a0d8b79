package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the product categories" }
func (*categoriesCmd) Usage() string {
	return `apos categories

  Lists every category with the number of products in it.
`
}

func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (*categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	categories := db.Categories()
	if len(categories) == 0 {
		fmt.Println("No hay categorías creadas")
		return subcommands.ExitSuccess
	}

	counts := make(map[string]int)
	for _, p := range db.Products() {
		counts[p.Category]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| Categoría | Productos |\n|-----------|----------:|\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "| %s | %d |\n", c.Name, counts[c.ID])
	}
	if n := counts[""]; n > 0 {
		fmt.Fprintf(&b, "| Sin categoría | %d |\n", n)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

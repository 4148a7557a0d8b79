package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos"
)

type lsCmd struct {
	query    string
	category string
	stock    string
	sortBy   string
	desc     bool
	page     int
	pageSize int
}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list, search and page through the inventory" }
func (*lsCmd) Usage() string {
	return `apos ls [-q <term>] [-c <category>] [-stock all|low|out] [-sort <field>] [-desc] [-page <n>] [-n <size>]

  Lists products matching a case-insensitive search over name and barcode,
  a category, and a stock level filter (low: 1-10 units, out: none).
  Sortable by name, buyPrice, sellPrice, stock or category.
`
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search term over name and barcode.")
	f.StringVar(&c.category, "c", pos.AllCategories, "Category name or ID, or \"all\".")
	f.StringVar(&c.stock, "stock", "all", "Stock filter: all, low or out.")
	f.StringVar(&c.sortBy, "sort", "name", "Sort field: name, buyPrice, sellPrice, stock, category.")
	f.BoolVar(&c.desc, "desc", false, "Sort descending.")
	f.IntVar(&c.page, "page", 1, "Page number, starting at 1.")
	f.IntVar(&c.pageSize, "n", 20, "Products per page.")
}

func (c *lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.pageSize < 1 {
		fmt.Fprintln(os.Stderr, "Error: page size must be positive.")
		return subcommands.ExitUsageError
	}
	stockFilter, err := pos.ParseStockFilter(c.stock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	sortField, err := pos.ParseSortField(c.sortBy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	db, cfg, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	categories := db.Categories()

	categoryID := c.category
	if categoryID != pos.AllCategories {
		var err error
		categoryID, err = resolveCategory(db, c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	filtered := pos.FilterProducts(db.Products(), c.query, categoryID, stockFilter)
	sorted := pos.SortProducts(filtered, categories, sortField, c.desc)

	totalPages := (len(sorted) + c.pageSize - 1) / c.pageSize
	page := max(1, min(c.page, totalPages))
	items := pos.Paginate(sorted, page, c.pageSize)

	if len(items) == 0 {
		fmt.Println("No products found.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| Producto | Código | Categoría | Compra | Venta | Stock |\n")
	fmt.Fprintf(&b, "|----------|--------|-----------|-------:|------:|------:|\n")
	for _, p := range items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %d |\n",
			p.Name,
			p.Barcode,
			pos.CategoryName(categories, p.Category),
			pos.FormatMoney(p.BuyPrice, cfg.Currency),
			pos.FormatMoney(p.SellPrice, cfg.Currency),
			p.Stock,
		)
	}
	fmt.Fprintf(&b, "\n%d product(s), page %d/%d\n", len(sorted), page, totalPages)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	name     string
	buy      string
	sell     string
	stock    int
	barcode  string
	category string
	yes      bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new product to the inventory" }
func (*addCmd) Usage() string {
	return `apos add -name <name> [-buy <price>] [-sell <price>] [-stock <n>] [-barcode <code>] [-category <name>]

  Adds a product. A blank barcode gets a random 13-digit code. A buy price
  above the sell price asks for confirmation before saving.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Product name (required).")
	f.StringVar(&c.buy, "buy", "0", "Buy price.")
	f.StringVar(&c.sell, "sell", "0", "Sell price.")
	f.IntVar(&c.stock, "stock", 0, "Units in stock.")
	f.StringVar(&c.barcode, "barcode", "", "Barcode; generated when blank.")
	f.StringVar(&c.category, "category", "", "Category name or ID.")
	f.BoolVar(&c.yes, "y", false, "Answer yes to confirmation prompts.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	buy, err := decimal.NewFromString(c.buy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing buy price: %v\n", err)
		return subcommands.ExitUsageError
	}
	sell, err := decimal.NewFromString(c.sell)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing sell price: %v\n", err)
		return subcommands.ExitUsageError
	}

	category, err := resolveCategory(db, c.category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p := pos.Product{
		Name:      c.name,
		BuyPrice:  buy,
		SellPrice: sell,
		Stock:     c.stock,
		Barcode:   c.barcode,
		Category:  category,
	}

	if errors.Is(p.CheckPrices(), pos.ErrSuspiciousPrice) {
		if !confirm("El precio de compra es mayor que el precio de venta. ¿Deseas continuar?", c.yes) {
			return subcommands.ExitSuccess
		}
	}

	saved, err := db.AddProduct(p)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %q (id %s, barcode %s)\n", saved.Name, saved.ID, saved.Barcode)
	return subcommands.ExitSuccess
}

// resolveCategory accepts a category name or ID and returns the ID. An
// empty ref means uncategorized; an unknown ref is an error, never silently
// dropped (a typo must not save the product uncategorized).
func resolveCategory(db *pos.DB, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	for _, cat := range db.Categories() {
		if cat.ID == ref || cat.Name == ref {
			return cat.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", ref)
}

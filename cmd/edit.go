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

type editCmd struct {
	name     string
	buy      string
	sell     string
	stock    int
	barcode  string
	category string
	yes      bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing product" }
func (*editCmd) Usage() string {
	return `apos edit <product> [-name <name>] [-buy <price>] [-sell <price>] [-stock <n>] [-barcode <code>] [-category <name>]

  Edits a product, referenced by id, barcode or exact name. Only the flags
  that are set change the product.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "New product name.")
	f.StringVar(&c.buy, "buy", "", "New buy price.")
	f.StringVar(&c.sell, "sell", "", "New sell price.")
	f.IntVar(&c.stock, "stock", 0, "New stock count.")
	f.StringVar(&c.barcode, "barcode", "", "New barcode.")
	f.StringVar(&c.category, "category", "", "New category name or ID; \"none\" clears it.")
	f.BoolVar(&c.yes, "y", false, "Answer yes to confirmation prompts.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product reference.")
		return subcommands.ExitUsageError
	}

	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p := db.FindProduct(f.Arg(0))
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: no product matches %q.\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	// Each parse keeps its own error: a bad -buy must not be masked by a
	// later flag that parses fine.
	var parseErrs []error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			p.Name = c.name
		case "buy":
			v, err := decimal.NewFromString(c.buy)
			if err != nil {
				parseErrs = append(parseErrs, fmt.Errorf("error parsing buy price: %w", err))
				return
			}
			p.BuyPrice = v
		case "sell":
			v, err := decimal.NewFromString(c.sell)
			if err != nil {
				parseErrs = append(parseErrs, fmt.Errorf("error parsing sell price: %w", err))
				return
			}
			p.SellPrice = v
		case "stock":
			p.Stock = c.stock
		case "barcode":
			p.Barcode = c.barcode
		case "category":
			if c.category == "none" {
				p.Category = ""
				return
			}
			id, err := resolveCategory(db, c.category)
			if err != nil {
				parseErrs = append(parseErrs, err)
				return
			}
			p.Category = id
		}
	})
	if err := errors.Join(parseErrs...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	if errors.Is(p.CheckPrices(), pos.ErrSuspiciousPrice) {
		if !confirm("El precio de compra es mayor que el precio de venta. ¿Deseas continuar?", c.yes) {
			return subcommands.ExitSuccess
		}
	}

	if err := db.UpdateProduct(*p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %q\n", p.Name)
	return subcommands.ExitSuccess
}

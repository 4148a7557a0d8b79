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

type cartCmd struct{}

func (*cartCmd) Name() string     { return "cart" }
func (*cartCmd) Synopsis() string { return "show the sale in progress" }
func (*cartCmd) Usage() string {
	return `apos cart

  Shows the current cart with its subtotal.
`
}

func (*cartCmd) SetFlags(*flag.FlagSet) {}

func (*cartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, cfg, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cart := db.Cart()
	if len(cart) == 0 {
		fmt.Println("Tu carrito está vacío")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| Producto | Cant. | Precio | Importe |\n|----------|------:|-------:|--------:|\n")
	for _, it := range cart {
		subtotal := it.SellPrice.Mul(decimalFromInt(it.Quantity))
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
			it.Name, it.Quantity,
			pos.FormatMoney(it.SellPrice, cfg.Currency),
			pos.FormatMoney(subtotal, cfg.Currency))
	}
	fmt.Fprintf(&b, "\n%d artículo(s) - **Subtotal: %s**\n",
		pos.CartCount(cart), pos.FormatMoney(pos.CartSubtotal(cart), cfg.Currency))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

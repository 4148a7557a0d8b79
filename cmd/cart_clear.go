package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type cartClearCmd struct{}

func (*cartClearCmd) Name() string     { return "cart-clear" }
func (*cartClearCmd) Synopsis() string { return "empty the cart" }
func (*cartClearCmd) Usage() string {
	return `apos cart-clear

  Empties the cart without selling anything.
`
}

func (*cartClearCmd) SetFlags(*flag.FlagSet) {}

func (*cartClearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, _, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := db.ClearCart(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Cart cleared.")
	return subcommands.ExitSuccess
}

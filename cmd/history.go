package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos"
)

type historyCmd struct {
	query string
	from  string
	to    string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "browse the sales history" }
func (*historyCmd) Usage() string {
	return `apos history [-q <term>] [-from <YYYY-MM-DD>] [-to <YYYY-MM-DD>]

  Lists recorded sales, newest first, matching a search over receipt
  numbers and item names and an inclusive date range.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Search term over receipt numbers and item names.")
	f.StringVar(&c.from, "from", "", "Start day, inclusive.")
	f.StringVar(&c.to, "to", "", "End day, inclusive.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, to, err := parseDayRange(c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	db, cfg, err := openDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sales := pos.FilterSales(db.Sales(), c.query, from, to)
	if len(sales) == 0 {
		fmt.Println("No sales found.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| Recibo | Fecha | Artículos | Total |\n|--------|-------|----------:|------:|\n")
	for _, s := range sales {
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
			s.ReceiptNumber,
			s.Date.Format("02/01/2006 15:04"),
			pos.CartCount(s.Items),
			pos.FormatMoney(s.Total, cfg.Currency))
	}
	fmt.Fprintf(&b, "\n%d venta(s) - **Total: %s**\n",
		len(sales), pos.FormatMoney(pos.SalesTotal(sales), cfg.Currency))
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// parseDayRange parses optional YYYY-MM-DD bounds into an inclusive time
// range: the end bound covers the whole day.
func parseDayRange(from, to string) (time.Time, time.Time, error) {
	var lo, hi time.Time
	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return lo, hi, fmt.Errorf("error parsing start date: %w", err)
		}
		lo = t
	}
	if to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return lo, hi, fmt.Errorf("error parsing end date: %w", err)
		}
		hi = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return lo, hi, nil
}

package renderer

import (
	"github.com/libreria-amelia/pos"
)

// Summary is the display view of the inventory valuation.
type Summary struct {
	Products        int
	TotalBuyValue   string
	TotalSellValue  string
	PotentialProfit string
}

// NewSummary builds the display view of the inventory totals.
func NewSummary(products []pos.Product, currency string) *Summary {
	t := pos.ComputeTotals(products)
	return &Summary{
		Products:        len(products),
		TotalBuyValue:   pos.FormatMoney(t.TotalBuyValue, currency),
		TotalSellValue:  pos.FormatMoney(t.TotalSellValue, currency),
		PotentialProfit: pos.FormatMoney(t.PotentialProfit, currency),
	}
}

// RenderSummary renders the inventory totals to a markdown string.
func RenderSummary(s *Summary) string {
	return renderTemplate("summary.md", s)
}

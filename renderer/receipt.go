package renderer

import (
	"github.com/libreria-amelia/pos"
)

// ReceiptLine is one item row of a printable receipt.
type ReceiptLine struct {
	Name     string
	Barcode  string
	Quantity int
	Price    string
	Subtotal string
}

// Receipt is the printable view of a completed Sale.
type Receipt struct {
	Shop   string
	Number string
	Date   string
	Lines  []ReceiptLine
	Items  int
	Total  string
}

// NewReceipt builds the printable view of a sale, formatting every amount
// in the shop's currency.
func NewReceipt(sale pos.Sale, shop, currency string) *Receipt {
	r := &Receipt{
		Shop:   shop,
		Number: sale.ReceiptNumber,
		Date:   sale.Date.Format("02/01/2006 15:04"),
		Items:  pos.CartCount(sale.Items),
		Total:  pos.FormatMoney(sale.Total, currency),
	}
	for _, it := range sale.Items {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:     it.Name,
			Barcode:  it.Barcode,
			Quantity: it.Quantity,
			Price:    pos.FormatMoney(it.SellPrice, currency),
			Subtotal: pos.FormatMoney(it.SellPrice.Mul(quantity(it.Quantity)), currency),
		})
	}
	return r
}

// RenderReceipt renders the receipt to a markdown string.
func RenderReceipt(r *Receipt) string {
	return renderTemplate("receipt.md", r)
}

package pos

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInsufficientStock is returned (wrapped) when a cart asks for more
// units than the inventory currently holds.
var ErrInsufficientStock = errors.New("insufficient stock")

// Sale is an immutable record of a completed transaction. Items are
// by-value snapshots of the cart at checkout time: later edits to a Product
// never change a recorded Sale.
type Sale struct {
	ID            string          `json:"id"`
	Items         []CartItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Date          time.Time       `json:"date"`
	ReceiptNumber string          `json:"receiptNumber"`
}

// AddToCart adds 'qty' units of a product to the cart, merging with an
// existing line for the same product. The line quantity is capped at the
// product's current stock; a product with no stock cannot be added.
func AddToCart(cart []CartItem, p Product, qty int) ([]CartItem, error) {
	if qty < 1 {
		return cart, fmt.Errorf("%w: quantity must be positive", ErrInvalid)
	}
	if p.Stock <= 0 {
		return cart, fmt.Errorf("%w: %q is out of stock", ErrInsufficientStock, p.Name)
	}
	updated := slices.Clone(cart)
	if i := slices.IndexFunc(updated, func(it CartItem) bool { return it.ID == p.ID }); i >= 0 {
		updated[i].Quantity = min(updated[i].Quantity+qty, p.Stock)
		return updated, nil
	}
	return append(updated, CartItem{Product: p, Quantity: min(qty, p.Stock)}), nil
}

// SetQuantity sets the quantity of the cart line for product 'id'. The
// quantity is capped at the line's snapshot of the stock; zero or less
// removes the line.
func SetQuantity(cart []CartItem, id string, qty int) []CartItem {
	i := slices.IndexFunc(cart, func(it CartItem) bool { return it.ID == id })
	if i < 0 {
		return cart
	}
	if qty <= 0 {
		return slices.Delete(slices.Clone(cart), i, i+1)
	}
	updated := slices.Clone(cart)
	updated[i].Quantity = min(qty, updated[i].Stock)
	return updated
}

// RemoveFromCart removes the cart line for product 'id', if any.
func RemoveFromCart(cart []CartItem, id string) []CartItem {
	return SetQuantity(cart, id, 0)
}

// CartCount returns the total number of units in the cart.
func CartCount(cart []CartItem) int {
	var n int
	for _, it := range cart {
		n += it.Quantity
	}
	return n
}

// CartSubtotal returns the sale value of the cart.
func CartSubtotal(cart []CartItem) decimal.Decimal {
	var total decimal.Decimal
	for _, it := range cart {
		total = total.Add(it.SellPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// FormatReceiptNumber renders a receipt sequence number in the short form
// printed on tickets.
func FormatReceiptNumber(seq uint64) string {
	return fmt.Sprintf("R-%06d", seq)
}

// Checkout turns the cart into a Sale dated 'now' with the given receipt
// number, and returns the product list with stocks decremented.
//
// Every line is re-validated against the current stock here, regardless of
// what the caller capped at add time: a cart asking for more units than are
// in stock rejects the whole checkout, listing every offending line, and
// leaves the inputs untouched. Post-checkout stock is therefore never
// negative.
func Checkout(cart []CartItem, products []Product, receiptNumber string, now time.Time) ([]Product, Sale, error) {
	if len(cart) == 0 {
		return products, Sale{}, fmt.Errorf("%w: cart is empty", ErrInvalid)
	}

	var short []string
	for _, it := range cart {
		i := slices.IndexFunc(products, func(p Product) bool { return p.ID == it.ID })
		if i < 0 {
			short = append(short, fmt.Sprintf("%s: no longer in the inventory", it.Name))
			continue
		}
		if it.Quantity > products[i].Stock {
			short = append(short, fmt.Sprintf("%s: want %d, have %d", it.Name, it.Quantity, products[i].Stock))
		}
	}
	if len(short) > 0 {
		return products, Sale{}, fmt.Errorf("%w: %s", ErrInsufficientStock, strings.Join(short, "; "))
	}

	updated := slices.Clone(products)
	for _, it := range cart {
		i := slices.IndexFunc(updated, func(p Product) bool { return p.ID == it.ID })
		updated[i].Stock -= it.Quantity
	}

	sale := Sale{
		ID:            NewID(),
		Items:         slices.Clone(cart),
		Total:         CartSubtotal(cart),
		Date:          now,
		ReceiptNumber: receiptNumber,
	}
	return updated, sale, nil
}

// FilterSales returns the sales matching a case-insensitive search over the
// receipt number and item names, restricted to the inclusive [from, to]
// date range (a zero time means unbounded on that side). The result is
// sorted newest first; sales on the same instant keep their input order.
func FilterSales(history []Sale, term string, from, to time.Time) []Sale {
	term = strings.ToLower(term)
	var out []Sale
	for _, s := range history {
		if term != "" && !saleMatches(s, term) {
			continue
		}
		if !from.IsZero() && s.Date.Before(from) {
			continue
		}
		if !to.IsZero() && s.Date.After(to) {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func saleMatches(s Sale, lowerTerm string) bool {
	if strings.Contains(strings.ToLower(s.ReceiptNumber), lowerTerm) {
		return true
	}
	for _, it := range s.Items {
		if strings.Contains(strings.ToLower(it.Name), lowerTerm) {
			return true
		}
	}
	return false
}

// SalesTotal sums the totals of the given sales.
func SalesTotal(sales []Sale) decimal.Decimal {
	var total decimal.Decimal
	for _, s := range sales {
		total = total.Add(s.Total)
	}
	return total
}

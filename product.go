package pos

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalid is returned (wrapped) when an entity fails validation.
var ErrInvalid = errors.New("invalid input")

// ErrSuspiciousPrice reports a product whose buy price exceeds its sell
// price. It is advisory: callers may confirm with the user and save anyway.
var ErrSuspiciousPrice = errors.New("buy price exceeds sell price")

// Product is a sellable inventory item.
//
// Category holds the ID of a Category, or "" for an uncategorized product.
// The JSON field names match the persisted slot format.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name" validate:"required"`
	BuyPrice  decimal.Decimal `json:"buyPrice"`
	SellPrice decimal.Decimal `json:"sellPrice"`
	Stock     int             `json:"stock" validate:"gte=0"`
	Barcode   string          `json:"barcode" validate:"required"`
	Category  string          `json:"category"`
}

// Category is a named grouping for products. Names are unique within the
// collection, compared case-insensitively.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CartItem is a product plus the quantity selected for the sale in
// progress. Quantity is positive and never exceeds the product's stock at
// the time the item was added or incremented.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

var validate = validator.New()

// Validate checks a product for correctness. It returns an ErrInvalid
// wrapped error naming the first offending field, or nil.
//
// A questionable (but legal) price relation is not part of Validate; see
// CheckPrices.
func (p Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		var validationErr validator.ValidationErrors
		if errors.As(err, &validationErr) {
			switch validationErr[0].Field() {
			case "Name":
				return fmt.Errorf("%w: product name is required", ErrInvalid)
			case "Barcode":
				return fmt.Errorf("%w: product barcode is required", ErrInvalid)
			case "Stock":
				return fmt.Errorf("%w: stock cannot be negative", ErrInvalid)
			}
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if p.BuyPrice.IsNegative() || p.SellPrice.IsNegative() {
		return fmt.Errorf("%w: prices cannot be negative", ErrInvalid)
	}
	return nil
}

// CheckPrices returns ErrSuspiciousPrice when the product would sell at a
// loss. Saving such a product is allowed once the user confirms.
func (p Product) CheckPrices() error {
	if p.BuyPrice.GreaterThan(p.SellPrice) {
		return ErrSuspiciousPrice
	}
	return nil
}

// TotalBuy returns the purchase value of the current stock.
func (p Product) TotalBuy() decimal.Decimal {
	return p.BuyPrice.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// TotalSell returns the sale value of the current stock.
func (p Product) TotalSell() decimal.Decimal {
	return p.SellPrice.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// Matches reports whether the product's name or barcode contains 'term',
// case-insensitively. An empty term matches everything.
func (p Product) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Barcode), term)
}

// NewID returns a fresh opaque unique identifier.
func NewID() string { return uuid.NewString() }

// NewBarcode returns a random 13-digit numeric string, EAN-13 shaped but
// with no check-digit guarantee.
func NewBarcode() string {
	var b strings.Builder
	for range 13 {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

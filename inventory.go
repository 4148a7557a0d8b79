package pos

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// AllCategories is the category filter value that matches every product.
const AllCategories = "all"

// Totals aggregates the value of the whole inventory.
type Totals struct {
	TotalBuyValue   decimal.Decimal
	TotalSellValue  decimal.Decimal
	PotentialProfit decimal.Decimal
}

// ComputeTotals computes the inventory valuation. PotentialProfit is
// exactly TotalSellValue - TotalBuyValue.
func ComputeTotals(products []Product) Totals {
	var t Totals
	for _, p := range products {
		t.TotalBuyValue = t.TotalBuyValue.Add(p.TotalBuy())
		t.TotalSellValue = t.TotalSellValue.Add(p.TotalSell())
	}
	t.PotentialProfit = t.TotalSellValue.Sub(t.TotalBuyValue)
	return t
}

// StockFilter selects products by stock level.
type StockFilter int

const (
	// StockAll matches every product.
	StockAll StockFilter = iota
	// StockLow matches products with 0 < stock <= 10.
	StockLow
	// StockOut matches products with no stock left.
	StockOut
)

func (f StockFilter) String() string {
	switch f {
	case StockAll:
		return "all"
	case StockLow:
		return "low"
	case StockOut:
		return "out"
	default:
		return "unknown"
	}
}

// ParseStockFilter parses a string into a StockFilter.
func ParseStockFilter(s string) (StockFilter, error) {
	switch s {
	case "", "all":
		return StockAll, nil
	case "low":
		return StockLow, nil
	case "out":
		return StockOut, nil
	default:
		return 0, fmt.Errorf("unknown stock filter: %q", s)
	}
}

func (f StockFilter) match(stock int) bool {
	switch f {
	case StockLow:
		return stock > 0 && stock <= 10
	case StockOut:
		return stock == 0
	default:
		return true
	}
}

// FilterProducts returns the products matching all three criteria: a
// case-insensitive search over name and barcode (empty term matches all), a
// category ID (or AllCategories), and a stock level filter.
func FilterProducts(products []Product, term, categoryID string, stock StockFilter) []Product {
	var out []Product
	for _, p := range products {
		if !p.Matches(term) {
			continue
		}
		if categoryID != AllCategories && categoryID != "" && p.Category != categoryID {
			continue
		}
		if !stock.match(p.Stock) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortField names a sortable product column.
type SortField int

const (
	SortByName SortField = iota
	SortByBuyPrice
	SortBySellPrice
	SortByStock
	SortByCategory
)

func (f SortField) String() string {
	switch f {
	case SortByName:
		return "name"
	case SortByBuyPrice:
		return "buyPrice"
	case SortBySellPrice:
		return "sellPrice"
	case SortByStock:
		return "stock"
	case SortByCategory:
		return "category"
	default:
		return "unknown"
	}
}

// ParseSortField parses a string into a SortField.
func ParseSortField(s string) (SortField, error) {
	switch s {
	case "", "name":
		return SortByName, nil
	case "buyPrice":
		return SortByBuyPrice, nil
	case "sellPrice":
		return SortBySellPrice, nil
	case "stock":
		return SortByStock, nil
	case "category":
		return SortByCategory, nil
	default:
		return 0, fmt.Errorf("unknown sort field: %q", s)
	}
}

// SortProducts returns a sorted copy of 'products'. String fields compare
// case-insensitively; the category field compares by the resolved category
// name, not the ID. The sort is stable so that ties preserve the input
// order, which keeps pagination deterministic.
func SortProducts(products []Product, categories []Category, field SortField, desc bool) []Product {
	sorted := slices.Clone(products)
	cmp := func(a, b Product) int {
		switch field {
		case SortByBuyPrice:
			return a.BuyPrice.Cmp(b.BuyPrice)
		case SortBySellPrice:
			return a.SellPrice.Cmp(b.SellPrice)
		case SortByStock:
			return a.Stock - b.Stock
		case SortByCategory:
			return strings.Compare(
				strings.ToLower(CategoryName(categories, a.Category)),
				strings.ToLower(CategoryName(categories, b.Category)))
		default:
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(sorted[i], sorted[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return sorted
}

// Paginate returns the 1-based page of 'list' with 'pageSize' elements.
// Clamping the page number into range is the caller's responsibility; an
// out-of-range page yields an empty slice.
func Paginate[T any](list []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return nil
	}
	lo := (page - 1) * pageSize
	if lo >= len(list) {
		return nil
	}
	hi := min(lo+pageSize, len(list))
	return list[lo:hi]
}

// CategoryName resolves a category ID to its display name. Unknown or empty
// IDs resolve to the uncategorized label.
func CategoryName(categories []Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Sin categoría"
}

// AddCategory appends a new category with a fresh ID. The trimmed name must
// be non-empty and unique within the collection, case-insensitively.
func AddCategory(categories []Category, name string) ([]Category, Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return categories, Category{}, fmt.Errorf("%w: category name is required", ErrInvalid)
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return categories, Category{}, fmt.Errorf("%w: category %q already exists", ErrInvalid, c.Name)
		}
	}
	cat := Category{ID: NewID(), Name: name}
	return append(slices.Clone(categories), cat), cat, nil
}

// DeleteCategory removes the category and clears the Category field of
// every product that referenced it (cascade-clear, not cascade-delete).
// Both updated collections are returned together so callers can persist
// them as one operation.
func DeleteCategory(categories []Category, products []Product, id string) ([]Category, []Product, error) {
	i := slices.IndexFunc(categories, func(c Category) bool { return c.ID == id })
	if i < 0 {
		return categories, products, fmt.Errorf("%w: unknown category %q", ErrInvalid, id)
	}
	updatedCats := slices.Delete(slices.Clone(categories), i, i+1)
	updatedProds := slices.Clone(products)
	for j := range updatedProds {
		if updatedProds[j].Category == id {
			updatedProds[j].Category = ""
		}
	}
	return updatedCats, updatedProds, nil
}

// MergeProducts reconciles imported products into the existing list by ID:
// a product whose ID is already present replaces it in place, everything
// else is appended.
func MergeProducts(existing, imported []Product) []Product {
	merged := slices.Clone(existing)
	for _, p := range imported {
		i := slices.IndexFunc(merged, func(q Product) bool { return q.ID == p.ID })
		if i >= 0 {
			merged[i] = p
		} else {
			merged = append(merged, p)
		}
	}
	return merged
}

package pos

import (
	"fmt"
	"slices"
	"time"

	"github.com/libreria-amelia/pos/store"
)

// Slot keys, one per persisted collection. External consumers reading these
// slots directly must tolerate absence and malformed JSON, both of which
// mean "empty collection".
const (
	SlotProducts   = "amelia-products"
	SlotCategories = "amelia-categories"
	SlotCart       = "amelia-cart"
	SlotSales      = "amelia-sales-history"
	SlotReceiptSeq = "amelia-receipt-seq"
)

// DB binds the shop's collections to a store. All reads fall back to the
// empty collection; all mutating methods persist before returning. The two
// cross-collection mutations (Checkout, DeleteCategory) are single methods
// so both slots are always updated together.
type DB struct {
	store store.Store
}

// Open binds a DB to the given store.
func Open(s store.Store) *DB { return &DB{store: s} }

// Products returns the product list.
func (db *DB) Products() []Product {
	return store.Get(db.store, SlotProducts, []Product{})
}

// Categories returns the category list.
func (db *DB) Categories() []Category {
	return store.Get(db.store, SlotCategories, []Category{})
}

// Cart returns the in-progress cart.
func (db *DB) Cart() []CartItem {
	return store.Get(db.store, SlotCart, []CartItem{})
}

// Sales returns the sales history.
func (db *DB) Sales() []Sale {
	return store.Get(db.store, SlotSales, []Sale{})
}

// Product returns the product with the given ID, or nil.
func (db *DB) Product(id string) *Product {
	products := db.Products()
	if i := slices.IndexFunc(products, func(p Product) bool { return p.ID == id }); i >= 0 {
		return &products[i]
	}
	return nil
}

// FindProduct returns the product whose ID, barcode or exact name matches
// 'ref', or nil. The CLI lets clerks reference products any of those ways.
func (db *DB) FindProduct(ref string) *Product {
	products := db.Products()
	i := slices.IndexFunc(products, func(p Product) bool {
		return p.ID == ref || p.Barcode == ref || p.Name == ref
	})
	if i < 0 {
		return nil
	}
	return &products[i]
}

// AddProduct validates and appends a new product, generating the ID and
// barcode when blank.
func (db *DB) AddProduct(p Product) (Product, error) {
	if p.ID == "" {
		p.ID = NewID()
	}
	if p.Barcode == "" {
		p.Barcode = NewBarcode()
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	products := db.Products()
	if slices.ContainsFunc(products, func(q Product) bool { return q.ID == p.ID }) {
		return Product{}, fmt.Errorf("%w: duplicate product id %q", ErrInvalid, p.ID)
	}
	return p, db.store.Save(SlotProducts, append(products, p))
}

// UpdateProduct validates and replaces the product with the same ID.
func (db *DB) UpdateProduct(p Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	products := db.Products()
	i := slices.IndexFunc(products, func(q Product) bool { return q.ID == p.ID })
	if i < 0 {
		return fmt.Errorf("%w: unknown product %q", ErrInvalid, p.ID)
	}
	products[i] = p
	return db.store.Save(SlotProducts, products)
}

// DeleteProduct removes a product from the inventory. Recorded sales keep
// their snapshots.
func (db *DB) DeleteProduct(id string) error {
	products := db.Products()
	i := slices.IndexFunc(products, func(p Product) bool { return p.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: unknown product %q", ErrInvalid, id)
	}
	return db.store.Save(SlotProducts, slices.Delete(products, i, i+1))
}

// ImportProducts merges decoded products into the inventory by ID and
// persists the result. It returns how many products were updated in place
// and how many were appended. Rows sharing one ID within the batch collapse
// into a single product, and count once.
func (db *DB) ImportProducts(imported []Product) (updated, added int, err error) {
	existing := db.Products()
	seen := make(map[string]bool, len(imported))
	for _, p := range imported {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		if slices.ContainsFunc(existing, func(q Product) bool { return q.ID == p.ID }) {
			updated++
		} else {
			added++
		}
	}
	return updated, added, db.store.Save(SlotProducts, MergeProducts(existing, imported))
}

// AddCategory creates a new category with a unique, case-insensitive name.
func (db *DB) AddCategory(name string) (Category, error) {
	categories, cat, err := AddCategory(db.Categories(), name)
	if err != nil {
		return Category{}, err
	}
	return cat, db.store.Save(SlotCategories, categories)
}

// DeleteCategory removes a category and clears it from every referencing
// product, persisting both collections before returning.
func (db *DB) DeleteCategory(id string) error {
	categories, products, err := DeleteCategory(db.Categories(), db.Products(), id)
	if err != nil {
		return err
	}
	if err := db.store.Save(SlotCategories, categories); err != nil {
		return err
	}
	return db.store.Save(SlotProducts, products)
}

// AddToCart puts 'qty' units of a product into the cart.
func (db *DB) AddToCart(productID string, qty int) error {
	p := db.Product(productID)
	if p == nil {
		return fmt.Errorf("%w: unknown product %q", ErrInvalid, productID)
	}
	cart, err := AddToCart(db.Cart(), *p, qty)
	if err != nil {
		return err
	}
	return db.store.Save(SlotCart, cart)
}

// SetCartQuantity sets a cart line's quantity; zero or less removes it.
func (db *DB) SetCartQuantity(productID string, qty int) error {
	return db.store.Save(SlotCart, SetQuantity(db.Cart(), productID, qty))
}

// ClearCart empties the cart.
func (db *DB) ClearCart() error {
	return db.store.Save(SlotCart, []CartItem{})
}

// Checkout completes the sale in progress: stocks are re-validated and
// decremented, the sale snapshot is appended to the history with the next
// receipt number, and the cart is cleared. Every touched slot is persisted
// before Checkout returns.
func (db *DB) Checkout() (Sale, error) {
	cart := db.Cart()
	seq := store.Get(db.store, SlotReceiptSeq, uint64(0)) + 1

	products, sale, err := Checkout(cart, db.Products(), FormatReceiptNumber(seq), time.Now())
	if err != nil {
		return Sale{}, err
	}

	if err := db.store.Save(SlotProducts, products); err != nil {
		return Sale{}, err
	}
	if err := db.store.Save(SlotSales, append(db.Sales(), sale)); err != nil {
		return Sale{}, err
	}
	if err := db.store.Save(SlotReceiptSeq, seq); err != nil {
		return Sale{}, err
	}
	return sale, db.store.Save(SlotCart, []CartItem{})
}

// Sale returns the sale with the given ID or receipt number, or nil.
func (db *DB) Sale(ref string) *Sale {
	sales := db.Sales()
	i := slices.IndexFunc(sales, func(s Sale) bool {
		return s.ID == ref || s.ReceiptNumber == ref
	})
	if i < 0 {
		return nil
	}
	return &sales[i]
}

// DeleteSale removes one sale from the history.
func (db *DB) DeleteSale(ref string) error {
	sales := db.Sales()
	i := slices.IndexFunc(sales, func(s Sale) bool {
		return s.ID == ref || s.ReceiptNumber == ref
	})
	if i < 0 {
		return fmt.Errorf("%w: unknown sale %q", ErrInvalid, ref)
	}
	return db.store.Save(SlotSales, slices.Delete(sales, i, i+1))
}

// ClearSales deletes the whole sales history.
func (db *DB) ClearSales() error {
	return db.store.Save(SlotSales, []Sale{})
}

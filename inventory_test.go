package pos

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func sampleProducts() []Product {
	return []Product{
		{ID: "p1", Name: "Cuaderno Rayado", BuyPrice: d(20), SellPrice: d(35), Stock: 12, Barcode: "7501031311309", Category: "c1"},
		{ID: "p2", Name: "Lápiz HB", BuyPrice: d(5), SellPrice: d(10), Stock: 3, Barcode: "7501031311310", Category: "c1"},
		{ID: "p3", Name: "Borrador Blanco", BuyPrice: d(4), SellPrice: d(8), Stock: 0, Barcode: "7501031311311", Category: "c2"},
		{ID: "p4", Name: "Resma Papel A4", BuyPrice: d(150), SellPrice: d(220), Stock: 7, Barcode: "7501031311312", Category: ""},
	}
}

func sampleCategories() []Category {
	return []Category{
		{ID: "c1", Name: "Escolar"},
		{ID: "c2", Name: "Accesorios"},
	}
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(sampleProducts())

	// 20*12 + 5*3 + 4*0 + 150*7 = 1305
	if got, want := totals.TotalBuyValue, d(1305); !got.Equal(want) {
		t.Errorf("TotalBuyValue = %s, want %s", got, want)
	}
	// 35*12 + 10*3 + 8*0 + 220*7 = 1990
	if got, want := totals.TotalSellValue, d(1990); !got.Equal(want) {
		t.Errorf("TotalSellValue = %s, want %s", got, want)
	}
	if got, want := totals.PotentialProfit, totals.TotalSellValue.Sub(totals.TotalBuyValue); !got.Equal(want) {
		t.Errorf("PotentialProfit = %s, want %s", got, want)
	}
}

func TestFilterProducts(t *testing.T) {
	products := sampleProducts()

	cases := []struct {
		name       string
		term       string
		categoryID string
		stock      StockFilter
		wantIDs    []string
	}{
		{"everything", "", AllCategories, StockAll, []string{"p1", "p2", "p3", "p4"}},
		{"term matches name case-insensitively", "cuaderno", AllCategories, StockAll, []string{"p1"}},
		{"term matches barcode", "1311310", AllCategories, StockAll, []string{"p2"}},
		{"by category", "", "c1", StockAll, []string{"p1", "p2"}},
		{"low stock", "", AllCategories, StockLow, []string{"p2", "p4"}},
		{"out of stock", "", AllCategories, StockOut, []string{"p3"}},
		{"combined", "hb", "c1", StockLow, []string{"p2"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterProducts(products, tc.term, tc.categoryID, tc.stock)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("FilterProducts() returned %d products, want %d", len(got), len(tc.wantIDs))
			}
			for i, p := range got {
				if p.ID != tc.wantIDs[i] {
					t.Errorf("product[%d].ID = %q, want %q", i, p.ID, tc.wantIDs[i])
				}
			}
		})
	}
}

func TestSortProducts(t *testing.T) {
	products := sampleProducts()
	categories := sampleCategories()

	sorted := SortProducts(products, categories, SortBySellPrice, false)
	wantOrder := []string{"p3", "p2", "p1", "p4"}
	for i, p := range sorted {
		if p.ID != wantOrder[i] {
			t.Errorf("asc sellPrice[%d] = %q, want %q", i, p.ID, wantOrder[i])
		}
	}

	sorted = SortProducts(products, categories, SortByStock, true)
	wantOrder = []string{"p1", "p4", "p2", "p3"}
	for i, p := range sorted {
		if p.ID != wantOrder[i] {
			t.Errorf("desc stock[%d] = %q, want %q", i, p.ID, wantOrder[i])
		}
	}

	// The input slice is never reordered in place.
	if products[0].ID != "p1" {
		t.Error("SortProducts() mutated its input")
	}
}

func TestSortProducts_StableOnCategoryTies(t *testing.T) {
	products := sampleProducts()
	categories := sampleCategories()

	// p1 and p2 share a category; the tie must preserve input order.
	sorted := SortProducts(products, categories, SortByCategory, false)
	// Resolved names: p3 "Accesorios", p1/p2 "Escolar", p4 "Sin categoría".
	wantOrder := []string{"p3", "p1", "p2", "p4"}
	for i, p := range sorted {
		if p.ID != wantOrder[i] {
			t.Errorf("category[%d] = %q, want %q", i, p.ID, wantOrder[i])
		}
	}
}

func TestPaginate(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}

	if got := Paginate(list, 1, 2); len(got) != 2 || got[0] != 1 {
		t.Errorf("page 1 = %v, want [1 2]", got)
	}
	if got := Paginate(list, 3, 2); len(got) != 1 || got[0] != 5 {
		t.Errorf("page 3 = %v, want [5]", got)
	}
	if got := Paginate(list, 4, 2); got != nil {
		t.Errorf("out-of-range page = %v, want nil", got)
	}
	if got := Paginate(list, 0, 2); got != nil {
		t.Errorf("page 0 = %v, want nil", got)
	}
}

func TestCategoryName(t *testing.T) {
	categories := sampleCategories()

	if got := CategoryName(categories, "c1"); got != "Escolar" {
		t.Errorf("CategoryName(c1) = %q, want Escolar", got)
	}
	if got := CategoryName(categories, ""); got != "Sin categoría" {
		t.Errorf("CategoryName(empty) = %q, want Sin categoría", got)
	}
	if got := CategoryName(categories, "nope"); got != "Sin categoría" {
		t.Errorf("CategoryName(unknown) = %q, want Sin categoría", got)
	}
}

func TestAddCategory(t *testing.T) {
	categories := sampleCategories()

	updated, cat, err := AddCategory(categories, "  Oficina ")
	if err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}
	if cat.Name != "Oficina" {
		t.Errorf("name = %q, want trimmed %q", cat.Name, "Oficina")
	}
	if cat.ID == "" {
		t.Error("new category has no ID")
	}
	if len(updated) != len(categories)+1 {
		t.Errorf("len = %d, want %d", len(updated), len(categories)+1)
	}

	// Duplicate detection is case-insensitive.
	if _, _, err := AddCategory(updated, "escolar"); !errors.Is(err, ErrInvalid) {
		t.Errorf("duplicate AddCategory() error = %v, want ErrInvalid", err)
	}
	if _, _, err := AddCategory(updated, "   "); !errors.Is(err, ErrInvalid) {
		t.Errorf("blank AddCategory() error = %v, want ErrInvalid", err)
	}
}

func TestDeleteCategory_CascadeClears(t *testing.T) {
	products := sampleProducts()
	categories := sampleCategories()

	cats, prods, err := DeleteCategory(categories, products, "c1")
	if err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}

	if len(cats) != 1 || cats[0].ID != "c2" {
		t.Errorf("categories after delete = %v, want only c2", cats)
	}
	for _, p := range prods {
		switch p.ID {
		case "p1", "p2":
			if p.Category != "" {
				t.Errorf("product %s still references deleted category %q", p.ID, p.Category)
			}
		case "p3":
			if p.Category != "c2" {
				t.Errorf("product p3 category = %q, want untouched c2", p.Category)
			}
		}
	}

	if _, _, err := DeleteCategory(categories, products, "nope"); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown DeleteCategory() error = %v, want ErrInvalid", err)
	}
}

func TestMergeProducts(t *testing.T) {
	existing := sampleProducts()
	imported := []Product{
		{ID: "p2", Name: "Lápiz 2B", BuyPrice: d(6), SellPrice: d(12), Stock: 50, Barcode: "7501031311310"},
		{ID: "p9", Name: "Tijeras", BuyPrice: d(15), SellPrice: d(25), Stock: 4, Barcode: "7501031311399"},
	}

	merged := MergeProducts(existing, imported)
	if len(merged) != 5 {
		t.Fatalf("len = %d, want 5", len(merged))
	}
	// p2 replaced in place, keeping its position.
	if merged[1].Name != "Lápiz 2B" || merged[1].Stock != 50 {
		t.Errorf("p2 not replaced in place: %+v", merged[1])
	}
	if merged[4].ID != "p9" {
		t.Errorf("new product not appended, got %q", merged[4].ID)
	}
}

func TestProductValidate(t *testing.T) {
	valid := Product{ID: "x", Name: "Regla", BuyPrice: d(3), SellPrice: d(6), Stock: 1, Barcode: "123"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cases := []struct {
		name string
		mut  func(*Product)
	}{
		{"missing name", func(p *Product) { p.Name = "" }},
		{"missing barcode", func(p *Product) { p.Barcode = "" }},
		{"negative stock", func(p *Product) { p.Stock = -1 }},
		{"negative price", func(p *Product) { p.SellPrice = d(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mut(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestProductCheckPrices(t *testing.T) {
	p := Product{Name: "Caro", BuyPrice: d(10), SellPrice: d(5), Barcode: "1"}
	if err := p.CheckPrices(); !errors.Is(err, ErrSuspiciousPrice) {
		t.Errorf("CheckPrices() error = %v, want ErrSuspiciousPrice", err)
	}
	p.SellPrice = d(10)
	if err := p.CheckPrices(); err != nil {
		t.Errorf("CheckPrices() at break-even error = %v, want nil", err)
	}
}

func TestNewBarcode(t *testing.T) {
	code := NewBarcode()
	if len(code) != 13 {
		t.Fatalf("len = %d, want 13", len(code))
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			t.Fatalf("barcode %q contains non-digit %q", code, c)
		}
	}
}

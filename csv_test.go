package pos

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExportFilename(t *testing.T) {
	day := time.Date(2025, time.August, 28, 15, 0, 0, 0, time.UTC)
	if got, want := ExportFilename(day), "inventario-libreria-amelia-2025-08-28.csv"; got != want {
		t.Errorf("ExportFilename() = %q, want %q", got, want)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Cuaderno Rayado", BuyPrice: d(20), SellPrice: d(35), Stock: 12, Barcode: "7501031311309", Category: "c1"},
		{ID: "p2", Name: `O'Brien, "Special" Edition`, BuyPrice: d(150), SellPrice: d(250), Stock: 2, Barcode: "7501031311310", Category: ""},
	}

	var buf strings.Builder
	if err := ExportCSV(&buf, products); err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	res, err := ImportCSV(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if len(res.RowErrors) != 0 {
		t.Fatalf("RowErrors = %v, want none", res.RowErrors)
	}
	if len(res.Products) != 2 {
		t.Fatalf("imported %d products, want 2", len(res.Products))
	}

	got := res.Products[1]
	want := products[1]
	if got.Name != want.Name {
		t.Errorf("name = %q, want %q (quotes and comma must survive)", got.Name, want.Name)
	}
	if got.ID != want.ID || got.Barcode != want.Barcode || got.Category != want.Category {
		t.Errorf("identity fields = %+v, want %+v", got, want)
	}
	if !got.BuyPrice.Equal(want.BuyPrice) || !got.SellPrice.Equal(want.SellPrice) {
		t.Errorf("prices = %s/%s, want %s/%s", got.BuyPrice, got.SellPrice, want.BuyPrice, want.SellPrice)
	}
	if got.Stock != want.Stock {
		t.Errorf("stock = %d, want %d", got.Stock, want.Stock)
	}
}

func TestImportCSV_MissingColumns(t *testing.T) {
	in := "id,name,buyPrice,sellPrice,barcode\np1,Cuaderno,20,35,123\n"

	_, err := ImportCSV(strings.NewReader(in))
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("ImportCSV() error = %v, want *FormatError", err)
	}
	if len(formatErr.Missing) != 1 || formatErr.Missing[0] != "stock" {
		t.Errorf("Missing = %v, want [stock]", formatErr.Missing)
	}
}

func TestImportCSV_SkipsBadRows(t *testing.T) {
	in := strings.Join([]string{
		"name,buyPrice,sellPrice,stock,barcode,category",
		"Cuaderno,20,35,12,7501031311309,",
		",5,10,3,7501031311310,", // blank name on file line 3
		"Lápiz,5,10,3",           // wrong column count on file line 4
		"Borrador,x,y,z,,",       // bad numbers coerce, blank barcode defaults
		"",
	}, "\n")

	res, err := ImportCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if len(res.Products) != 2 {
		t.Fatalf("imported %d products, want 2", len(res.Products))
	}
	if len(res.RowErrors) != 2 {
		t.Fatalf("RowErrors = %v, want 2 messages", res.RowErrors)
	}
	if !strings.Contains(res.RowErrors[0], "line 3") {
		t.Errorf("first row error = %q, want a line 3 message", res.RowErrors[0])
	}
	if !strings.Contains(res.RowErrors[1], "line 4") {
		t.Errorf("second row error = %q, want a line 4 message", res.RowErrors[1])
	}

	// Blank id and barcode were generated, bad numbers coerced to zero.
	borrador := res.Products[1]
	if borrador.ID == "" || borrador.Barcode == "" {
		t.Errorf("defaults not generated: %+v", borrador)
	}
	if !borrador.BuyPrice.IsZero() || borrador.Stock != 0 {
		t.Errorf("bad numbers should coerce to zero: %+v", borrador)
	}
}

func TestImportCSV_NothingImportable(t *testing.T) {
	in := "name,buyPrice,sellPrice,stock,barcode\n,1,2,3,x\n"
	_, err := ImportCSV(strings.NewReader(in))
	if err == nil {
		t.Fatal("ImportCSV() error = nil, want failure when no row validated")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want the collected row messages", err)
	}
}

func TestWriteTemplate(t *testing.T) {
	var buf strings.Builder
	if err := WriteTemplate(&buf); err != nil {
		t.Fatalf("WriteTemplate() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("template has %d lines, want header plus example row", len(lines))
	}
	if lines[0] != "name,buyPrice,sellPrice,stock,barcode,category" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Producto Ejemplo,") {
		t.Errorf("example row = %q", lines[1])
	}
}

func TestParseCSVLine(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{`"a,b",c`, []string{"a,b", "c"}},
		{`"say ""hi""",x`, []string{`say "hi"`, "x"}},
		{"a,,c", []string{"a", "", "c"}},
	}
	for _, tc := range cases {
		got := parseCSVLine(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("parseCSVLine(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("parseCSVLine(%q)[%d] = %q, want %q", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

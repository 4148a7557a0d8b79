package pos

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
)

// ExportXLSX writes the product list as a single-sheet Excel workbook with
// the same columns as the CSV export, for shops that live in spreadsheets.
func ExportXLSX(w io.Writer, products []Product, categories []Category) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Inventario")
	if err != nil {
		return fmt.Errorf("cannot create xlsx sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range csvHeader {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetString(p.ID)
		row.AddCell().SetString(p.Name)
		row.AddCell().SetFloat(p.BuyPrice.InexactFloat64())
		row.AddCell().SetFloat(p.SellPrice.InexactFloat64())
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetString(p.Barcode)
		// spreadsheets are for humans: resolve the category name.
		if p.Category == "" {
			row.AddCell().SetString("")
		} else {
			row.AddCell().SetString(CategoryName(categories, p.Category))
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write xlsx workbook: %w", err)
	}
	return nil
}

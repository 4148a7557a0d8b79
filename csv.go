package pos

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// this file implements the CSV import/export format for the product list.
// It is deliberately permissive on import: bad rows are skipped with a
// per-line message and ingestion keeps going, which suits a small-business
// import tool better than all-or-nothing validation. The header contract is
// the only hard precondition.

// csvHeader is the full export header. On import only requiredColumns must
// be present; id and category are optional.
var csvHeader = []string{"id", "name", "buyPrice", "sellPrice", "stock", "barcode", "category"}

var requiredColumns = []string{"name", "buyPrice", "sellPrice", "stock", "barcode"}

// TemplateFilename is the conventional name for the import template.
const TemplateFilename = "plantilla-inventario.csv"

// ExportFilename returns the conventional export file name for the given
// day, e.g. "inventario-libreria-amelia-2025-08-28.csv".
func ExportFilename(day time.Time) string {
	return fmt.Sprintf("inventario-libreria-amelia-%s.csv", day.Format("2006-01-02"))
}

// FormatError reports an import file whose header is missing required
// columns. Nothing is imported from such a file.
type FormatError struct {
	Missing []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("csv header is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ExportCSV writes the product list in the import/export format: a header
// row followed by one row per product. Only the name field is quoted
// (doubling any inner quote); it is the only field expected to contain
// commas.
func ExportCSV(w io.Writer, products []Product) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.Join(csvHeader, ","))
	for _, p := range products {
		fmt.Fprintf(bw, "%s,%s,%s,%s,%d,%s,%s\n",
			p.ID,
			quoteField(p.Name),
			p.BuyPrice.String(),
			p.SellPrice.String(),
			p.Stock,
			p.Barcode,
			p.Category,
		)
	}
	return bw.Flush()
}

// WriteTemplate writes a minimal import template: the header without the id
// column plus one example row.
func WriteTemplate(w io.Writer) error {
	_, err := fmt.Fprintf(w, "name,buyPrice,sellPrice,stock,barcode,category\nProducto Ejemplo,100,150,10,1234567890123,\n")
	return err
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ImportResult is the outcome of a best-effort CSV import.
type ImportResult struct {
	// Products are the rows that validated.
	Products []Product
	// RowErrors collects one message per rejected row, with its 1-based
	// line number in the file (the header is line 1).
	RowErrors []string
}

// ImportCSV decodes the import/export format from 'r'.
//
// A missing required header column aborts the whole import with a
// *FormatError. Bad rows (wrong field count, blank name) are skipped and
// reported in the result; blank id, barcode and category fields are
// defaulted, and unparsable numbers coerce to zero. The import as a whole
// succeeds only if at least one row validated; otherwise the returned error
// carries every collected row message.
func ImportCSV(r io.Reader) (ImportResult, error) {
	var res ImportResult

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return res, fmt.Errorf("cannot read csv input: %w", err)
		}
		return res, &FormatError{Missing: requiredColumns}
	}

	// Headers are split without quote-awareness: column names never
	// contain commas.
	headers := strings.Split(strings.TrimRight(scanner.Text(), "\r"), ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	var missing []string
	for _, req := range requiredColumns {
		found := false
		for _, h := range headers {
			if h == req {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return res, &FormatError{Missing: missing}
	}

	line := 1 // header
	for scanner.Scan() {
		line++
		raw := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}

		values := parseCSVLine(raw)
		if len(values) != len(headers) {
			res.RowErrors = append(res.RowErrors, fmt.Sprintf("line %d: incorrect number of columns", line))
			continue
		}

		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			fields[h] = values[i]
		}

		p := Product{
			ID:        fields["id"],
			Name:      fields["name"],
			BuyPrice:  parsePrice(fields["buyPrice"]),
			SellPrice: parsePrice(fields["sellPrice"]),
			Stock:     parseStock(fields["stock"]),
			Barcode:   fields["barcode"],
			Category:  fields["category"],
		}
		if p.Name == "" {
			res.RowErrors = append(res.RowErrors, fmt.Sprintf("line %d: product name is required", line))
			continue
		}
		if p.ID == "" {
			p.ID = NewID()
		}
		if p.Barcode == "" {
			p.Barcode = NewBarcode()
		}
		res.Products = append(res.Products, p)
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("cannot read csv input: %w", err)
	}

	if len(res.Products) == 0 {
		return res, fmt.Errorf("no products could be imported: %s", strings.Join(res.RowErrors, "; "))
	}
	return res, nil
}

func parsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseStock(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseCSVLine splits one data row into fields with a quote-aware scanner:
// a double quote toggles the in-quotes state, except that a doubled quote
// inside a quoted field is an escaped literal quote; a comma separates
// fields only outside quotes.
func parseCSVLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++ // skip the escaping quote
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, current.String())
	return fields
}

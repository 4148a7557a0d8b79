// Package pos provides the domain logic for a small retail shop's
// point-of-sale and inventory manager. It is designed to be local-first:
// every collection (products, categories, the open cart, the sales history)
// lives in a named slot of a pluggable key-value store, and every operation
// runs to completion synchronously.
//
// The core functionalities include:
//   - Inventory Management: product and category CRUD, filtering, sorting,
//     pagination and aggregate stock valuation.
//   - Sales: building a cart, checking it out into an immutable Sale
//     snapshot with a printable receipt, and browsing the sales history.
//   - Import/Export: a permissive CSV codec (and an XLSX export) for the
//     product list, suited to spreadsheet round-trips.
//   - Barcodes: generation of random 13-digit codes and rendering to images
//     for printing on labels and receipts.
//
// This package serves as the foundational logic for the `apos` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package pos

package cmd

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/google/subcommands"
	"github.com/libreria-amelia/pos"
)

type barcodeCmd struct {
	output string
	width  int
	height int
}

func (*barcodeCmd) Name() string     { return "barcode" }
func (*barcodeCmd) Synopsis() string { return "render a product barcode to a PNG" }
func (*barcodeCmd) Usage() string {
	return `apos barcode <product|value> [-o <file.png>] [-w <px>] [-h <px>]

  Renders a barcode image, scannable with any reader. The argument may be
  a product reference (its barcode is used) or a raw value.
`
}

func (c *barcodeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "barcode.png", "Output PNG file.")
	f.IntVar(&c.width, "w", 260, "Image width in pixels.")
	f.IntVar(&c.height, "h", 100, "Image height in pixels.")
}

func (c *barcodeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one product reference or barcode value.")
		return subcommands.ExitUsageError
	}

	value := f.Arg(0)
	if db, _, err := openDB(); err == nil {
		if p := db.FindProduct(value); p != nil {
			value = p.Barcode
		}
	}

	img, err := pos.RenderBarcode(value, c.width, c.height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Barcode for %s written to %s\n", value, c.output)
	return subcommands.ExitSuccess
}

package pos

import (
	"fmt"
	"image"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
)

// RenderBarcode draws a barcode value into an image of the given pixel
// size, for printing on labels and receipts.
//
// A 13-digit value is first tried as EAN-13; values that do not carry a
// valid check digit (randomly generated codes usually don't) fall back to
// Code 128, which encodes any string. The check digit is never validated
// beyond what the symbology itself requires.
func RenderBarcode(value string, width, height int) (image.Image, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: barcode value is empty", ErrInvalid)
	}
	if width <= 0 {
		width = 260
	}
	if height <= 0 {
		height = 100
	}

	var (
		bc  barcode.Barcode
		err error
	)
	if len(value) == 13 && allDigits(value) {
		bc, err = ean.Encode(value)
	}
	if bc == nil {
		bc, err = code128.Encode(value)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot encode barcode %q: %w", value, err)
	}

	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("cannot scale barcode to %dx%d: %w", width, height, err)
	}
	return scaled, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

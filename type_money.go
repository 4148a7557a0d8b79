package pos

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used when the caller does not configure
// one. The shop this tool was written for prices in Nicaraguan córdoba.
const DefaultCurrency = "NIO"

// FormatMoney renders an exact decimal amount for display in the given
// ISO currency, rounding to the currency's fraction.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	// the Money constructor is the only way to get a never-nil currency.
	cur := *money.New(0, currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

package renderer

import "github.com/shopspring/decimal"

func quantity(q int) decimal.Decimal {
	return decimal.NewFromInt(int64(q))
}

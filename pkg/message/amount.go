package message

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoAmount is returned when an amount string carries no numeric magnitude.
var ErrNoAmount = errors.New("no numeric amount")

// ParseAmount extracts the numeric magnitude from a raw amount string such as
// "15000.00 USD". Only digit and decimal-point characters are considered; the
// currency suffix and any grouping characters are ignored.
func ParseAmount(raw string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return decimal.Zero, ErrNoAmount
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

package internal

import (
	"math/big"
	"strings"
	"time"
)

const (
	formatDDMMYYYY = "02.01.2006 15:04"
)

var weiPerToken = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

func Format(date time.Time) string {
	return date.Format(formatDDMMYYYY)
}

// FormatTokenAmount renders a wei-scale amount as a decimal token amount,
// trimming trailing zeros.
func FormatTokenAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}

	quotient := new(big.Int)
	remainder := new(big.Int)
	quotient.QuoRem(amount, weiPerToken, remainder)

	if remainder.Sign() == 0 {
		return quotient.String()
	}

	fraction := strings.TrimRight(remainder.Add(remainder, weiPerToken).String()[1:], "0")
	return quotient.String() + "." + fraction
}

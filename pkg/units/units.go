// Package units converts between human-readable native amounts ("1.5ether",
// "20gwei") and base units.
package units

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// Unit exponents relative to the base unit.
const (
	Wei   int32 = 0
	Gwei  int32 = 9
	Ether int32 = 18
)

var suffixes = []struct {
	name string
	exp  int32
}{
	// longest first so "gwei" is not read as "wei"
	{"ether", Ether},
	{"gwei", Gwei},
	{"wei", Wei},
	{"eth", Ether},
}

// ParseAmount parses s into base units. s is a plain integer of base units or
// a decimal followed by one of ether, eth, gwei or wei. Amounts that do not
// resolve to a whole number of base units, and negative amounts, are rejected.
func ParseAmount(s string) (math.Int, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	if raw == "" {
		return math.Int{}, fmt.Errorf("empty amount")
	}

	exp := Wei
	for _, sfx := range suffixes {
		if strings.HasSuffix(raw, sfx.name) {
			raw = strings.TrimSpace(strings.TrimSuffix(raw, sfx.name))
			exp = sfx.exp
			break
		}
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return math.Int{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return math.Int{}, fmt.Errorf("amount %q must not be negative", s)
	}
	base := d.Shift(exp)
	if !base.IsInteger() {
		return math.Int{}, fmt.Errorf("amount %q is not a whole number of base units", s)
	}
	bi := base.BigInt()
	if bi.BitLen() > math.MaxBitLen {
		return math.Int{}, fmt.Errorf("amount %q is too large", s)
	}
	return math.NewIntFromBigInt(bi), nil
}

// FormatEther renders base units as an ether decimal without trailing zeros.
func FormatEther(amount math.Int) string {
	return FormatUnits(amount, Ether)
}

// FormatUnits renders base units scaled down by 10^exp.
func FormatUnits(amount math.Int, exp int32) string {
	if amount.IsNil() {
		return "0"
	}
	return decimal.NewFromBigInt(amount.BigInt(), -exp).String()
}

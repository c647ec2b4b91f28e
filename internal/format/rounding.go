package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how digits beyond the displayed precision are dropped.
type RoundingMode string

const (
	// RoundFloor rounds toward negative infinity: 1.119 -> 1.11, -1.231 -> -1.24.
	RoundFloor RoundingMode = "floor"
	// RoundHalfAwayFromZero rounds ties outward regardless of sign.
	RoundHalfAwayFromZero RoundingMode = "half_away_from_zero"
	// RoundHalfEven is banker's rounding.
	RoundHalfEven RoundingMode = "half_even"
	// RoundTruncate drops extra digits, rounding toward zero.
	RoundTruncate RoundingMode = "truncate"
	// RoundCeil rounds toward positive infinity.
	RoundCeil RoundingMode = "ceil"
)

// DefaultRounding is the mode used when none is configured.
const DefaultRounding = RoundFloor

var roundingModes = []RoundingMode{RoundFloor, RoundHalfAwayFromZero, RoundHalfEven, RoundTruncate, RoundCeil}

// roundingAliases maps user-facing synonyms to canonical mode names.
var roundingAliases = map[string]RoundingMode{
	"down":        RoundFloor,
	"half_up":     RoundHalfAwayFromZero,
	"half-up":     RoundHalfAwayFromZero,
	"bankers":     RoundHalfEven,
	"half-even":   RoundHalfEven,
	"toward_zero": RoundTruncate,
	"up":          RoundCeil,
}

// ParseRoundingMode resolves a mode name or alias. Empty input yields DefaultRounding.
func ParseRoundingMode(name string) (RoundingMode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return DefaultRounding, nil
	}
	n = strings.ReplaceAll(n, " ", "_")
	if mapped, ok := roundingAliases[n]; ok {
		return mapped, nil
	}
	for _, m := range roundingModes {
		if string(m) == n {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q. Try one of: %s", ErrUnknownRounding, name, strings.Join(RoundingModeNames(), ", "))
}

// RoundingModeNames returns the canonical mode names, sorted.
func RoundingModeNames() []string {
	names := make([]string, 0, len(roundingModes))
	for _, m := range roundingModes {
		names = append(names, string(m))
	}
	sort.Strings(names)
	return names
}

// Valid reports whether m is a known mode.
func (m RoundingMode) Valid() bool {
	for _, known := range roundingModes {
		if m == known {
			return true
		}
	}
	return false
}

// Apply rounds d to the given number of decimal places.
// An unknown mode falls back to DefaultRounding.
func (m RoundingMode) Apply(d decimal.Decimal, places int32) decimal.Decimal {
	switch m {
	case RoundHalfAwayFromZero:
		return d.Round(places)
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundTruncate:
		return d.Truncate(places)
	case RoundCeil:
		return d.Shift(places).Ceil().Shift(-places)
	case RoundFloor:
		return d.Shift(places).Floor().Shift(-places)
	default:
		return DefaultRounding.Apply(d, places)
	}
}

func (m RoundingMode) String() string { return string(m) }

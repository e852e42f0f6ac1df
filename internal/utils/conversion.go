/*
This file contains common utility functions for turning the string-encoded decimals of a pool
snapshot into numbers, using SDK math so no precision is lost before the final float conversion.
*/

package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	sdkmath "cosmossdk.io/math"
)

var (
	ErrEmptyDecimal     = errors.New("decimal string is empty")
	ErrAmountNegative   = errors.New("amount is negative")
	ErrNotFinite        = errors.New("value is not finite")
	ErrConversionFailed = errors.New("conversion failed")
)

// ParseDecimal parses a decimal string such as "12.345" or "1.5e1" into an SDK LegacyDec.
// Fractional digits beyond the LegacyDec precision are truncated.
func ParseDecimal(s string) (sdkmath.LegacyDec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sdkmath.LegacyZeroDec(), ErrEmptyDecimal
	}
	if strings.ContainsAny(s, "eE") {
		expanded, err := expandExponent(s)
		if err != nil {
			return sdkmath.LegacyZeroDec(), err
		}
		s = expanded
	}
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > sdkmath.LegacyPrecision {
		s = s[:dot+1+sdkmath.LegacyPrecision]
	}
	d, err := sdkmath.LegacyNewDecFromStr(s)
	if err != nil {
		return sdkmath.LegacyZeroDec(), fmt.Errorf("%w: %q: %w", ErrConversionFailed, s, err)
	}
	return d, nil
}

// expandExponent rewrites exponent notation in plain decimal form, which LegacyDec requires.
func expandExponent(s string) (string, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrConversionFailed, s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %q", ErrNotFinite, s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// ParseRate converts a string-encoded percentage into a float64.
// It fails for empty, malformed, negative or non-finite input.
func ParseRate(s string) (float64, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, ErrAmountNegative
	}
	f, err := d.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}
	return f, nil
}

// ValidRate reports whether an optional rate is present and a real number.
func ValidRate(rate *float64) bool {
	return rate != nil && !math.IsNaN(*rate) && !math.IsInf(*rate, 0)
}

// SumBalances adds decimal balance strings. Empty or malformed entries count as zero.
func SumBalances(balances ...string) string {
	total := sdkmath.LegacyZeroDec()
	for _, b := range balances {
		d, err := ParseDecimal(b)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	return TrimDecimal(total)
}

// TrimDecimal formats a LegacyDec without trailing fractional zeros ("12.500000000000000000" -> "12.5").
func TrimDecimal(d sdkmath.LegacyDec) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ParseUnixSeconds parses a numeric time string.
// Empty, malformed, negative or out-of-range input yields 0.
func ParseUnixSeconds(s string) int64 {
	d, err := ParseDecimal(s)
	if err != nil || d.IsNegative() {
		return 0
	}
	i := d.TruncateInt()
	if !i.IsInt64() {
		return 0
	}
	return i.Int64()
}

package optparse

import (
	"fmt"
	"strconv"
)

// Scalar enumerates the types OptionValue can produce. The set mirrors the
// conversions the parser promises: string passthrough plus best-effort
// numeric parsing.
type Scalar interface {
	string | int | int64 | float32 | float64
}

// OptionValue converts the named option's raw textual value to T and returns
// it. The lookup has the same hard error contract as Parser.GotOption.
//
// Numeric conversion is best-effort: the longest leading numeric prefix of
// the stored string is used and a malformed value yields zero, never an
// error. This deliberately preserves the permissive strtol/strtod contract;
// callers needing strict validation should fetch the string and convert it
// themselves.
func OptionValue[T Scalar](p *Parser, name string) (T, error) {
	var v T
	raw, err := p.rawValue(name)
	if err != nil {
		return v, err
	}
	switch dst := any(&v).(type) {
	case *string:
		*dst = raw
	case *int:
		*dst = int(parseIntPrefix(raw))
	case *int64:
		*dst = parseIntPrefix(raw)
	case *float32:
		*dst = float32(parseFloatPrefix(raw))
	case *float64:
		*dst = parseFloatPrefix(raw)
	}
	return v, nil
}

// FormatValue renders a typed value back to its textual option form.
func FormatValue[T Scalar](x T) string {
	return fmt.Sprint(x)
}

// parseIntPrefix parses the longest leading decimal integer of s, returning
// 0 when s has no such prefix or the prefix overflows.
func parseIntPrefix(s string) int64 {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}
	n, err := strconv.ParseInt(s[:j], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseFloatPrefix parses the longest leading floating-point number of s,
// returning 0 when no prefix parses.
func parseFloatPrefix(s string) float64 {
	for j := len(s); j > 0; j-- {
		if f, err := strconv.ParseFloat(s[:j], 64); err == nil {
			return f
		}
	}
	return 0
}

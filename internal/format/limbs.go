package format

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/limb"
)

// ParseLimbs parses a comma-separated list of hexadecimal limbs, least
// significant first. An optional 0x prefix is accepted on each limb.
// The empty string parses to an empty sequence.
func ParseLimbs(s string) ([]limb.Limb, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]limb.Limb, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(part)), "0x"))
		v, err := strconv.ParseUint(part, 16, 64)
		if err != nil {
			return nil, apperrors.ValidationError{
				Field:   "operand",
				Message: fmt.Sprintf("limb %d is not a 64-bit hex value: %q", i, parts[i]),
			}
		}
		out[i] = v
	}
	return out, nil
}

// FormatLimbs renders a limb sequence as comma-separated hexadecimal,
// least significant first, mirroring the input syntax of ParseLimbs.
func FormatLimbs(s []limb.Limb) string {
	if len(s) == 0 {
		return "0"
	}
	parts := make([]string, len(s))
	for i, l := range s {
		parts[i] = fmt.Sprintf("%x", l)
	}
	return strings.Join(parts, ",")
}

// FormatComparison renders a three-way comparison result as the
// conventional relational symbol.
func FormatComparison(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}

// dataset/parse.go
package dataset

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	errNotNumeric  = errors.New("not a number")
	errOutOfRange  = errors.New("out of range")
	errEmptyNumber = errors.New("empty")
)

// parseFloat parses a trimmed decimal field, rejecting NaN and Inf.
func parseFloat(field string) (float64, error) {
	s := strings.TrimSpace(field)
	if s == "" {
		return 0, errEmptyNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", errNotNumeric, s)
	}
	return v, nil
}

// parseCoord parses a coordinate and checks it lies within [-limit, limit].
func parseCoord(field string, limit float64) (float64, error) {
	v, err := parseFloat(field)
	if err != nil {
		return 0, err
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%w: %v not in [-%v, %v]", errOutOfRange, v, limit, limit)
	}
	return v, nil
}

// normalizeHeader strips whitespace and a leading UTF-8 BOM.
func normalizeHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

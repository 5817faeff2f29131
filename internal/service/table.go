package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingNumber  = regexp.MustCompile(`^[+-]?\d+`)
	comandaPattern = regexp.MustCompile(`(?i)comanda[=/:]?(\d+)`)
)

// ParseTableNumber accepts a number with optional trailing text ("12 mesa")
// or a decoded QR payload such as "https://host/cardapio?comanda=7"
func ParseTableNumber(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(leadingNumber.FindString(raw))
	if err != nil {
		m := comandaPattern.FindStringSubmatch(raw)
		if m == nil {
			return 0, ErrInvalidTable
		}
		if n, err = strconv.Atoi(m[1]); err != nil {
			return 0, ErrInvalidTable
		}
	}
	if n <= 0 {
		return 0, ErrInvalidTable
	}
	return n, nil
}

// ParseQuantity reads a manual stock entry; empty or non-numeric input is 0
func ParseQuantity(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(raw, ",", ".", 1)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

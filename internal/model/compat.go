// Package model provides identifier normalization helpers for different
// source file conventions.
package model

import (
	"strconv"
	"strings"
)

// FIPSWidth is the width of a county FIPS code (2-digit state + 3-digit county).
const FIPSWidth = 5

// NormalizeID trims id and left-pads purely numeric identifiers with zeros
// up to FIPSWidth, so "1001" from a spreadsheet export joins the geometry
// id "01001". Non-numeric identifiers are returned trimmed but otherwise
// untouched.
func NormalizeID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) >= FIPSWidth {
		return id
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return id
		}
	}
	return strings.Repeat("0", FIPSWidth-len(id)) + id
}

// IDFromNumber formats a numeric feature id (some topology files store ids
// as JSON numbers) the same way NormalizeID formats strings.
func IDFromNumber(n float64) string {
	if n < 0 || n != float64(int64(n)) {
		return ""
	}
	return NormalizeID(strconv.FormatInt(int64(n), 10))
}

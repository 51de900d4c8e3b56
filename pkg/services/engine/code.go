package engine

import (
	"strconv"
	"strings"

	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
)

const codeWidth = 14

// upcPriority orders the UPC columns tried by ExtractUPC. Pack-level codes
// are the most specific the vendor provides.
var upcPriority = []string{colPackUPC, colCleanUPC, colCaseUPC}

// ExtractUPC returns the first non-blank UPC column value, zero-padded to
// 14 characters. Empty string means no UPC was present.
func ExtractUPC(row domain.Row) string {
	for _, key := range upcPriority {
		if code := FormatSKU(raw(row, key)); code != "" {
			return code
		}
	}
	return ""
}

// FormatSKU left-pads a code to 14 characters, truncating anything longer.
// Blank and placeholder values yield an empty string.
func FormatSKU(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || code == "nan" || code == "None" {
		return ""
	}
	if len(code) < codeWidth {
		code = strings.Repeat("0", codeWidth-len(code)) + code
	}
	return code[:codeWidth]
}

var noteFields = []struct {
	label  string
	amount func(domain.Row) float64
}{
	{"Discount", discountAdjustment},
	{"Deposit", depositAdjustment},
	{"Misc", miscAdjustment},
	{"Delivery", deliveryAdjustment},
}

// BuildNotes concatenates the nonzero adjustment fields into a
// human-readable summary, e.g. "Discount: -5; Delivery: 3". Zero fields
// are omitted; the field order is fixed. Empty string when nothing applies.
func BuildNotes(row domain.Row) string {
	var parts []string
	for _, field := range noteFields {
		if amount := field.amount(row); amount != 0 {
			parts = append(parts, field.label+": "+strconv.FormatFloat(amount, 'f', -1, 64))
		}
	}
	return strings.Join(parts, "; ")
}

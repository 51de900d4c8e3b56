package engine

import (
	"testing"

	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestExtractUPC(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.Row
		expected string
	}{
		{
			name:     "pack upc wins",
			row:      domain.Row{"Pack UPC": "123", "Clean UPC": "456"},
			expected: "00000000000123",
		},
		{
			name:     "falls back to clean upc",
			row:      domain.Row{"Pack UPC": "nan", "Clean UPC": "456"},
			expected: "00000000000456",
		},
		{
			name:     "falls back to case upc",
			row:      domain.Row{"Pack UPC": "", "Clean UPC": "None", "Case UPC": "789"},
			expected: "00000000000789",
		},
		{
			name:     "all blank yields empty",
			row:      domain.Row{"Pack UPC": "  ", "Clean UPC": "nan"},
			expected: "",
		},
		{
			name:     "long code truncated to fourteen",
			row:      domain.Row{"Pack UPC": "1234567890123456"},
			expected: "12345678901234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractUPC(tt.row))
		})
	}
}

func TestFormatSKU(t *testing.T) {
	assert.Equal(t, "00000000012345", FormatSKU("12345"))
	assert.Equal(t, "", FormatSKU(""))
	assert.Equal(t, "", FormatSKU("nan"))
	assert.Equal(t, "", FormatSKU("None"))
	assert.Len(t, FormatSKU("99999999999999999"), 14)
}

func TestBuildNotes(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.Row
		expected string
	}{
		{
			name: "zero fields omitted, order fixed",
			row: domain.Row{
				"Discount Adjustment Total": "-5",
				"DepositAdjustmentTotal":    "0",
				"Delivery Adjustment Total": "3",
			},
			expected: "Discount: -5; Delivery: 3",
		},
		{
			name: "all four adjustments",
			row: domain.Row{
				"Discount Adjustment Total":      "-2.5",
				"DepositAdjustmentTotal":         "1.2",
				"Miscellaneous Adjustment Total": "-0.8",
				"Delivery Adjustment Total":      "4",
			},
			expected: "Discount: -2.5; Deposit: 1.2; Misc: -0.8; Delivery: 4",
		},
		{
			name:     "no adjustments yields empty",
			row:      domain.Row{"Discount Adjustment Total": "0"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildNotes(tt.row))
		})
	}
}

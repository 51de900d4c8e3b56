package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
)

// Column names as they appear in the vendor CSV export.
const (
	colInvoiceNumber      = "Invoice Number"
	colInvoiceDate        = "Invoice Date"
	colInvoiceAmount      = "Invoice Amount"
	colVendorName         = "Vendor Name"
	colQuantity           = "Quantity"
	colUnitOfMeasure      = "Unit Of Measure"
	colPacksPerCase       = "Packs Per Case"
	colUnitsPerPack       = "Units Per Pack"
	colGLCode             = "GL Code"
	colProductClass       = "Product Class"
	colProductDescription = "Product Description"
	colExtendedPrice      = "Extended Price"
	colDiscountAdj        = "Discount Adjustment Total"
	colDepositAdj         = "DepositAdjustmentTotal"
	colMiscAdj            = "Miscellaneous Adjustment Total"
	colTaxAdj             = "Tax Adjustment Total"
	colDeliveryAdj        = "Delivery Adjustment Total"
	colPackUPC            = "Pack UPC"
	colCleanUPC           = "Clean UPC"
	colCaseUPC            = "Case UPC"
)

// num reads a numeric field. Missing, blank, non-numeric, and NaN values
// all degrade to def.
func num(row domain.Row, key string, def float64) float64 {
	val, ok := row[key]
	if !ok || val == nil {
		return def
	}

	switch v := val.(type) {
	case float64:
		if math.IsNaN(v) {
			return def
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "nan") {
			return def
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return def
		}
		return f
	default:
		return def
	}
}

// text reads a text field trimmed and uppercased, defaulting to "".
func text(row domain.Row, key string) string {
	return strings.ToUpper(raw(row, key))
}

// raw reads a text field trimmed but otherwise untouched. The pandas-era
// exports carry literal "nan"/"None" placeholders for empty cells; both
// read as absent.
func raw(row domain.Row, key string) string {
	val, ok := row[key]
	if !ok || val == nil {
		return ""
	}

	var s string
	switch v := val.(type) {
	case string:
		s = v
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = fmt.Sprint(v)
	}

	s = strings.TrimSpace(s)
	if s == "nan" || s == "None" {
		return ""
	}
	return s
}

// unitOfMeasure normalizes the vendor's unit column into the fixed
// vocabulary. Vendor exports abbreviate case/bottle/each as CA/BO/EA.
func unitOfMeasure(row domain.Row) domain.UnitOfMeasure {
	uom := strings.ToLower(raw(row, colUnitOfMeasure))

	switch {
	case uom == "":
		return domain.UnitOther
	case strings.Contains(uom, "oz"):
		return domain.UnitOunce
	case strings.Contains(uom, "ct"), strings.Contains(uom, "count"):
		return domain.UnitCount
	case strings.Contains(uom, "pack"):
		return domain.UnitPack
	case uom == "ca", strings.Contains(uom, "case"):
		return domain.UnitCase
	case uom == "bo", strings.Contains(uom, "bottle"):
		return domain.UnitBottle
	case uom == "ea", strings.Contains(uom, "each"):
		return domain.UnitEach
	default:
		return domain.UnitOther
	}
}

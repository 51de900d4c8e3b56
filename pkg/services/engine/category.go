package engine

import (
	"strings"

	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
)

// Classify maps a row to a product category from its GL code. The match is
// an ordered substring chain, first match wins; anything unrecognized falls
// through to MISCELLANEOUS. Classification never fails.
func Classify(row domain.Row) domain.Category {
	gl := text(row, colGLCode)

	switch {
	case strings.Contains(gl, "BEER"):
		return domain.CategoryBeer
	case strings.Contains(gl, "WINE"):
		return domain.CategoryWine
	case strings.Contains(gl, "SPIRIT"):
		return domain.CategorySpirits
	case strings.Contains(gl, "NONALCOHOL"):
		// Non-alcoholic GL codes cover a grab bag of product classes.
		if strings.Contains(text(row, colProductClass), "MISCELLANEOUS") {
			return domain.CategoryMiscellaneous
		}
		return domain.CategoryNonAlcoholic
	default:
		return domain.CategoryMiscellaneous
	}
}

package engine

import "github.com/fintech-tools/receipt-relay/pkg/models/domain"

// Beer sold in these pack-per-case counts is expanded to individual units;
// other beer case sizes already count sellable units.
var beerSpecialPackSizes = map[int]struct{}{
	4:  {},
	6:  {},
	12: {},
	24: {},
}

// CalculateQuantity derives the unit count for a row. The raw quantity
// column is never used verbatim: bottles bypass pack math entirely, beer
// and wine expand case packs by their own conventions, and everything else
// multiplies by packs per case only. Truncation happens once, at the end.
func CalculateQuantity(row domain.Row) int {
	qty := num(row, colQuantity, 0)
	if qty <= 0 {
		return 0
	}

	if unitOfMeasure(row) == domain.UnitBottle {
		return int(qty)
	}

	packs := packsPerCase(row)
	units := unitsPerPack(row)

	switch Classify(row) {
	case domain.CategoryBeer:
		if _, ok := beerSpecialPackSizes[packs]; ok {
			return int(qty * float64(packs) * float64(units))
		}
		return int(qty * float64(packs))
	case domain.CategoryWine:
		// Wine case sizes only represent bottle count once packs and
		// units are both applied.
		return int(qty * float64(packs) * float64(units))
	default:
		return int(qty * float64(packs))
	}
}

func packsPerCase(row domain.Row) int {
	if packs := int(num(row, colPacksPerCase, 1)); packs >= 1 {
		return packs
	}
	return 1
}

func unitsPerPack(row domain.Row) int {
	if units := int(num(row, colUnitsPerPack, 1)); units >= 1 {
		return units
	}
	return 1
}

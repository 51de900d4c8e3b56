package engine

import "github.com/fintech-tools/receipt-relay/pkg/models/domain"

// Price and adjustment reads. All default to zero; adjustments are signed
// and typically negative (credits). No cross-field validation.

func extendedPrice(row domain.Row) float64 {
	return num(row, colExtendedPrice, 0)
}

func discountAdjustment(row domain.Row) float64 {
	return num(row, colDiscountAdj, 0)
}

func depositAdjustment(row domain.Row) float64 {
	return num(row, colDepositAdj, 0)
}

func miscAdjustment(row domain.Row) float64 {
	return num(row, colMiscAdj, 0)
}

func taxAdjustment(row domain.Row) float64 {
	return num(row, colTaxAdj, 0)
}

func deliveryAdjustment(row domain.Row) float64 {
	return num(row, colDeliveryAdj, 0)
}

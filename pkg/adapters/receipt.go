package adapters

import (
	"time"

	"github.com/fintech-tools/receipt-relay/pkg/models/api"
	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
)

func MapReceiptDomainToApi(receipt domain.ProcessedReceipt) api.Receipt {
	items := make([]api.LineItem, 0, len(receipt.LineItems))
	for _, item := range receipt.LineItems {
		items = append(items, MapLineItemDomainToApi(item))
	}

	return api.Receipt{
		ReceiptID:       receipt.ReceiptID,
		Vendor:          receipt.Vendor,
		TransactionDate: receipt.TransactionDate.Format(time.DateOnly),
		TotalAmount:     receipt.TotalAmount,
		SalesTax:        receipt.SalesTax,
		Subtotal:        receipt.Subtotal,
		ItemCount:       receipt.ItemCount,
		DocumentID:      receipt.DocumentID,
		LineItems:       items,
		SourceFile:      receipt.SourceFile,
	}
}

func MapLineItemDomainToApi(item domain.LineItem) api.LineItem {
	return api.LineItem{
		Name:          item.Name,
		Qty:           item.Qty,
		Price:         item.Price,
		Discount:      item.Discount,
		UPC:           optional(item.UPC),
		SKU:           optional(item.SKU),
		Text:          optional(item.Text),
		UnitOfMeasure: string(item.UnitOfMeasure),
		Category:      string(item.Category),
		Tax:           item.Tax,
		Notes:         optional(item.Notes),
		PacksPerCase:  item.PacksPerCase,
		UnitsPerPack:  item.UnitsPerPack,
	}
}

// optional maps an empty string to a JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
)

// ErrNoInvoiceColumn reports a batch whose rows carry no invoice-number
// column at all. Per-field problems degrade to defaults; a missing grouping
// column is the one input-shape failure the engine surfaces.
var ErrNoInvoiceColumn = errors.New("input has no invoice number column")

const fallbackVendor = "Unknown Vendor"

// BuildReceipts partitions rows by invoice number and assembles one receipt
// per invoice group. Group order follows first appearance, row order within
// a group is preserved. sourceURL, when set, becomes each receipt's
// SourceFile; otherwise the caller fills it in afterwards. messageID is the
// upstream message identifier folded into each receipt's DocumentID.
//
// An empty batch yields an empty result, not an error.
func BuildReceipts(rows []domain.Row, sourceURL, messageID string) ([]domain.ProcessedReceipt, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	if _, ok := rows[0][colInvoiceNumber]; !ok {
		return nil, ErrNoInvoiceColumn
	}

	var order []string
	groups := make(map[string][]domain.Row)
	for _, row := range rows {
		invoice := raw(row, colInvoiceNumber)
		if _, seen := groups[invoice]; !seen {
			order = append(order, invoice)
		}
		groups[invoice] = append(groups[invoice], row)
	}

	receipts := make([]domain.ProcessedReceipt, 0, len(order))
	for _, invoice := range order {
		receipts = append(receipts, buildReceipt(invoice, groups[invoice], sourceURL, messageID))
	}
	return receipts, nil
}

func buildReceipt(invoice string, group []domain.Row, sourceURL, messageID string) domain.ProcessedReceipt {
	items := make([]domain.LineItem, 0, len(group))
	subtotal := 0.0
	for _, row := range group {
		item := BuildLineItem(row)
		subtotal += item.Price
		items = append(items, item)
	}

	// Invoice-level fields are stated on every row; the first one speaks
	// for the group.
	first := group[0]
	vendor := raw(first, colVendorName)
	if vendor == "" {
		vendor = fallbackVendor
	}

	return domain.ProcessedReceipt{
		ReceiptID:       invoice,
		Vendor:          vendor,
		TransactionDate: parseDate(raw(first, colInvoiceDate)),
		TotalAmount:     num(first, colInvoiceAmount, 0),
		Subtotal:        subtotal,
		SalesTax:        taxAdjustment(first),
		ItemCount:       len(items),
		LineItems:       items,
		SourceFile:      sourceURL,
		DocumentID:      documentID(messageID, invoice),
	}
}

// BuildLineItem composes one normalized line item from a row.
func BuildLineItem(row domain.Row) domain.LineItem {
	name := raw(row, colProductDescription)

	return domain.LineItem{
		Name:          name,
		Text:          name,
		Qty:           CalculateQuantity(row),
		Price:         extendedPrice(row),
		Discount:      discountAdjustment(row),
		UPC:           ExtractUPC(row),
		SKU:           FormatSKU(raw(row, colCaseUPC)),
		UnitOfMeasure: unitOfMeasure(row),
		Category:      Classify(row),
		Tax:           taxAdjustment(row),
		Notes:         BuildNotes(row),
		PacksPerCase:  packsPerCase(row),
		UnitsPerPack:  unitsPerPack(row),
	}
}

// documentID builds the idempotency key: message identifier, invoice number
// and a generation timestamp, so repeated runs over the same invoice stay
// distinguishable.
func documentID(messageID, invoice string) string {
	if messageID == "" {
		messageID = "unknown"
	}
	return fmt.Sprintf("%s_%s_%d", messageID, invoice, time.Now().UnixNano())
}

var dateLayouts = []string{"01/02/2006", "2006-01-02"}

// parseDate accepts MM/DD/YYYY first, then YYYY-MM-DD. Anything else
// defaults to today.
func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t
			}
		}
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

package api

// LineItem is the webhook wire form of a line item. Field names are fixed
// by the downstream consumer; do not rename.
type LineItem struct {
	Name          string  `json:"name"`
	Qty           int     `json:"qty"`
	Price         float64 `json:"price"`
	Discount      float64 `json:"discount"`
	UPC           *string `json:"upc"`
	SKU           *string `json:"sku"`
	Text          *string `json:"text"`
	UnitOfMeasure string  `json:"unitOfMeasure"`
	Category      string  `json:"category"`
	Tax           float64 `json:"tax"`
	Notes         *string `json:"notes"`
	PacksPerCase  int     `json:"packs_per_case"`
	UnitsPerPack  int     `json:"units_per_pack"`
}

// Receipt is the webhook wire form of a processed receipt. The mixed
// camelCase/snake_case naming mirrors the consumer's schema exactly.
type Receipt struct {
	ReceiptID       string     `json:"receiptId"`
	Vendor          string     `json:"vendor"`
	TransactionDate string     `json:"transactionDate"`
	TotalAmount     float64    `json:"totalAmount"`
	SalesTax        float64    `json:"salesTax"`
	Subtotal        float64    `json:"subtotal"`
	ItemCount       int        `json:"itemCount"`
	DocumentID      string     `json:"document_id"`
	LineItems       []LineItem `json:"lineItems"`
	SourceFile      string     `json:"source_file"`
}

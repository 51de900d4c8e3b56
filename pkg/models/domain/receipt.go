package domain

import "time"

// Row is one CSV record keyed by column header. Values are loosely typed:
// strings straight from the CSV, or numbers when the row was built in code.
// Missing columns are simply absent keys.
type Row map[string]any

type Category string

const (
	CategoryBeer          Category = "BEER"
	CategoryWine          Category = "WINE"
	CategorySpirits       Category = "SPIRITS"
	CategoryNonAlcoholic  Category = "NON-ALCOHOLIC"
	CategoryMiscellaneous Category = "MISCELLANEOUS"
)

type UnitOfMeasure string

const (
	UnitOunce  UnitOfMeasure = "oz"
	UnitCount  UnitOfMeasure = "ct"
	UnitPack   UnitOfMeasure = "pack"
	UnitCase   UnitOfMeasure = "case"
	UnitBottle UnitOfMeasure = "bottle"
	UnitEach   UnitOfMeasure = "each"
	UnitOther  UnitOfMeasure = "unit"
)

// LineItem is one normalized product entry. Qty is always derived by the
// quantity calculator, never copied from the row's quantity column.
type LineItem struct {
	Name          string
	Text          string
	Qty           int
	Price         float64 // extended price as stated by the vendor
	Discount      float64
	UPC           string // 14-digit zero-padded, empty when absent
	SKU           string // 14-digit zero-padded case code, empty when absent
	UnitOfMeasure UnitOfMeasure
	Category      Category
	Tax           float64
	Notes         string
	PacksPerCase  int
	UnitsPerPack  int
}

// ProcessedReceipt aggregates one invoice group.
type ProcessedReceipt struct {
	ReceiptID       string // invoice number
	Vendor          string
	TransactionDate time.Time
	TotalAmount     float64 // invoice-level amount as stated in source
	Subtotal        float64 // sum of line-item extended prices
	SalesTax        float64
	ItemCount       int
	LineItems       []LineItem
	SourceFile      string // human-navigable URL or storage URI
	DocumentID      string
}

package relay

import (
	"context"
	"fmt"

	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
	"github.com/fintech-tools/receipt-relay/pkg/services/csvparser"
	"github.com/fintech-tools/receipt-relay/pkg/services/engine"
	"github.com/fintech-tools/receipt-relay/pkg/store/object"
	"github.com/rs/zerolog"
)

// ReceiptSender delivers one receipt downstream. Implementations decide
// what "not configured" means; the processor just calls Send per receipt.
type ReceiptSender interface {
	Send(ctx context.Context, receipt domain.ProcessedReceipt) error
}

// Processor runs one CSV batch through the transformation engine and relays
// the resulting receipts to the webhook, one at a time. Independent batches
// may run concurrently; the processor holds no mutable state.
type Processor struct {
	store  object.Store
	sender ReceiptSender
}

func NewProcessor(store object.Store, sender ReceiptSender) *Processor {
	return &Processor{
		store:  store,
		sender: sender,
	}
}

// ProcessObject fetches a stored CSV and processes it.
func (p *Processor) ProcessObject(ctx context.Context, key, sourceURL, messageID string) ([]domain.ProcessedReceipt, error) {
	data, err := p.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
	}
	return p.ProcessBytes(ctx, data, key, sourceURL, messageID)
}

// ProcessBytes processes a CSV already in memory. Delivery failures are
// logged per receipt and never block sibling receipts from the same batch.
func (p *Processor) ProcessBytes(ctx context.Context, data []byte, key, sourceURL, messageID string) ([]domain.ProcessedReceipt, error) {
	logger := zerolog.Ctx(ctx).With().Str("object", key).Logger()
	ctx = logger.WithContext(ctx)

	rows, err := csvparser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv %s: %w", key, err)
	}
	logger.Info().Int("rows", len(rows)).Msg("csv loaded")

	receipts, err := engine.BuildReceipts(rows, sourceURL, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to build receipts for %s: %w", key, err)
	}
	if len(receipts) == 0 {
		logger.Warn().Msg("no receipts produced")
		return nil, nil
	}

	for i := range receipts {
		if receipts[i].SourceFile == "" {
			receipts[i].SourceFile = p.store.URI(key)
		}
	}
	logger.Info().Int("receipts", len(receipts)).Msg("receipts built")

	for _, receipt := range receipts {
		if err := p.sender.Send(ctx, receipt); err != nil {
			logger.Error().
				Err(err).
				Str("receipt_id", receipt.ReceiptID).
				Msg("webhook delivery failed")
		}
	}
	return receipts, nil
}

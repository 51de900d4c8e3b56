package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fintech-tools/receipt-relay/pkg/adapters"
	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 30 * time.Second
	responsePreview  = 512
	defaultUserAgent = "receipt-relay/1.0"
)

type Config struct {
	URL     string
	Headers map[string]string
	Timeout time.Duration
}

// Sender posts processed receipts to the downstream webhook. It interprets
// status codes and logs outcomes; retry policy belongs to the consumer's
// infrastructure, not here.
type Sender struct {
	url     string
	headers map[string]string
	client  *http.Client
}

func NewSender(config Config) *Sender {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   defaultUserAgent,
	}
	for k, v := range config.Headers {
		headers[k] = v
	}

	return &Sender{
		url:     strings.TrimSpace(config.URL),
		headers: headers,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *Sender) IsConfigured() bool {
	return s.url != ""
}

// Send delivers one receipt. An unconfigured sender skips silently.
func (s *Sender) Send(ctx context.Context, receipt domain.ProcessedReceipt) error {
	logger := zerolog.Ctx(ctx)

	if !s.IsConfigured() {
		logger.Warn().
			Str("receipt_id", receipt.ReceiptID).
			Msg("webhook not configured, skipping send")
		return nil
	}

	payload, err := json.Marshal(adapters.MapReceiptDomainToApi(receipt))
	if err != nil {
		return fmt.Errorf("failed to encode receipt %s: %w", receipt.ReceiptID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	logger.Info().
		Str("receipt_id", receipt.ReceiptID).
		Int("payload_bytes", len(payload)).
		Msg("sending receipt to webhook")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed for receipt %s: %w", receipt.ReceiptID, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, responsePreview))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d for receipt %s: %s",
			resp.StatusCode, receipt.ReceiptID, strings.TrimSpace(string(body)))
	}

	logger.Info().
		Str("receipt_id", receipt.ReceiptID).
		Int("status", resp.StatusCode).
		Msg("webhook delivery succeeded")
	return nil
}

package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintech-tools/receipt-relay/pkg/models/api"
	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() domain.ProcessedReceipt {
	return domain.ProcessedReceipt{
		ReceiptID:       "INV-1",
		Vendor:          "Acme Distributing",
		TransactionDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:     100,
		Subtotal:        95,
		SalesTax:        5,
		ItemCount:       1,
		LineItems: []domain.LineItem{{
			Name:          "LAGER 12PK",
			Text:          "LAGER 12PK",
			Qty:           24,
			Price:         95,
			UPC:           "00000000000123",
			UnitOfMeasure: domain.UnitCase,
			Category:      domain.CategoryBeer,
			PacksPerCase:  12,
			UnitsPerPack:  2,
		}},
		SourceFile: "s3://inbox/intake/file.csv",
		DocumentID: "msg_INV-1_1",
	}
}

func TestSender_Send(t *testing.T) {
	var received api.Receipt
	var gotHeaders http.Header

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewSender(Config{
		URL:     srv.URL,
		Headers: map[string]string{"X-Api-Key": "secret"},
	})

	err := sender.Send(context.Background(), sampleReceipt())
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "secret", gotHeaders.Get("X-Api-Key"))
	assert.Equal(t, "INV-1", received.ReceiptID)
	assert.Equal(t, "2024-03-15", received.TransactionDate)
	assert.Equal(t, "msg_INV-1_1", received.DocumentID)
	assert.Equal(t, "s3://inbox/intake/file.csv", received.SourceFile)
	require.Len(t, received.LineItems, 1)
	assert.Equal(t, 24, received.LineItems[0].Qty)
	assert.Equal(t, 12, received.LineItems[0].PacksPerCase)
}

func TestSender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := NewSender(Config{URL: srv.URL})

	err := sender.Send(context.Background(), sampleReceipt())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSender_NotConfiguredSkips(t *testing.T) {
	sender := NewSender(Config{})

	assert.False(t, sender.IsConfigured())
	assert.NoError(t, sender.Send(context.Background(), sampleReceipt()))
}

package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintech-tools/receipt-relay/pkg/models/api"
	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
	"github.com/fintech-tools/receipt-relay/pkg/store/object/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	calls chan processCall
}

type processCall struct {
	key       string
	sourceURL string
	messageID string
}

func newRecordingProcessor() *recordingProcessor {
	return &recordingProcessor{calls: make(chan processCall, 1)}
}

func (p *recordingProcessor) ProcessObject(_ context.Context, key, sourceURL, messageID string) ([]domain.ProcessedReceipt, error) {
	p.calls <- processCall{key: key, sourceURL: sourceURL, messageID: messageID}
	return nil, nil
}

func multipartUpload(t *testing.T, fields map[string]string, fileContents string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "invoices.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(fileContents))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestIngestCSV(t *testing.T) {
	store := memory.NewStore("inbox")
	processor := newRecordingProcessor()
	handler := NewHandler(store, processor, "")

	body, contentType := multipartUpload(t, map[string]string{
		"message_id":    "msg-42",
		"received_date": "2024-03-15",
		"original_name": "march invoices.csv",
		"source_url":    "https://drive.example.com/f/1",
	}, "Invoice Number,Quantity\nINV-1,2\n")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.IngestCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.IngestResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "msg-42", resp.MessageID)
	assert.Equal(t, "march invoices.csv", resp.OriginalName)
	assert.Contains(t, resp.Path, "intake/2024-03-15_msg-42_")
	assert.Contains(t, resp.Path, "march_invoices.csv")

	select {
	case call := <-processor.calls:
		assert.Equal(t, "msg-42", call.messageID)
		assert.Equal(t, "https://drive.example.com/f/1", call.sourceURL)

		stored, err := store.Get(context.Background(), call.key)
		require.NoError(t, err)
		assert.Equal(t, "Invoice Number,Quantity\nINV-1,2\n", string(stored))
	case <-time.After(2 * time.Second):
		t.Fatal("processing was never dispatched")
	}
}

func TestIngestCSV_GeneratesMessageID(t *testing.T) {
	store := memory.NewStore("inbox")
	processor := newRecordingProcessor()
	handler := NewHandler(store, processor, "")

	body, contentType := multipartUpload(t, nil, "Invoice Number\nINV-1\n")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.IngestCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.IngestResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.MessageID)
	// Falls back to the multipart filename.
	assert.Equal(t, "invoices.csv", resp.OriginalName)
}

func TestIngestCSV_TokenChecks(t *testing.T) {
	store := memory.NewStore("inbox")
	handler := NewHandler(store, newRecordingProcessor(), "sekrit")

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"malformed header", "Token sekrit", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusForbidden},
		{"valid token", "Bearer sekrit", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartUpload(t, nil, "Invoice Number\nINV-1\n")
			req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest", body)
			req.Header.Set("Content-Type", contentType)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			handler.IngestCSV(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestIngestCSV_MissingFile(t *testing.T) {
	store := memory.NewStore("inbox")
	handler := NewHandler(store, newRecordingProcessor(), "")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("message_id", "msg-1"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.IngestCSV(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	store := memory.NewStore("inbox")
	handler := NewHandler(store, newRecordingProcessor(), "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp api.HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "connected", resp.Store)
}

package intake

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fintech-tools/receipt-relay/pkg/models/api"
	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
	"github.com/fintech-tools/receipt-relay/pkg/store/object"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	folderPrefix  = "intake"
	maxUploadSize = 32 << 20 // 32 MiB
)

// Processor runs one stored CSV through the transformation pipeline.
type Processor interface {
	ProcessObject(ctx context.Context, key, sourceURL, messageID string) ([]domain.ProcessedReceipt, error)
}

type Handler struct {
	store     object.Store
	processor Processor
	token     string
}

// NewHandler builds the intake handler. token may be empty, which disables
// the bearer-token check.
func NewHandler(store object.Store, processor Processor, token string) *Handler {
	return &Handler{
		store:     store,
		processor: processor,
		token:     token,
	}
}

// IngestCSV receives a CSV attachment as multipart form data, uploads it to
// the object store and schedules processing in the background. The upload
// is acknowledged as soon as it is durable; transformation and webhook
// delivery happen asynchronously.
func (h *Handler) IngestCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if status, err := h.authorize(r); err != nil {
		writeError(w, status, err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	messageID := r.FormValue("message_id")
	if messageID == "" {
		messageID = uuid.NewString()
	}
	receivedDate := r.FormValue("received_date")
	if receivedDate == "" {
		receivedDate = time.Now().UTC().Format(time.DateOnly)
	}
	originalName := r.FormValue("original_name")
	if originalName == "" {
		originalName = header.Filename
	}
	sourceURL := r.FormValue("source_url")

	key := objectName(originalName, messageID, receivedDate, contents)

	logger.Info().
		Str("object", key).
		Str("message_id", messageID).
		Int("bytes", len(contents)).
		Msg("csv intake received")

	if err := h.store.Put(ctx, key, contents, "text/csv"); err != nil {
		logger.Error().Err(err).Str("object", key).Msg("upload failed")
		writeError(w, http.StatusInternalServerError, "upload failed")
		return
	}

	// Processing outlives the request; hand it a detached context carrying
	// the same logger.
	bgCtx := logger.WithContext(context.Background())
	go func() {
		if _, err := h.processor.ProcessObject(bgCtx, key, sourceURL, messageID); err != nil {
			zerolog.Ctx(bgCtx).Error().Err(err).Str("object", key).Msg("processing failed")
		}
	}()

	writeJSON(w, http.StatusOK, api.IngestResponse{
		Status:       "success",
		Message:      "CSV uploaded successfully",
		Path:         h.store.URI(key),
		MessageID:    messageID,
		OriginalName: originalName,
	})
}

// Health reports store connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, api.HealthResponse{
			Status: "unhealthy",
			Store:  "disconnected",
			Error:  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, api.HealthResponse{
		Status: "healthy",
		Store:  "connected",
	})
}

func (h *Handler) authorize(r *http.Request) (int, error) {
	if h.token == "" {
		return 0, nil
	}

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return http.StatusUnauthorized, fmt.Errorf("missing bearer token")
	}
	if strings.TrimPrefix(auth, "Bearer ") != h.token {
		return http.StatusForbidden, fmt.Errorf("invalid bearer token")
	}
	return 0, nil
}

// objectName builds a unique storage key from the received date, upstream
// message id, a short content hash and the sanitized original filename.
func objectName(originalName, messageID, receivedDate string, contents []byte) string {
	sum := sha256.Sum256(contents)
	fragment := hex.EncodeToString(sum[:])[:12]
	safeName := strings.ReplaceAll(originalName, " ", "_")
	return fmt.Sprintf("%s/%s_%s_%s_%s", folderPrefix, receivedDate, messageID, fragment, safeName)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, api.ErrorResponse{Error: message})
}

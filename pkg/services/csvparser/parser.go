package csvparser

import (
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fintech-tools/receipt-relay/pkg/models/domain"
)

// Parse decodes CSV bytes into header-keyed rows. Decoding is best-effort:
// invalid UTF-8 is replaced rather than rejected, and ragged records keep
// whatever columns they have. An empty file yields an empty batch.
func Parse(data []byte) ([]domain.Row, error) {
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	text = strings.TrimPrefix(text, "\ufeff")

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]domain.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domain.Row, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

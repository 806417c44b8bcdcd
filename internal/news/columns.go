package news

import (
	"fmt"
	"strings"
)

// Logical fields resolved against the CSV header.
// 컬럼 별칭은 여기서만 정의 (duck-typing 대신 명시적 별칭 테이블)
const (
	FieldTimestamp = "timestamp"
	FieldText      = "text"
	FieldTicker    = "ticker"
)

// columnAliases enumerates the accepted header names per logical field,
// matched case-insensitively. Resolution happens once at load time.
var columnAliases = map[string][]string{
	FieldTimestamp: {"date", "datetime", "time", "timestamp", "published", "published_at"},
	FieldText:      {"headline", "title", "news", "text", "headline_text"},
	FieldTicker:    {"ticker", "stock", "symbol", "ticker_symbol"},
}

// SchemaError reports a required column that could not be resolved.
// Carries the available columns to aid debugging.
type SchemaError struct {
	Field     string
	Available []string
}

func (e *SchemaError) Error() string {
	if aliases := columnAliases[e.Field]; len(aliases) > 0 {
		return fmt.Sprintf("no %s column found (accepted: %s); available columns: %s",
			e.Field, strings.Join(aliases, ", "), strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("no %s column found; available columns: %s",
		e.Field, strings.Join(e.Available, ", "))
}

// Columns holds the resolved header indexes for one file.
// Ticker is optional in the news schema; -1 when absent.
type Columns struct {
	Timestamp int
	Text      int
	Ticker    int
}

// resolveColumn returns the index of the first header matching an alias for
// the field, or -1.
func resolveColumn(header []string, field string) int {
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		for _, alias := range columnAliases[field] {
			if name == alias {
				return i
			}
		}
	}
	return -1
}

// resolveColumns resolves timestamp and text (required) and ticker
// (optional) against the header.
func resolveColumns(header []string) (Columns, error) {
	cols := Columns{
		Timestamp: resolveColumn(header, FieldTimestamp),
		Text:      resolveColumn(header, FieldText),
		Ticker:    resolveColumn(header, FieldTicker),
	}

	if cols.Timestamp < 0 {
		return cols, &SchemaError{Field: FieldTimestamp, Available: header}
	}
	if cols.Text < 0 {
		return cols, &SchemaError{Field: FieldText, Available: header}
	}

	return cols, nil
}

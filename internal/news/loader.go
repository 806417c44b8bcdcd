// Package news loads and writes the news-headline CSV files.
package news

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wonny/sentiq/internal/contracts"
	"github.com/wonny/sentiq/pkg/logger"
)

// timestampLayouts are tried in order. Layouts without a zone offset are
// parsed as UTC: assuming a zone silently is a known off-by-one-day hazard,
// so the naive→UTC rule is applied here, exactly once, and documented.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// File is one loaded news CSV. Header and Rows keep the original cells
// untouched so the writer can reproduce them alongside the derived columns.
type File struct {
	Path    string
	Header  []string
	Rows    [][]string
	Columns Columns
	Events  []contracts.NewsEvent

	// UnparseableTimestamps counts rows whose timestamp cell could not be
	// parsed and became the Unknown sentinel. Never silently dropped.
	UnparseableTimestamps int
}

// Loader reads news CSVs with alias-based column resolution
// ⭐ SSOT: 뉴스 CSV 파싱은 여기서만
type Loader struct {
	logger *logger.Logger
}

// NewLoader creates a news Loader
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads and parses one news CSV.
//
// Missing file and missing required columns are fatal for the file and
// returned as errors (os.ErrNotExist / *SchemaError). Row-level timestamp
// failures are not: the row survives with an invalid timestamp and is
// counted on the result.
func (l *Loader) Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open news file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read news file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("news file %s is empty", path)
	}

	header := records[0]
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	file := &File{
		Path:    path,
		Header:  header,
		Rows:    records[1:],
		Columns: cols,
		Events:  make([]contracts.NewsEvent, 0, len(records)-1),
	}

	for _, row := range file.Rows {
		event := contracts.NewsEvent{
			Headline: cell(row, cols.Text),
		}
		if cols.Ticker >= 0 {
			event.Ticker = strings.ToUpper(strings.TrimSpace(cell(row, cols.Ticker)))
		}

		ts, ok := parseTimestamp(cell(row, cols.Timestamp))
		if ok {
			event.Timestamp = ts
			event.TimestampValid = true
		} else {
			file.UnparseableTimestamps++
		}

		file.Events = append(file.Events, event)
	}

	l.logger.WithFields(map[string]interface{}{
		"path":        path,
		"rows":        len(file.Rows),
		"unparseable": file.UnparseableTimestamps,
	}).Info("Loaded news file")

	return file, nil
}

// cell returns a trimmed field, tolerating short rows
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseTimestamp tries the known layouts; naive layouts are anchored to UTC
func parseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}

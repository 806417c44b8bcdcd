package news

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wonny/sentiq/pkg/config"
	"github.com/wonny/sentiq/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "news.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoader_Load(t *testing.T) {
	csv := `Date,Headline,Stock
2024-03-15T19:30:00Z,Apple surges on strong earnings,AAPL
2024-03-15 21:30:00,Apple faces antitrust probe,aapl
not-a-date,Mystery row,AAPL
`
	path := writeTempCSV(t, csv)

	loader := NewLoader(testLogger())
	file, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(file.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(file.Events))
	}

	if file.UnparseableTimestamps != 1 {
		t.Errorf("expected 1 unparseable timestamp, got %d", file.UnparseableTimestamps)
	}

	// first row: explicit UTC
	e0 := file.Events[0]
	if !e0.TimestampValid {
		t.Error("row 0 should have a valid timestamp")
	}
	want := time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC)
	if !e0.Timestamp.Equal(want) {
		t.Errorf("row 0 timestamp = %v, want %v", e0.Timestamp, want)
	}
	if e0.Ticker != "AAPL" {
		t.Errorf("row 0 ticker = %q, want AAPL", e0.Ticker)
	}

	// second row: zone-naive, must be anchored to UTC; ticker upper-cased
	e1 := file.Events[1]
	if !e1.TimestampValid {
		t.Error("row 1 should have a valid timestamp")
	}
	if zone, offset := e1.Timestamp.Zone(); offset != 0 {
		t.Errorf("naive timestamp parsed with zone %s offset %d, want UTC", zone, offset)
	}
	if e1.Ticker != "AAPL" {
		t.Errorf("row 1 ticker = %q, want AAPL", e1.Ticker)
	}

	// third row: unparseable → invalid, not dropped
	if file.Events[2].TimestampValid {
		t.Error("row 2 should be Unknown")
	}
}

func TestLoader_LoadColumnAliases(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"canonical", "timestamp,headline_text,ticker_symbol"},
		{"short", "date,title,stock"},
		{"mixed case", "DateTime,News,Symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.header+"\n2024-01-02,Some headline,MSFT\n")

			loader := NewLoader(testLogger())
			file, err := loader.Load(path)
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if len(file.Events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(file.Events))
			}
			if file.Events[0].Headline != "Some headline" {
				t.Errorf("headline = %q", file.Events[0].Headline)
			}
			if file.Events[0].Ticker != "MSFT" {
				t.Errorf("ticker = %q", file.Events[0].Ticker)
			}
		})
	}
}

func TestLoader_LoadSchemaMissing(t *testing.T) {
	path := writeTempCSV(t, "foo,bar\n1,2\n")

	loader := NewLoader(testLogger())
	_, err := loader.Load(path)

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Field != FieldTimestamp {
		t.Errorf("SchemaError field = %q, want %q", schemaErr.Field, FieldTimestamp)
	}
	// available columns must be listed to aid debugging
	if !strings.Contains(err.Error(), "foo") || !strings.Contains(err.Error(), "bar") {
		t.Errorf("error should list available columns, got %q", err.Error())
	}
}

func TestLoader_LoadMissingFile(t *testing.T) {
	loader := NewLoader(testLogger())
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoader_LoadTickerOptional(t *testing.T) {
	path := writeTempCSV(t, "date,headline\n2024-01-02,No ticker here\n")

	loader := NewLoader(testLogger())
	file, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if file.Columns.Ticker != -1 {
		t.Errorf("ticker column index = %d, want -1", file.Columns.Ticker)
	}
	if file.Events[0].Ticker != "" {
		t.Errorf("ticker = %q, want empty", file.Events[0].Ticker)
	}
}

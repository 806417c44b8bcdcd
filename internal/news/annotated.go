package news

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wonny/sentiq/internal/contracts"
)

// AnnotatedFile is a previously written sentiment CSV read back for the
// correlation stage. Events carry score and trading date; rows whose
// trading_date was the Unknown sentinel (empty) are kept out of Events but
// counted.
type AnnotatedFile struct {
	Path         string
	Events       []contracts.ScoredEvent
	UnknownDates int
}

// LoadAnnotated reads a sentiment-annotated CSV produced by Writer.Write.
// The ticker column is resolved through the usual aliases ("stock" included,
// the common name in news datasets); sentiment_score and trading_date are
// matched by their exact written names.
func (l *Loader) LoadAnnotated(path string) (*AnnotatedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentiment file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sentiment file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sentiment file %s is empty", path)
	}

	header := records[0]
	scoreIdx, dateIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case colSentimentScore:
			scoreIdx = i
		case colTradingDate:
			dateIdx = i
		}
	}
	if scoreIdx < 0 {
		return nil, &SchemaError{Field: colSentimentScore, Available: header}
	}
	if dateIdx < 0 {
		return nil, &SchemaError{Field: colTradingDate, Available: header}
	}
	tickerIdx := resolveColumn(header, FieldTicker)

	out := &AnnotatedFile{Path: path}
	for _, row := range records[1:] {
		dateStr := cell(row, dateIdx)
		if dateStr == "" {
			out.UnknownDates++
			continue
		}
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
		if err != nil {
			out.UnknownDates++
			continue
		}

		score, err := strconv.ParseFloat(cell(row, scoreIdx), 64)
		if err != nil {
			// unparseable score coerces to neutral, not a dropped row
			score = 0.0
		}

		event := contracts.ScoredEvent{
			Score:            score,
			TradingDate:      date,
			TradingDateValid: true,
		}
		if tickerIdx >= 0 {
			event.Ticker = strings.ToUpper(cell(row, tickerIdx))
		}
		out.Events = append(out.Events, event)
	}

	return out, nil
}

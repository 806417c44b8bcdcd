package sentiment

import (
	"fmt"

	"github.com/wonny/sentiq/internal/contracts"
	"github.com/wonny/sentiq/internal/news"
	"github.com/wonny/sentiq/internal/tradingday"
	"github.com/wonny/sentiq/pkg/logger"
)

// Analyzer runs the full annotation pipeline: load news, score each
// headline, align each event to its trading date, write the annotated CSV
// ⭐ SSOT: 감성 파이프라인 오케스트레이션은 여기서만
type Analyzer struct {
	loader  *news.Loader
	writer  *news.Writer
	scorer  *Scorer
	aligner *tradingday.Aligner
	logger  *logger.Logger
}

// NewAnalyzer wires the pipeline components
func NewAnalyzer(loader *news.Loader, writer *news.Writer, scorer *Scorer, aligner *tradingday.Aligner, log *logger.Logger) *Analyzer {
	return &Analyzer{
		loader:  loader,
		writer:  writer,
		scorer:  scorer,
		aligner: aligner,
		logger:  log,
	}
}

// Run processes inputPath and writes the annotated CSV to outputPath.
// File-level problems (missing file, missing columns) abort the run;
// row-level problems are coerced (neutral score, Unknown date) and counted
// on the result.
func (a *Analyzer) Run(inputPath, outputPath string) (*contracts.AnalyzeResult, error) {
	file, err := a.loader.Load(inputPath)
	if err != nil {
		return nil, fmt.Errorf("load news: %w", err)
	}

	scored := a.ScoreEvents(file.Events)

	result := &contracts.AnalyzeResult{
		Rows:       len(scored),
		Scored:     len(scored),
		OutputPath: outputPath,
	}
	for i := range scored {
		if !scored[i].TradingDateValid {
			result.UnknownDates++
		}
		switch scored[i].Label {
		case contracts.LabelPositive:
			result.PositiveCount++
		case contracts.LabelNegative:
			result.NegativeCount++
		default:
			result.NeutralCount++
		}
	}

	if err := a.writer.Write(outputPath, file, scored); err != nil {
		return nil, fmt.Errorf("write annotated news: %w", err)
	}

	a.logger.WithFields(map[string]interface{}{
		"rows":     result.Rows,
		"unknown":  result.UnknownDates,
		"positive": result.PositiveCount,
		"negative": result.NegativeCount,
		"neutral":  result.NeutralCount,
	}).Info("Sentiment analysis complete")

	return result, nil
}

// ScoreEvents scores and aligns a batch of events. Pure over its input: the
// same events always produce the same scores and trading dates.
func (a *Analyzer) ScoreEvents(events []contracts.NewsEvent) []contracts.ScoredEvent {
	scored := make([]contracts.ScoredEvent, len(events))
	for i, event := range events {
		score := a.scorer.Score(event.Headline)
		date, ok := a.aligner.Align(event.Timestamp, event.TimestampValid)

		scored[i] = contracts.ScoredEvent{
			NewsEvent:        event,
			Score:            score,
			Label:            a.scorer.Label(score),
			TradingDate:      date,
			TradingDateValid: ok,
		}
	}
	return scored
}

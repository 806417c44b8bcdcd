// Package sentiment scores news headlines and runs the annotation pipeline.
package sentiment

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"

	"github.com/wonny/sentiq/internal/contracts"
	"github.com/wonny/sentiq/pkg/config"
)

// Scorer computes VADER compound scores for headline text
// ⭐ SSOT: 감성 점수 계산은 여기서만
//
// The lexicon model is built lazily on first use and reused for every call in
// the run; the process is short-lived batch, so no teardown is needed.
type Scorer struct {
	once     sync.Once
	analyzer *govader.SentimentIntensityAnalyzer

	positiveThreshold float64
	negativeThreshold float64
}

// NewScorer creates a Scorer with the configured label thresholds
func NewScorer(cfg *config.Config) *Scorer {
	return &Scorer{
		positiveThreshold: cfg.Sentiment.PositiveThreshold,
		negativeThreshold: cfg.Sentiment.NegativeThreshold,
	}
}

// Score returns the compound sentiment in [-1, 1].
// Missing or empty text scores neutral (0.0), never an error.
func (s *Scorer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}

	s.once.Do(func() {
		s.analyzer = govader.NewSentimentIntensityAnalyzer()
	})

	return s.analyzer.PolarityScores(text).Compound
}

// Label maps a score to positive / negative / neutral
func (s *Scorer) Label(score float64) string {
	switch {
	case score > s.positiveThreshold:
		return contracts.LabelPositive
	case score < s.negativeThreshold:
		return contracts.LabelNegative
	default:
		return contracts.LabelNeutral
	}
}

package sentiment

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"
	"github.com/ternarybob/arbor"
)

// Sentiment label thresholds. Scores inside (-0.05, 0.05] inclusive of the
// boundaries are Neutral.
const (
	thresholdPositive = 0.05
	thresholdNegative = -0.05
)

// Service wraps the VADER lexicon analyzer behind a pure scoring interface.
// The analyzer is stateless after construction and safe for concurrent reads.
type Service struct {
	once     sync.Once
	analyzer *govader.SentimentIntensityAnalyzer
	logger   arbor.ILogger
}

// NewService creates a new sentiment scoring service
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Score returns the compound sentiment score for text, in [-1, 1].
// Empty or whitespace-only input scores 0.0.
func (s *Service) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}

	s.once.Do(func() {
		s.analyzer = govader.NewSentimentIntensityAnalyzer()
	})

	return s.analyzer.PolarityScores(text).Compound
}

// Average returns the arithmetic mean of scores, or 0.0 for an empty slice
func (s *Service) Average(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}
	var sum float64
	for _, score := range scores {
		sum += score
	}
	return sum / float64(len(scores))
}

// Label categorizes a compound score into Positive, Negative or Neutral
func (s *Service) Label(score float64) string {
	switch {
	case score > thresholdPositive:
		return "Positive"
	case score < thresholdNegative:
		return "Negative"
	default:
		return "Neutral"
	}
}

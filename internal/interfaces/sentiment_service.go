package interfaces

// SentimentService wraps the lexicon-based sentiment scorer. The lexicon and
// algorithm are a black box: text in, compound score in [-1, 1] out.
type SentimentService interface {
	// Score returns the compound sentiment for one text; 0.0 for empty input
	Score(text string) float64

	// Average returns the arithmetic mean of scores; 0.0 for an empty slice
	Average(scores []float64) float64

	// Label maps a score to Positive (> 0.05), Negative (< -0.05) or Neutral
	Label(score float64) string
}

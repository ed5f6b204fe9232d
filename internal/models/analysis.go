package models

// Sentiment levels the analysis provider may assign
const (
	SentimentStronglyPositive = "Strongly Positive"
	SentimentPositive         = "Positive"
	SentimentNeutral          = "Neutral"
	SentimentNegative         = "Negative"
	SentimentStronglyNegative = "Strongly Negative"
)

// AnalysisResult is the fixed-schema qualitative analysis returned by the LLM
// provider after reconciliation. Every field is always present on output;
// list-typed fields are always non-nil, never null or scalar.
type AnalysisResult struct {
	Summary                 string   `json:"summary"`
	OverallSentiment        string   `json:"overall_sentiment"`
	SentimentScoreLLM       float64  `json:"sentiment_score_llm"`
	SentimentReason         string   `json:"sentiment_reason"`
	KeyThemes               []string `json:"key_themes"`
	PotentialImpact         string   `json:"potential_impact"`
	KeyCompaniesMentioned   []string `json:"key_companies_mentioned_context"`
	RisksIdentified         []string `json:"risks_identified"`
	OpportunitiesIdentified []string `json:"opportunities_identified"`
}

// NewDefaultAnalysisResult returns the documented per-field defaults used when
// the provider's reply omits or malforms a key.
func NewDefaultAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Summary:                 "N/A",
		OverallSentiment:        SentimentNeutral,
		SentimentScoreLLM:       0.0,
		SentimentReason:         "N/A",
		KeyThemes:               []string{},
		PotentialImpact:         "N/A",
		KeyCompaniesMentioned:   []string{},
		RisksIdentified:         []string{},
		OpportunitiesIdentified: []string{},
	}
}

// SentimentAggregate is the local lexicon-based sentiment summary for one
// entity, recomputed per request.
type SentimentAggregate struct {
	AverageScore float64 `json:"average_score"`
	Label        string  `json:"label"` // Positive, Negative or Neutral
}

package models

// Article is a normalized news item produced by the news fetch adapter.
// Content is derived from the provider's title and description; articles whose
// derived content is empty after trimming never reach this type.
type Article struct {
	Content       string  `json:"content"`
	PublishedDate string  `json:"published_date"` // YYYY-MM-DD
	URL           string  `json:"url"`
	SourceName    string  `json:"source_name"`
	VaderScore    float64 `json:"vader_score"`
}

package news

import (
	"strings"
	"time"
	"unicode"

	"github.com/ternarybob/marketpulse/internal/models"
)

// normalize converts raw provider items into Articles: content derived from
// title and description, URL-deduplicated, stopping once maxArticles have
// been accepted. Items with no usable text are dropped; items without a URL
// are kept and never deduplicated against each other.
func (s *Service) normalize(raw []apiArticle, maxArticles int) []models.Article {
	seen := make(map[string]struct{}, len(raw))
	articles := make([]models.Article, 0, maxArticles)

	for _, item := range raw {
		if len(articles) >= maxArticles {
			break
		}

		if item.URL != "" {
			if _, dup := seen[item.URL]; dup {
				continue
			}
			seen[item.URL] = struct{}{}
		}

		content := deriveContent(item.Title, item.Description)
		if content == "" {
			continue
		}

		articles = append(articles, models.Article{
			Content:       content,
			PublishedDate: publishedDate(item.PublishedAt),
			URL:           item.URL,
			SourceName:    item.Source.Name,
		})
	}

	return articles
}

// deriveContent joins title and description into one text. A title already
// ending in terminal punctuation is joined with a space, otherwise with ". ".
// Returns "" when the combined text carries no letters or digits.
func deriveContent(title, description string) string {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	var content string
	switch {
	case title != "" && description != "":
		if endsWithTerminal(title) {
			content = title + " " + description
		} else {
			content = title + ". " + description
		}
	case title != "":
		content = title
	default:
		content = description
	}

	if !hasSubstance(content) {
		return ""
	}
	return content
}

func endsWithTerminal(s string) bool {
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// hasSubstance reports whether the text contains at least one letter or digit
func hasSubstance(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// publishedDate reduces the provider's RFC3339 timestamp to YYYY-MM-DD.
// Unparseable timestamps come back empty rather than failing the article.
func publishedDate(raw string) string {
	if raw == "" {
		return ""
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("2006-01-02")
	}
	if len(raw) >= 10 {
		if _, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return raw[:10]
		}
	}
	return ""
}

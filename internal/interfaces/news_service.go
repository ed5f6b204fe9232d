package interfaces

import (
	"context"

	"github.com/ternarybob/marketpulse/internal/models"
)

// NewsService fetches and normalizes news articles from the search provider.
//
// Fetch never returns an error past this boundary in the Go sense; provider
// failures are classified into a models.Failure and an empty article list.
// A fixed courtesy delay applies once per provider call, success or failure.
type NewsService interface {
	Fetch(ctx context.Context, apiKey, query string, window models.DateWindow, maxArticles int, rec *models.LogRecorder) ([]models.Article, *models.Failure)
}

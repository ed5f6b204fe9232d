package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/marketpulse/internal/models"
	"github.com/ternarybob/marketpulse/internal/services/credentials"
)

// stubGenerator returns a canned reply or error and records calls
type stubGenerator struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) Name() string { return "stub" }

func (s *stubGenerator) Generate(_ context.Context, _, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

const fullReply = `{
	"summary": "Sector saw strong earnings.",
	"overall_sentiment": "Positive",
	"sentiment_score_llm": 0.6,
	"sentiment_reason": "Earnings beats across the board.",
	"key_themes": ["earnings", "AI demand"],
	"potential_impact": "Likely near-term upside.",
	"key_companies_mentioned_context": ["Infosys - Positive earnings report"],
	"risks_identified": ["currency headwinds"],
	"opportunities_identified": ["deal pipeline"]
}`

func TestAnalyzeSuccess(t *testing.T) {
	gen := &stubGenerator{reply: fullReply}
	svc := NewServiceWithGenerator(gen, nil)
	rec := models.NewLogRecorder(nil)

	result, failure := svc.Analyze(context.Background(), "key", []string{"Article one.", "Article two."}, "Nifty IT", "2026-08-20 to 2026-08-27", "", rec)
	require.Nil(t, failure)
	require.NotNil(t, result)

	assert.Equal(t, "Sector saw strong earnings.", result.Summary)
	assert.Equal(t, "Positive", result.OverallSentiment)
	assert.Equal(t, 0.6, result.SentimentScoreLLM)
	assert.Equal(t, []string{"earnings", "AI demand"}, result.KeyThemes)

	assert.Contains(t, gen.lastPrompt, "Nifty IT")
	assert.Contains(t, gen.lastPrompt, "2026-08-20 to 2026-08-27")
	assert.Contains(t, gen.lastPrompt, "Article one."+articleSeparator+"Article two.")
	assert.Contains(t, gen.lastPrompt, defaultFocus)
}

func TestAnalyzeCustomInstructions(t *testing.T) {
	gen := &stubGenerator{reply: fullReply}
	svc := NewServiceWithGenerator(gen, nil)

	_, failure := svc.Analyze(context.Background(), "key", []string{"Article."}, "Nifty IT", "range", "Focus on regulation only.", models.NewLogRecorder(nil))
	require.Nil(t, failure)
	assert.Contains(t, gen.lastPrompt, "Focus on regulation only.")
	assert.NotContains(t, gen.lastPrompt, defaultFocus)
}

func TestAnalyzeMissingKeyFailsFast(t *testing.T) {
	gen := &stubGenerator{reply: fullReply}
	svc := NewServiceWithGenerator(gen, nil)

	for _, key := range []string{"", credentials.PlaceholderLLMKey} {
		result, failure := svc.Analyze(context.Background(), key, []string{"Article."}, "Nifty IT", "range", "", models.NewLogRecorder(nil))
		assert.Nil(t, result)
		require.NotNil(t, failure)
		assert.Equal(t, models.ErrKindMissingCredential, failure.Kind)
	}
	assert.Zero(t, gen.calls)
}

func TestAnalyzeEmptyContentIsDefaultShapedSuccess(t *testing.T) {
	gen := &stubGenerator{reply: fullReply}
	svc := NewServiceWithGenerator(gen, nil)

	for _, articles := range [][]string{nil, {}, {"", "   "}} {
		result, failure := svc.Analyze(context.Background(), "key", articles, "Nifty IT", "range", "", models.NewLogRecorder(nil))
		require.Nil(t, failure)
		require.NotNil(t, result)
		assert.Equal(t, "No news content was available for analysis.", result.Summary)
		assert.Equal(t, "No articles available or all were empty.", result.SentimentReason)
		assert.Equal(t, models.SentimentNeutral, result.OverallSentiment)
		assert.NotNil(t, result.KeyThemes)
		assert.Empty(t, result.KeyThemes)
	}
	assert.Zero(t, gen.calls)
}

func TestAnalyzeFencedReply(t *testing.T) {
	gen := &stubGenerator{reply: "```json\n" + fullReply + "\n```"}
	svc := NewServiceWithGenerator(gen, nil)

	result, failure := svc.Analyze(context.Background(), "key", []string{"Article."}, "Nifty IT", "range", "", models.NewLogRecorder(nil))
	require.Nil(t, failure)
	assert.Equal(t, "Positive", result.OverallSentiment)
}

func TestAnalyzeWrappedReply(t *testing.T) {
	gen := &stubGenerator{reply: "Here is the analysis you asked for:\n" + fullReply + "\nLet me know if you need more."}
	svc := NewServiceWithGenerator(gen, nil)

	result, failure := svc.Analyze(context.Background(), "key", []string{"Article."}, "Nifty IT", "range", "", models.NewLogRecorder(nil))
	require.Nil(t, failure)
	assert.Equal(t, 0.6, result.SentimentScoreLLM)
}

func TestAnalyzeMalformedReply(t *testing.T) {
	tests := []string{
		"I cannot analyze this content.",
		"{ broken json ",
		"```json\nnot json at all\n```",
	}
	for _, reply := range tests {
		gen := &stubGenerator{reply: reply}
		svc := NewServiceWithGenerator(gen, nil)

		result, failure := svc.Analyze(context.Background(), "key", []string{"Article."}, "Nifty IT", "range", "", models.NewLogRecorder(nil))
		assert.Nil(t, result, "reply %q", reply)
		require.NotNil(t, failure, "reply %q", reply)
		assert.Equal(t, models.ErrKindMalformedResponse, failure.Kind)
		assert.NotContains(t, failure.Message, reply, "raw reply must not leak to caller")
	}
}

func TestAnalyzeProviderError(t *testing.T) {
	longDetail := strings.Repeat("x", 300)
	gen := &stubGenerator{err: errors.New(longDetail)}
	svc := NewServiceWithGenerator(gen, nil)

	result, failure := svc.Analyze(context.Background(), "key", []string{"Article."}, "Nifty IT", "range", "", models.NewLogRecorder(nil))
	assert.Nil(t, result)
	require.NotNil(t, failure)
	assert.Equal(t, models.ErrKindServiceError, failure.Kind)
	assert.LessOrEqual(t, len(failure.Message), len("Error during analysis: ")+100)
}

func TestReconcileDefaults(t *testing.T) {
	rec := models.NewLogRecorder(nil)

	// Missing keys and a scalar where a list is expected
	result, err := reconcile(`{
		"summary": "Short week.",
		"overall_sentiment": "Negative",
		"sentiment_score_llm": -0.3,
		"key_themes": "just one theme",
		"key_companies_mentioned_context": []
	}`, rec)
	require.NoError(t, err)

	assert.Equal(t, "Short week.", result.Summary)
	assert.Equal(t, "Negative", result.OverallSentiment)
	assert.Equal(t, -0.3, result.SentimentScoreLLM)
	assert.Equal(t, "N/A", result.SentimentReason)
	assert.Equal(t, "N/A", result.PotentialImpact)
	assert.Equal(t, []string{}, result.KeyThemes, "non-list value becomes empty list")
	assert.Equal(t, []string{}, result.RisksIdentified)
	assert.Equal(t, []string{}, result.OpportunitiesIdentified)

	require.NotEmpty(t, rec.Entries())
}

func TestTruncateArticles(t *testing.T) {
	t.Run("under budget untouched", func(t *testing.T) {
		kept, truncated := truncateArticles([]string{"a", "b", "c"})
		assert.Equal(t, []string{"a", "b", "c"}, kept)
		assert.False(t, truncated)
	})

	t.Run("whole article prefixes kept", func(t *testing.T) {
		big := strings.Repeat("x", maxPromptChars-10)
		kept, truncated := truncateArticles([]string{big, strings.Repeat("y", 100), "z"})
		require.Len(t, kept, 1)
		assert.Equal(t, big, kept[0])
		assert.True(t, truncated)
	})

	t.Run("single oversized article clipped", func(t *testing.T) {
		huge := strings.Repeat("x", maxPromptChars+500)
		kept, truncated := truncateArticles([]string{huge})
		require.Len(t, kept, 1)
		assert.Len(t, kept[0], maxPromptChars)
		assert.True(t, truncated)
	})

	t.Run("total never exceeds budget", func(t *testing.T) {
		articles := []string{
			strings.Repeat("a", 12000),
			strings.Repeat("b", 12000),
			strings.Repeat("c", 12000),
		}
		kept, truncated := truncateArticles(articles)
		total := 0
		for _, text := range kept {
			total += len(text)
		}
		assert.LessOrEqual(t, total, maxPromptChars)
		assert.True(t, truncated)
	})
}

func TestExtractJSON(t *testing.T) {
	got, err := extractJSON("```json\n{\"a\": 1}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, got)

	got, err = extractJSON(`prefix {"a": {"b": 2}} suffix`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": {"b": 2}}`, got)

	_, err = extractJSON("no object here")
	assert.Error(t, err)
}

package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ternarybob/marketpulse/internal/models"
)

// extractJSON isolates the JSON object inside a raw model reply. Markdown
// code fences are stripped first, then everything outside the first '{' and
// last '}' is discarded. Providers sometimes wrap or preface the object
// despite being told not to.
func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// reconcile decodes an extracted JSON object and forces it onto the full
// nine-field schema. Missing or mistyped keys fall back to documented
// defaults with a warning; a value where a list is expected but absent
// becomes an empty list, never null.
func reconcile(jsonText string, rec *models.LogRecorder) (*models.AnalysisResult, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, err
	}

	out := models.NewDefaultAnalysisResult()
	out.Summary = stringField(raw, "summary", out.Summary, rec)
	out.OverallSentiment = stringField(raw, "overall_sentiment", out.OverallSentiment, rec)
	out.SentimentScoreLLM = floatField(raw, "sentiment_score_llm", out.SentimentScoreLLM, rec)
	out.SentimentReason = stringField(raw, "sentiment_reason", out.SentimentReason, rec)
	out.KeyThemes = listField(raw, "key_themes", rec)
	out.PotentialImpact = stringField(raw, "potential_impact", out.PotentialImpact, rec)
	out.KeyCompaniesMentioned = listField(raw, "key_companies_mentioned_context", rec)
	out.RisksIdentified = listField(raw, "risks_identified", rec)
	out.OpportunitiesIdentified = listField(raw, "opportunities_identified", rec)

	return out, nil
}

func stringField(raw map[string]any, key, def string, rec *models.LogRecorder) string {
	v, ok := raw[key]
	if !ok {
		rec.Warnf(fmt.Sprintf("Analysis response missing key '%s'. Using default.", key))
		return def
	}
	s, ok := v.(string)
	if !ok {
		rec.Warnf(fmt.Sprintf("Analysis response key '%s' is not a string. Using default.", key))
		return def
	}
	return s
}

func floatField(raw map[string]any, key string, def float64, rec *models.LogRecorder) float64 {
	v, ok := raw[key]
	if !ok {
		rec.Warnf(fmt.Sprintf("Analysis response missing key '%s'. Using default.", key))
		return def
	}
	f, ok := v.(float64)
	if !ok {
		rec.Warnf(fmt.Sprintf("Analysis response key '%s' is not a number. Using default.", key))
		return def
	}
	return f
}

func listField(raw map[string]any, key string, rec *models.LogRecorder) []string {
	v, ok := raw[key]
	if !ok {
		rec.Warnf(fmt.Sprintf("Analysis response missing key '%s'. Using default.", key))
		return []string{}
	}
	items, ok := v.([]any)
	if !ok {
		rec.Warnf(fmt.Sprintf("Analysis response key '%s' is not a list as expected. Defaulting to empty list.", key))
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprint(item))
		}
	}
	return out
}

package analysis

import (
	"fmt"
	"strings"
)

// maxPromptChars caps the total article text handed to the LLM provider.
// Oversized input is truncated to whole-article prefixes, never rejected.
const maxPromptChars = 25000

// articleSeparator joins article texts inside the prompt
const articleSeparator = "\n\n--- ARTICLE SEPARATOR ---\n\n"

// defaultFocus is used when the caller supplies no custom instructions
const defaultFocus = "Focus on financial and market implications for the sector. Be concise and objective."

// truncateArticles keeps a prefix of the article list within the character
// budget. The first article is always admitted, clipped to the budget if
// needed, so a single oversized article still produces input. Returns the
// kept texts and whether anything was cut.
func truncateArticles(articles []string) ([]string, bool) {
	kept := make([]string, 0, len(articles))
	chars := 0

	for _, text := range articles {
		if chars+len(text) > maxPromptChars && len(kept) > 0 {
			break
		}
		clipped := text
		if len(clipped) > maxPromptChars-chars {
			clipped = clipped[:maxPromptChars-chars]
		}
		kept = append(kept, clipped)
		chars += len(clipped)
		if chars >= maxPromptChars {
			break
		}
	}

	truncated := len(kept) < len(articles)
	if !truncated {
		for i := range kept {
			if len(kept[i]) != len(articles[i]) {
				truncated = true
				break
			}
		}
	}
	return kept, truncated
}

// buildPrompt assembles the analysis instruction around the combined article
// text. The reply contract is a bare JSON object with exactly nine keys.
func buildPrompt(entityName, contextRange, combinedText, customInstructions string) string {
	focus := strings.TrimSpace(customInstructions)
	if focus == "" {
		focus = defaultFocus
	}

	return fmt.Sprintf(`Analyze the following news articles about '%[1]s' from the period '%[2]s'.
Articles are concatenated and separated by '--- ARTICLE SEPARATOR ---'.

--- NEWS CONTENT START ---
%[3]s
--- NEWS CONTENT END ---

%[4]s

Your task is to provide a structured analysis in JSON format. The JSON object must include the following keys:
- "summary": A concise 2-3 sentence summary of the key news and developments for '%[1]s'.
- "overall_sentiment": Classify the overall sentiment. Choose one: "Strongly Positive", "Positive", "Neutral", "Negative", "Strongly Negative".
- "sentiment_score_llm": A float value between -1.0 (Strongly Negative) and 1.0 (Strongly Positive). Neutral is 0.0.
- "sentiment_reason": A brief 1-sentence explanation for the assigned sentiment and score.
- "key_themes": A list of 2-3 dominant themes emerging from the news concerning '%[1]s'. Each theme a short string.
- "potential_impact": A 1-sentence assessment of the potential impact on '%[1]s'.
- "key_companies_mentioned_context": A list of key companies mentioned related to '%[1]s', with brief context (e.g., "Infosys - Positive earnings report"). Empty list or broader industry trends if no specific companies central.
- "risks_identified": A list of 1-2 potential risks for '%[1]s'. Each risk a short string. Empty list if none.
- "opportunities_identified": A list of 1-2 potential opportunities for '%[1]s'. Each opportunity a short string. Empty list if none.

Ensure the output is ONLY the JSON object, without any preceding or succeeding text, and no markdown formatting for the JSON block itself.`,
		entityName, contextRange, combinedText, focus)
}

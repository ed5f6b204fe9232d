package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverage(t *testing.T) {
	svc := NewService(nil)

	t.Run("empty slice averages to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, svc.Average(nil))
		assert.Equal(t, 0.0, svc.Average([]float64{}))
	})

	t.Run("mixed scores", func(t *testing.T) {
		got := svc.Average([]float64{0.4, -0.2, 0.0})
		assert.InDelta(t, 0.0667, got, 1e-3)
	})

	t.Run("single score", func(t *testing.T) {
		assert.Equal(t, -0.75, svc.Average([]float64{-0.75}))
	})
}

func TestLabel(t *testing.T) {
	svc := NewService(nil)

	tests := []struct {
		score float64
		want  string
	}{
		{0.06, "Positive"},
		{-0.06, "Negative"},
		{0.0, "Neutral"},
		{0.05, "Neutral"},  // boundary is inclusive
		{-0.05, "Neutral"}, // boundary is inclusive
		{1.0, "Positive"},
		{-1.0, "Negative"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.Label(tt.score), "score %v", tt.score)
	}
}

func TestScore(t *testing.T) {
	svc := NewService(nil)

	t.Run("empty text scores zero", func(t *testing.T) {
		assert.Equal(t, 0.0, svc.Score(""))
		assert.Equal(t, 0.0, svc.Score("   \t\n"))
	})

	t.Run("scores stay in range", func(t *testing.T) {
		texts := []string{
			"Record profits and strong growth lift the sector to new highs.",
			"Massive losses, layoffs and a regulatory crackdown hit the industry.",
			"The committee will meet on Tuesday.",
		}
		for _, text := range texts {
			score := svc.Score(text)
			assert.GreaterOrEqual(t, score, -1.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})

	t.Run("positive text outranks negative text", func(t *testing.T) {
		positive := svc.Score("Excellent results, great growth, happy investors.")
		negative := svc.Score("Terrible results, awful losses, angry investors.")
		assert.Greater(t, positive, negative)
	})
}

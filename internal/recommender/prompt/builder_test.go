package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRecommendPrompt(t *testing.T) {
	b := NewBuilder()
	got := b.BuildRecommendPrompt([]string{"Inception", "Interstellar", "Tenet"})

	assert.Contains(t, got, "Based on these movies: Inception, Interstellar, Tenet, recommend 5 similar movies.")
	assert.Contains(t, got, `"recommendations": [`)
	assert.Contains(t, got, `"movie_title": "Example Movie"`)
	assert.Contains(t, got, `"why_recommended":`)
	assert.False(t, strings.Contains(got, "%!"), "prompt has a formatting error: %s", got)
}

func TestBuildRecommendPrompt_KeepsOrder(t *testing.T) {
	b := NewBuilder()
	got := b.BuildRecommendPrompt([]string{"C", "A", "B"})

	assert.Contains(t, got, "movies: C, A, B,")
}

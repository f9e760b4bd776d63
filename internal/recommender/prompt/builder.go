package prompt

import (
	"fmt"
	"strings"

	"movie-recommender/backend/internal/model"
)

// Builder constructs prompts for the recommender
type Builder struct {
	count int
}

// NewBuilder creates a prompt builder asking for model.RecommendationCount movies
func NewBuilder() *Builder {
	return &Builder{count: model.RecommendationCount}
}

// BuildRecommendPrompt embeds every title and the example schema
func (b *Builder) BuildRecommendPrompt(movies []string) string {
	return fmt.Sprintf(RecommendPrompt, strings.Join(movies, TitleSeparator), b.count)
}

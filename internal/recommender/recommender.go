package recommender

import (
	"context"
	"fmt"
	"strings"

	"movie-recommender/backend/internal/logging"
	"movie-recommender/backend/internal/model"
	"movie-recommender/backend/internal/recommender/deps"
	"movie-recommender/backend/internal/recommender/prompt"
	"movie-recommender/backend/internal/recommender/response"
	"movie-recommender/backend/internal/recommender/sanitize"
)

const (
	// DefaultModel is the Gemini model used when none is configured
	DefaultModel = "gemini-2.5-flash"
	// Temperature is the sampling temperature for every request
	Temperature float32 = 0.7
	// MaxOutputTokens caps the completion length
	MaxOutputTokens int32 = 2000
)

// Recommender turns a list of titles into recommendations with one model call
type Recommender struct {
	llm           deps.LLMClient
	promptBuilder *prompt.Builder
}

// New creates a Recommender backed by the given client
func New(llm deps.LLMClient) *Recommender {
	return &Recommender{
		llm:           llm,
		promptBuilder: prompt.NewBuilder(),
	}
}

// Generate builds the prompt, calls the model once and parses the completion.
// An empty result is returned as-is; callers decide whether that is an error.
func (r *Recommender) Generate(ctx context.Context, movies []string) (*model.RecommendResponse, error) {
	if len(movies) == 0 {
		return nil, ErrNoMovies
	}

	log := logging.Ctx(ctx)

	titles := sanitize.Titles(movies)
	p := r.promptBuilder.BuildRecommendPrompt(titles)
	log.Debug().Int("movies", len(titles)).Int("prompt_length", len(p)).Msg("built recommendation prompt")

	completion, err := r.llm.GenerateContent(ctx, p, Temperature, MaxOutputTokens)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelCall, err)
	}
	if strings.TrimSpace(completion) == "" {
		return nil, ErrEmptyCompletion
	}

	parsed := response.Parse(completion)
	log.Info().
		Str("outcome", parsed.Outcome.String()).
		Int("recommendations", len(parsed.Recommendations)).
		Msg("parsed model completion")

	if parsed.Outcome == response.Recovered {
		log.Debug().Str("completion", truncateForLog(completion, 500)).Msg("completion was not valid JSON")
	}

	return parsed.Response(), nil
}

// truncateForLog truncates a string to maxLen runes
func truncateForLog(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return s
}

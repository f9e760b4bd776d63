package handler

import (
	"context"
	"net/http"

	"movie-recommender/backend/internal/logging"
	"movie-recommender/backend/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	msgTooFewMovies      = "Please provide at least 3 movies"
	msgTooManyMovies     = "Maximum 10 movies allowed"
	msgInvalidRequest    = "Invalid request: movies must be an array of strings"
	msgNoRecommendations = "Failed to generate valid recommendations"
	msgGeneratorMissing  = "Recommendation service is not available"
)

// Generator produces recommendations for a list of titles
type Generator interface {
	Generate(ctx context.Context, movies []string) (*model.RecommendResponse, error)
}

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// Handler serves the recommendation API
type Handler struct {
	generator Generator
	modelID   string
}

// New creates a Handler. generator may be nil, in which case readiness fails.
func New(generator Generator, modelID string) *Handler {
	return &Handler{
		generator: generator,
		modelID:   modelID,
	}
}

// HandleRecommend validates the movie count and returns generated recommendations
func (h *Handler) HandleRecommend(c *gin.Context) {
	ctx := c.Request.Context()
	log := logging.Ctx(ctx)

	var req model.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debug().Err(err).Msg("rejected recommendation request body")
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", msgInvalidRequest)
		return
	}

	switch n := len(req.Movies); {
	case n < model.MinMovies:
		abortWithError(c, http.StatusBadRequest, "TOO_FEW_MOVIES", msgTooFewMovies)
		return
	case n > model.MaxMovies:
		abortWithError(c, http.StatusBadRequest, "TOO_MANY_MOVIES", msgTooManyMovies)
		return
	}

	if h.generator == nil {
		log.Error().Str("scope", "recommend").Msg(msgGeneratorMissing)
		abortWithError(c, http.StatusInternalServerError, "SERVICE_UNAVAILABLE", msgGeneratorMissing)
		return
	}

	result, err := h.generator.Generate(ctx, req.Movies)
	if err != nil {
		log.Error().Str("scope", "recommend").Err(err).Int("movies", len(req.Movies)).Msg("recommendation generation failed")
		abortWithError(c, http.StatusInternalServerError, "GENERATION_FAILED", err.Error())
		return
	}

	if result.IsEmpty() {
		log.Error().Str("scope", "recommend").Int("movies", len(req.Movies)).Msg(msgNoRecommendations)
		abortWithError(c, http.StatusInternalServerError, "EMPTY_RESULT", msgNoRecommendations)
		return
	}

	log.Info().Int("movies", len(req.Movies)).Int("recommendations", len(result.Recommendations)).Msg("recommendations served")
	c.JSON(http.StatusOK, result)
}

func abortWithError(c *gin.Context, status int, code, detail string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: detail, Code: code})
}

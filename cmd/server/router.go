package main

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"movie-recommender/backend/internal/config"
	"movie-recommender/backend/internal/handler"
	"movie-recommender/backend/internal/logging"
	"movie-recommender/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMethods and corsHeaders spell out "everything" because a wildcard
// is not honoured by browsers on credentialed requests. Preflights that name
// other headers get them echoed by middleware.PreflightHeaders.
var (
	corsMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodHead, http.MethodOptions,
	}
	corsHeaders = []string{
		"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding",
		"Accept-Language", "Authorization", "Cache-Control", "X-Requested-With",
		middleware.RequestIDHeader,
	}
)

func newRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecoveryWithWriter(io.Discard, recoverPanic))
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog())

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())

	r.Use(middleware.PreflightHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     corsMethods,
		AllowHeaders:     corsHeaders,
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", h.HandleHealth)
	r.GET("/ready", h.HandleReadiness)
	r.POST("/recommend", h.HandleRecommend)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Detail: "Not found", Code: "NOT_FOUND"})
	})

	return r
}

// recoverPanic logs a handler panic and answers with the usual error body
func recoverPanic(c *gin.Context, rec any) {
	logging.Ctx(c.Request.Context()).Error().
		Str("scope", "recover").
		Interface("panic", rec).
		Str("path", c.Request.URL.Path).
		Msg("Recovered from panic")

	c.AbortWithStatusJSON(http.StatusInternalServerError, handler.ErrorResponse{
		Detail: fmt.Sprint(rec),
		Code:   "INTERNAL_ERROR",
	})
}

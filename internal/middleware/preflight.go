package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PreflightHeaders echoes Access-Control-Request-Headers back as the allowed
// headers on accepted preflights. Browsers ignore a "*" allow-list on
// credentialed requests, so this is how every request header is permitted.
// It must run before the CORS middleware.
func PreflightHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.GetHeader("Access-Control-Request-Headers")
		if c.Request.Method == http.MethodOptions && requested != "" {
			c.Writer = &preflightWriter{ResponseWriter: c.Writer, requested: requested}
		}
		c.Next()
	}
}

type preflightWriter struct {
	gin.ResponseWriter
	requested string
}

func (w *preflightWriter) WriteHeader(code int) {
	w.allow()
	w.ResponseWriter.WriteHeader(code)
}

func (w *preflightWriter) WriteHeaderNow() {
	w.allow()
	w.ResponseWriter.WriteHeaderNow()
}

// allow only touches responses the CORS layer already accepted
func (w *preflightWriter) allow() {
	h := w.Header()
	if h.Get("Access-Control-Allow-Origin") == "" {
		return
	}
	h.Set("Access-Control-Allow-Headers", w.requested)
}

package handler

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware gates cross-origin requests before routing. Origins are
// matched by exact string against the configured allow-list; credentials
// are always allowed, which is why the allow-list must never contain a
// wildcard (config validation rejects that combination at startup).
// Requests without an Origin header pass through untouched.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Accept", "Accept-Encoding", "Authorization", "Cache-Control",
			"Content-Length", "Content-Type", "Origin", "X-CSRF-Token",
			"X-Request-ID", "X-Requested-With",
		},
		MaxAge: 12 * time.Hour,
	})
}

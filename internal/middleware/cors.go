package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"mskn-backend/internal/config"
)

// NewCORS allows the web client origins from config. Report downloads need
// Content-Disposition exposed so the client can name the saved file.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	return c.Handler
}

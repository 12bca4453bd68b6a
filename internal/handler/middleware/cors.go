package middleware

import (
	"log/slog"

	"appointment-finder/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS handler from cfg. A config that cors would
// reject (for example no allowed origins) disables cross-origin access instead
// of failing startup.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if err := corsCfg.Validate(); err != nil {
		logger.Warn("CORS disabled: invalid configuration", "error", err.Error())
		return func(c *gin.Context) { c.Next() }
	}

	logger.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_headers", cfg.AllowHeaders)
	return cors.New(corsCfg)
}

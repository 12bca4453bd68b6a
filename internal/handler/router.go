package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"appointment-finder/internal/handler/api"
	"appointment-finder/internal/handler/middleware"
	"appointment-finder/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	gatherer prometheus.Gatherer,
	appointmentHandler *api.AppointmentHandler,
	locationHandler *api.LocationHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, gatherer, appointmentHandler, locationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, appointmentHandler *api.AppointmentHandler, locationHandler *api.LocationHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/appointments"), []route{
			{Method: http.MethodGet, Path: "/next", Handler: appointmentHandler.NextAvailable},
		})
		addRoutes(apiGroup.Group("/postal-codes"), []route{
			{Method: http.MethodGet, Path: "/:code/locations", Handler: locationHandler.ByPostalCode},
		})
		addRoutes(apiGroup.Group("/locations"), []route{
			{Method: http.MethodGet, Path: "/:id/postal-codes", Handler: locationHandler.PostalCodes},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}

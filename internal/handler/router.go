package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"order-followup/internal/handler/api"
	"order-followup/internal/handler/middleware"
	"order-followup/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	gatherer prometheus.Gatherer,
	batchEmailHandler *api.BatchEmailHandler,
	workItemHandler *api.WorkItemHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, gatherer, batchEmailHandler, workItemHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, batchEmailHandler *api.BatchEmailHandler, workItemHandler *api.WorkItemHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/batch-emails"), []route{
			{Method: http.MethodPost, Path: "/queue", Handler: batchEmailHandler.Queue},
			{Method: http.MethodPost, Path: "/cancel", Handler: batchEmailHandler.Cancel},
			{Method: http.MethodGet, Path: "/status/:batchId", Handler: batchEmailHandler.Status},
			{Method: http.MethodGet, Path: "/preview", Handler: batchEmailHandler.Preview},
		})

		addRoutes(apiGroup.Group("/work-items"), []route{
			{Method: http.MethodGet, Path: "/due", Handler: workItemHandler.ListDue},
			{Method: http.MethodPost, Path: "/:id/mark-followed-up", Handler: workItemHandler.MarkFollowedUp},
			{Method: http.MethodPost, Path: "/:id/snooze", Handler: workItemHandler.Snooze},
			{Method: http.MethodPost, Path: "/:id/recompute-follow-up", Handler: workItemHandler.Recompute},
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

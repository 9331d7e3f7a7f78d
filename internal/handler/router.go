package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"platecost/internal/handler/api"
	"platecost/internal/handler/middleware"
	"platecost/internal/pkg/config"
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
	integrationHandler *api.IntegrationHandler,
	saleHandler *api.SaleHandler,
	cronHandler *api.CronHandler,
	authMiddleware *middleware.AuthMiddleware,
	registry *prometheus.Registry,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, integrationHandler, saleHandler, cronHandler, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	integrationHandler *api.IntegrationHandler,
	saleHandler *api.SaleHandler,
	cronHandler *api.CronHandler,
	authMiddleware *middleware.AuthMiddleware,
	registry *prometheus.Registry,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cron := apiGroup.Group("/cron")
		cron.Use(middleware.RequireCronSecret(cfg.Cron))
		{
			addRoutes(cron, []route{
				{Method: http.MethodPost, Path: "/sync", Handler: cronHandler.Sync},
			})
		}

		teams := apiGroup.Group("/teams/:slug")
		{
			// The OAuth callback is called by the provider with the tenant's
			// browser, outside any authenticated session.
			addRoutes(teams, []route{
				{Method: http.MethodGet, Path: "/square/callback", Handler: integrationHandler.Callback},
			})

			authed := teams.Group("")
			authed.Use(authMiddleware.RequireAuth(), authMiddleware.RequireTenantSlug())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/square/connect", Handler: integrationHandler.Connect},
				{Method: http.MethodPost, Path: "/square/disconnect", Handler: integrationHandler.Disconnect},
				{Method: http.MethodGet, Path: "/square/locations", Handler: integrationHandler.Locations},
				{Method: http.MethodPost, Path: "/square/location", Handler: integrationHandler.SelectLocation},
				{Method: http.MethodGet, Path: "/sales", Handler: saleHandler.DailySales},
			})
		}
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

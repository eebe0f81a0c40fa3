package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cafe-directory/internal/audit"
	"github.com/BruksfildServices01/cafe-directory/internal/config"
	"github.com/BruksfildServices01/cafe-directory/internal/handlers"
	infraRepo "github.com/BruksfildServices01/cafe-directory/internal/infra/repository"
	"github.com/BruksfildServices01/cafe-directory/internal/middleware"
	"github.com/BruksfildServices01/cafe-directory/internal/observability"
	ucCafe "github.com/BruksfildServices01/cafe-directory/internal/usecase/cafe"
)

// Deps are the long-lived resources the routes are built on. Redis and
// Metrics are optional.
type Deps struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Audit   *audit.Dispatcher
	Metrics *observability.HTTPMetrics
	Log     *zap.Logger
	Picker  ucCafe.Picker
}

func RegisterRoutes(r *gin.Engine, deps Deps, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.RequestLogger(deps.Log),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	// recovery stays innermost: the access log and metrics must see a recovered 500
	r.Use(
		middleware.CORSMiddleware(cfg.AllowedOrigins),
		middleware.Recovery(deps.Log),
	)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA
	// ======================================================
	cafeRepo := infraRepo.NewCafeGormRepository(deps.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	getRandomUC := ucCafe.NewGetRandomCafe(cafeRepo, deps.Picker)
	listAllUC := ucCafe.NewListCafes(cafeRepo)
	searchUC := ucCafe.NewSearchCafesByLocation(cafeRepo)
	getByIDUC := ucCafe.NewGetCafe(cafeRepo)
	createUC := ucCafe.NewCreateCafe(cafeRepo, deps.Audit)
	updatePriceUC := ucCafe.NewUpdateCoffeePrice(cafeRepo, deps.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	cafeHandler := handlers.NewCafeHandler(
		getRandomUC,
		listAllUC,
		searchUC,
		getByIDUC,
		createUC,
		updatePriceUC,
		deps.Log,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB, deps.Log)

	writeLimit := middleware.RateLimit(deps.Redis, middleware.RateLimitConfig{
		Capacity: cfg.RateLimitCapacity,
		Window:   cfg.RateLimitWindow,
		Prefix:   "cafe:rl",
	}, deps.Log)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/random", cafeHandler.Random)
	r.GET("/all", cafeHandler.All)
	r.GET("/search", cafeHandler.Search)
	r.GET("/cafes/:id", cafeHandler.Get)

	r.POST("/add", writeLimit, cafeHandler.Create)
	r.PATCH("/update-price/:id", writeLimit, cafeHandler.UpdatePrice)

	r.GET("/audit-logs", auditLogsHandler.List)
}

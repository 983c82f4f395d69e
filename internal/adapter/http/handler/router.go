package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/jeleniasty/budget-aggregator/internal/adapter/http/middleware"
	redisStore "github.com/jeleniasty/budget-aggregator/internal/adapter/storage/redis"
	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	ImportSvc      ports.ImportService
	AggregationSvc ports.AggregationService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	MaxUploadBytes int64 // <=0 = default 10 MB
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	maxBody := deps.MaxUploadBytes
	if maxBody <= 0 {
		maxBody = 10 << 20
	}

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	importHandler := NewImportHandler(deps.ImportSvc)
	imports := v1.Group("/imports")
	{
		imports.POST("", rl("imports"), importHandler.Upload)
		imports.GET("/:id", rl("import_details"), importHandler.GetDetails)
	}

	aggregationHandler := NewAggregationHandler(deps.AggregationSvc)
	aggregations := v1.Group("/aggregations")
	{
		aggregations.GET("", rl("aggregations"), aggregationHandler.GetStats)
	}

	return r
}

package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-jobdash-backend/config"
	"go-jobdash-backend/internal/delivery/http/middleware"
	"go-jobdash-backend/internal/delivery/http/response"
	"go-jobdash-backend/internal/domain"
)

type RouterDeps struct {
	JobUC      domain.JobUsecase
	ActionUC   domain.ActionUsecase
	BookmarkUC domain.BookmarkUsecase
	CacheUC    domain.CacheUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	limiter := middleware.NewRateLimiter(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	r.Use(limiter.Middleware())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewJobHandler(v1, deps.JobUC)
	NewActionHandler(v1, deps.ActionUC)
	NewBookmarkHandler(v1, deps.BookmarkUC)
	NewCacheHandler(v1, deps.CacheUC)

	return r
}

package v1

import (
	"net/http"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/config"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/delivery/http/middleware"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/delivery/http/response"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AnalyzerUC   domain.AnalyzerUsecase
	VocabularyUC domain.VocabularyUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes (the whole API is public; analysis is stateless)
	NewAnalyzerHandler(v1, deps.AnalyzerUC, deps.Config)
	NewSkillHandler(v1, deps.VocabularyUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

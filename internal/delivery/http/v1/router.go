package v1

import (
	"net/http"

	"simply-jobs-backend/config"
	"simply-jobs-backend/internal/delivery/http/middleware"
	"simply-jobs-backend/internal/delivery/http/response"
	"simply-jobs-backend/internal/domain"
	"simply-jobs-backend/pkg/auth"
	"simply-jobs-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	ProfileUC     domain.ProfileUsecase
	Tokens        auth.TokenService
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global middlewares; CORS must run before anything that can abort.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth endpoints get a stricter limiter on top of the global one.
	authRoutes := r.Group("")
	authRoutes.Use(middleware.RateLimit(middleware.AuthRateLimitConfig()))

	// Public routes resolve an identity when a token is present so job
	// listing can scope itself for employers.
	public := r.Group("")
	public.Use(middleware.OptionalAuth(deps.Tokens, deps.AuthUC))

	protected := r.Group("")
	protected.Use(middleware.Auth(deps.Tokens, deps.AuthUC))

	NewAuthHandler(authRoutes, protected, deps.AuthUC)

	uploads := protected.Group("")
	uploads.Use(middleware.RateLimit(middleware.UploadRateLimitConfig()))

	NewJobHandler(public, protected, deps.JobUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewProfileHandler(public, protected, uploads, deps.ProfileUC)
	NewHistoryHandler(protected, deps.ProfileUC)

	return r
}

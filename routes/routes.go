package routes

import (
	"strings"
	"time"

	"casexpert/config"
	"casexpert/handlers"
	"casexpert/middleware"
	"casexpert/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers the health endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterAuthRoutes registers login, logout and the current-account endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/login", hb.Users.LoginHandler)

	protected := r.Group("/api")
	protected.Use(middleware.SessionAuthMiddleware(hb.Auth, false))
	{
		protected.POST("/auth/logout", hb.Users.LogoutHandler)
		protected.GET("/me", hb.Users.MeHandler)
	}
}

// RegisterCaseRoutes registers case CRUD and search. Listing always requires
// a session; the other routes only require one outside legacy mode.
func RegisterCaseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	required := middleware.SessionAuthMiddleware(hb.Auth, false)
	perRoute := required
	if hb.LegacyCases {
		perRoute = middleware.SessionAuthMiddleware(hb.Auth, true)
	}

	api := r.Group("/api")
	{
		api.GET("/cases", required, hb.Cases.ListCasesHandler)
		api.GET("/cases/:id", perRoute, hb.Cases.GetCaseHandler)
		api.POST("/cases", perRoute, hb.Cases.CreateCaseHandler)
		api.PATCH("/cases/:id", perRoute, hb.Cases.PatchCaseHandler)
		api.DELETE("/cases/:id", perRoute, hb.Cases.DeleteCaseHandler)
		api.GET("/search", perRoute, hb.Cases.SearchCasesHandler)
	}
}

// RegisterUserRoutes registers account administration.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	if hb.LegacyCases {
		api.Use(middleware.SessionAuthMiddleware(hb.Auth, true))
	} else {
		api.Use(middleware.SessionAuthMiddleware(hb.Auth, false), middleware.RequireRole(models.RoleAdmin))
	}
	{
		api.GET("", hb.Users.ListUsersHandler)
		api.PATCH("/:id", hb.Users.PatchUserHandler)
	}
}

// RegisterLawyerRoutes registers the lawyer directory. Reads are public.
func RegisterLawyerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyers")
	{
		api.GET("", hb.Lawyers.ListLawyersHandler)
		api.GET("/:id", hb.Lawyers.GetLawyerHandler)

		protected := api.Group("")
		if !hb.LegacyCases {
			protected.Use(middleware.SessionAuthMiddleware(hb.Auth, false), middleware.RequireRole(models.RoleAdmin))
		}
		protected.POST("", hb.Lawyers.CreateLawyerHandler)
		protected.PATCH("/:id", hb.Lawyers.PatchLawyerHandler)
		protected.DELETE("/:id", hb.Lawyers.DeleteLawyerHandler)
	}
}

// RegisterStorageRoutes registers attachment upload and, for local storage, static serving.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/uploads", hb.Storage.UploadFileHandler)
	if hb.UploadDir != "" {
		r.Static("/uploads", hb.UploadDir)
	}
}

// RegisterAIRoutes registers the assistant and the ML helper endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	assistant := r.Group("/api/assistant")
	if hb.AssistantLimiter != nil {
		assistant.Use(middleware.RateLimitMiddleware(hb.AssistantLimiter))
	}
	assistant.POST("/query", hb.AI.AssistantQueryHandler)

	ml := r.Group("/api/ml")
	{
		ml.POST("/summarize", hb.AI.SummarizeHandler)
		ml.POST("/translate", hb.AI.TranslateHandler)
		ml.POST("/ocr", hb.AI.OCRHandler)
		ml.POST("/stt", hb.AI.STTHandler)
		ml.POST("/hash", hb.AI.HashHandler)
	}
}

// RegisterLegalRoutes registers the legal reference endpoints.
func RegisterLegalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/legal")
	{
		api.GET("/topics", hb.Legal.TopicsHandler)
		api.GET("/search", hb.Legal.SearchHandler)
	}
}

// corsOrigins parses CORS_ORIGINS; nil means every origin is allowed.
func corsOrigins() []string {
	raw := strings.TrimSpace(config.AppConfig.CORSOrigins)
	if raw == "" || raw == "*" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if origins := corsOrigins(); origins != nil {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCaseRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterLawyerRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterLegalRoutes(r, hb)
}

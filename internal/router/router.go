package router

import (
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	"awaaz/internal/config"
	"awaaz/internal/handler"
	"awaaz/internal/middleware"
	"awaaz/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	categoryH *handler.CategoryHandler,
	petitionH *handler.PetitionHandler,
	draftH *handler.DraftHandler,
	commentH *handler.CommentHandler,
	userH *handler.UserHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)
	auth.POST("/otp/send", authH.SendOTP)
	auth.POST("/otp/verify", authH.VerifyOTP)

	// Public browse routes
	v1.GET("/categories", categoryH.List)
	v1.GET("/petitions", petitionH.List)
	v1.GET("/petitions/:id", petitionH.Get)
	v1.GET("/petitions/:id/signatures", petitionH.ListSignatures)
	v1.GET("/petitions/:id/comments", commentH.List)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Any signed-in user may create a category; the wizard's category step
	// offers creation when no existing category fits.
	protected.POST("/categories", categoryH.Create)

	protected.POST("/petitions", petitionH.Publish)
	protected.POST("/petitions/:id/sign", petitionH.Sign)
	protected.POST("/petitions/:id/comments", commentH.Create)
	protected.GET("/petitions/:id/signatures/export", petitionH.ExportSignatures)

	// Wizard draft routes
	drafts := protected.Group("/drafts/petition")
	drafts.GET("", draftH.Get)
	drafts.PUT("", draftH.Save)
	drafts.DELETE("", draftH.Reset)
	drafts.POST("/send-code", draftH.SendCode)
	drafts.POST("/verify", draftH.Verify)
	drafts.POST("/submit", draftH.Submit)

	// Profile routes
	protected.GET("/users/me", userH.Me)
	protected.PATCH("/users/me", userH.UpdateMe)

	return r
}

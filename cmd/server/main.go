package main

import (
	"os"
	"os/signal"
	"syscall"

	"yatube-api/internal/config"
	"yatube-api/internal/console"
	"yatube-api/internal/database"
	"yatube-api/internal/handler"
	"yatube-api/internal/middleware"
	"yatube-api/internal/repository"
	"yatube-api/internal/service"
	"yatube-api/internal/token"
	"yatube-api/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	logrus.Info("Configuration loaded successfully")

	// 2. Build the token service from config
	tokens, err := token.NewService(cfg.JWT)
	if err != nil {
		logrus.Fatalf("Failed to initialize token service: %v", err)
	}

	// 3. Initialize database connection and migrate
	db := database.Connect(cfg)
	database.Migrate(db)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	followRepo := repository.NewFollowRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)

	// 5. Initialize services
	guard := service.NewOwnershipGuard(userRepo)
	authService := service.NewAuthService(userRepo, tokens)
	followService := service.NewFollowService(userRepo, followRepo)
	groupService := service.NewGroupService(groupRepo)
	postService := service.NewPostService(postRepo, groupRepo, userRepo, guard)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, guard)

	// 6. Initialize the admin console gate
	sessions := console.NewSessionStore()
	gate := console.NewGate(authService, userRepo, tokens, sessions)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService, followService)
	postHandler := handler.NewPostHandler(postService, cfg.Pagination)
	commentHandler := handler.NewCommentHandler(commentService)
	groupHandler := handler.NewGroupHandler(groupService)
	consoleHandler := console.NewHandler(gate, userRepo, groupRepo, postRepo, commentRepo)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "yatube-api",
		})
	})

	api := r.Group("/api/v1")
	{
		// Auth & users (public)
		api.POST("/register", authHandler.Register)
		api.POST("/jwt/create", authHandler.CreateToken)
		api.POST("/jwt/refresh", authHandler.RefreshToken)
		api.POST("/jwt/verify", authHandler.VerifyToken)

		// Authenticated user routes
		authed := api.Group("")
		authed.Use(middleware.Auth(tokens))
		{
			authed.GET("/me", authHandler.Me)
			authed.GET("/follow", authHandler.ListFollows)
			authed.POST("/follow", authHandler.Follow)
		}

		// Posts: reads are public, mutations require an access token
		api.GET("/posts", postHandler.List)
		api.GET("/posts/:post_id", postHandler.Get)
		api.POST("/posts", middleware.Auth(tokens), postHandler.Create)
		api.PUT("/posts/:post_id", middleware.Auth(tokens), postHandler.Update)
		api.DELETE("/posts/:post_id", middleware.Auth(tokens), postHandler.Delete)

		// Comments, nested under their post
		api.GET("/posts/:post_id/comments", commentHandler.List)
		api.GET("/posts/:post_id/comments/:id", commentHandler.Get)
		api.POST("/posts/:post_id/comments", middleware.Auth(tokens), commentHandler.Create)
		api.PUT("/posts/:post_id/comments/:id", middleware.Auth(tokens), commentHandler.Update)
		api.DELETE("/posts/:post_id/comments/:id", middleware.Auth(tokens), commentHandler.Delete)

		// Groups (read-only)
		api.GET("/groups", groupHandler.List)
		api.GET("/groups/:group_id", groupHandler.Get)
	}

	// Admin console (session-cookie path)
	consoleHandler.RegisterRoutes(r)

	// 11. Setup graceful shutdown
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")
	logrus.Info("Server exited")
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tactify-cms/config"
	"tactify-cms/handlers"
	"tactify-cms/helper"
	"tactify-cms/middleware"
	"tactify-cms/models"
	"tactify-cms/repositories"
	"tactify-cms/services"
	"tactify-cms/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	db := config.InitDB(cfg)

	// Repositories
	roleRepo := repositories.NewRoleRepository(db)
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	postRepo := repositories.NewPostRepository(db)
	triviaRepo := repositories.NewTriviaRepository(db)

	if err := roleRepo.Seed(); err != nil {
		log.Fatal("Failed to seed roles:", err)
	}

	// File storage
	store := storage.NewFileStore(cfg.UploadDir, cfg.AllowedExtensions)

	// Services
	authService := services.NewAuthService(userRepo, cfg.SecretKey)
	sessionService := services.NewSessionService(authService, sessionRepo, userRepo, cfg.SessionLifetime, cfg.RememberLifetime)
	posterService := services.NewPosterService(postRepo, store, cfg.UploadPrefix)
	triviaService := services.NewTriviaService(triviaRepo)

	// Handlers
	forms := helper.NewFormHelper()
	authHandler := handlers.NewAuthHandler(sessionService, forms)
	posterHandler := handlers.NewPosterHandler(posterService, forms)
	triviaHandler := handlers.NewTriviaHandler(triviaService, forms)
	siteHandler := handlers.NewSiteHandler(posterService, triviaService, store)

	router := gin.Default()
	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Use(middleware.Session(sessionService))

	// Public browsing surface
	router.GET("/", siteHandler.Index)
	router.GET("/aboutme", siteHandler.About)
	router.GET("/postindex", siteHandler.PosterArchive)
	router.GET("/triviasindex", siteHandler.TriviaArchive)
	router.GET("/post/:id/:header", siteHandler.PosterDetail)
	router.GET("/trivia/:id/:header", siteHandler.TriviaDetail)
	router.GET("/download_file/:id/:filename", siteHandler.DownloadFile)
	router.GET("/sitemap", siteHandler.Sitemap)
	router.GET("/sitemap.xml", siteHandler.Sitemap)
	router.GET("/robots.txt", siteHandler.Robots)

	// Session endpoints
	auth := router.Group("/auth")
	{
		auth.GET("/login", authHandler.ShowLogin)
		auth.POST("/login", authHandler.Login)
		auth.GET("/logout", authHandler.Logout)
	}

	// Content mutation, gated on the write permission
	write := auth.Group("")
	write.Use(middleware.RequirePermission(models.PermissionWriteArticles))
	{
		write.GET("/writeposters", posterHandler.New)
		write.POST("/writeposters", posterHandler.Create)
		write.GET("/editposters/:id", posterHandler.Edit)
		write.POST("/editposters/:id", posterHandler.Update)
		write.POST("/deleteposters/:id", posterHandler.Delete)

		write.GET("/writetrivias", triviaHandler.New)
		write.POST("/writetrivias", triviaHandler.Create)
		write.GET("/edittrivias/:id", triviaHandler.Edit)
		write.POST("/edittrivias/:id", triviaHandler.Update)
		write.POST("/deletetrivias/:id", triviaHandler.Delete)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

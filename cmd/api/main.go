package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"guesthouse/internal/config"
	"guesthouse/internal/database"
	"guesthouse/internal/middleware"
	"guesthouse/internal/modules/admin"
	"guesthouse/internal/modules/auth"
	"guesthouse/internal/modules/contact"
	"guesthouse/internal/modules/room"
	"guesthouse/internal/modules/upload"
	jwtsvc "guesthouse/internal/pkg/jwt"
	"guesthouse/internal/pkg/mailer"
	"guesthouse/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	contactRepo := repository.NewContactRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var mail mailer.Mailer = mailer.MockMailer{}
	if cfg.SMTPConfigured() {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFromName)
	} else {
		log.Println("SMTP not configured; contact emails will be logged, not sent")
	}

	cookies := auth.CookieSettings{
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
		Path:     cfg.CookiePath,
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, cookies)

	roomService := room.NewService(roomRepo)
	roomHandler := room.NewHandler(roomService)

	adminService := admin.NewService(roomRepo)
	adminHandler := admin.NewHandler(adminService)

	contactLimiter := middleware.NewRateLimiter(cfg.ContactRateLimit, cfg.ContactRateWindow)
	go contactLimiter.StartCleanup(5 * time.Minute)
	defer contactLimiter.Stop()

	contactService := contact.NewService(contactRepo, mail, cfg.BusinessEmail, cfg.SMTPFromName)
	contactHandler := contact.NewHandler(contactService, contactLimiter)

	uploadService := upload.NewService(cfg.UploadDir, cfg.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.ErrorLogger())
	r.Use(cors.New(corsConfig(cfg)))
	r.Static(cfg.StaticBase, cfg.UploadDir)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api)
		roomHandler.RegisterPublicRoutes(api)
		contactHandler.RegisterPublicRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			roomHandler.RegisterProtectedRoutes(protected)
			adminHandler.RegisterProtectedRoutes(protected)
			uploadHandler.RegisterProtectedRoutes(protected)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}

func corsConfig(cfg *config.Config) cors.Config {
	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}
}

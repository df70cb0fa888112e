package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	gmailauth "github.com/internlink-app/internlink-backend/internal/auth"
	"github.com/internlink-app/internlink-backend/internal/config"
	"github.com/internlink-app/internlink-backend/internal/database"
	"github.com/internlink-app/internlink-backend/internal/handlers"
	"github.com/internlink-app/internlink-backend/internal/services"
	"github.com/internlink-app/internlink-backend/internal/stores"
)

func main() {
	ctx := context.Background()

	// 1. Configuration (loads .env)
	cfg := config.Load()

	// 2. Database Connection + Migrations
	db := database.Connect(cfg.DatabaseDSN)
	st := stores.New(db)

	// 3. External Collaborators
	generator, err := services.NewGeminiGenerator(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	log.Println("Initializing Gmail Client...")
	httpClient := gmailauth.GmailClient(cfg.GmailCredentials, cfg.GmailTokenFile)
	sender, err := services.NewGmailSender(ctx, httpClient, cfg.GmailFrom)
	if err != nil {
		log.Fatal("Failed to create Gmail Service:", err)
	}
	log.Println("Gmail Service connected successfully.")

	files, err := services.NewS3Storage(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to create S3 client:", err)
	}

	// 4. Core Services
	sessionService := services.NewSessionService(st.Sessions)
	profileService := services.NewProfileService(st.Users)
	documentService := services.NewDocumentService(st.Documents, files)
	companyService := services.NewCompanyService(st.Companies)
	draftService := services.NewDraftService(generator)
	applicationService := services.NewApplicationService(st, draftService, sender, files)

	// 5. Handlers
	profileHandler := handlers.NewProfileHandler(profileService)
	uploadHandler := handlers.NewUploadHandler(documentService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	// 6. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Routes
	r.GET("/health", handlers.HealthCheck)

	authed := r.Group("/", handlers.RequireAuth(sessionService))
	{
		authed.GET("/profile", profileHandler.GetProfile)
		authed.PUT("/profile", profileHandler.UpdateProfile)

		authed.POST("/upload/cv", uploadHandler.UploadCV)
		authed.POST("/upload/support-letter", uploadHandler.UploadSupportLetter)

		authed.GET("/companies", companyHandler.ListCompanies)
		authed.POST("/companies", companyHandler.CreateCompany)

		authed.POST("/applications/generate", applicationHandler.GenerateEmail)
		authed.POST("/applications/send", applicationHandler.SendApplication)
		authed.GET("/applications", applicationHandler.ListApplications)
	}

	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

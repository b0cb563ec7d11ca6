package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/darshan103/chatpdfbackend/config"
	"github.com/darshan103/chatpdfbackend/database"
	accountRepo "github.com/darshan103/chatpdfbackend/database/repository/account"
	googleRepo "github.com/darshan103/chatpdfbackend/database/repository/googleuser"
	"github.com/darshan103/chatpdfbackend/handlers"
	"github.com/darshan103/chatpdfbackend/routes"
	"github.com/darshan103/chatpdfbackend/services/auth"
	"github.com/darshan103/chatpdfbackend/services/document"
	ai "github.com/darshan103/chatpdfbackend/services/intelligence"
	"github.com/darshan103/chatpdfbackend/services/mailer"
	"github.com/darshan103/chatpdfbackend/services/socialauth"
	"github.com/darshan103/chatpdfbackend/services/storage"
	"github.com/darshan103/chatpdfbackend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	ctx := context.Background()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	accounts := accountRepo.NewMongoAccountRepo()
	googleAccounts := googleRepo.NewMongoGoogleAccountRepo()

	// document store: redis when configured, in-process otherwise.
	documentTTL := time.Duration(config.AppConfig.DocumentTTLMin) * time.Minute
	var docStore document.DocumentStore
	if addr := config.AppConfig.RedisAddr; addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Sugar().Fatalf("main: failed to connect to redis: %v", err)
		}
		docStore = document.NewRedisDocumentStore(client, documentTTL)
	} else {
		docStore = document.NewMemoryDocumentStore(documentTTL, config.AppConfig.DocumentCap)
	}

	geminiClient, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	var objectStorage storage.ObjectStorage
	if config.AppConfig.StorageEnabled {
		s3Storage, err := storage.NewS3Storage(ctx)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize S3 storage: %v", err)
		}
		objectStorage = s3Storage
	}

	// services.
	documentService := &document.DefaultDocumentService{
		Store:     docStore,
		Extractor: document.PDFExtractor{},
		Generator: geminiClient,
		Storage:   objectStorage,
	}

	authService := &auth.DefaultAuthService{
		Accounts:       accounts,
		GoogleAccounts: googleAccounts,
		Mailer:         mailer.NewSMTPMailer(),
		Verifier:       socialauth.GoogleVerifier{},
		BaseURL:        config.AppConfig.BaseURL,
		GoogleClientID: config.AppConfig.GoogleClientID,
	}

	askAIHandler := handlers.NewAskAIHandler(documentService)
	authHandler := handlers.NewAuthHandler(authService)

	routes.RegisterRoutes(router, askAIHandler, authHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

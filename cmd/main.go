package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/dagrd-medellin/emergency-pipeline/internal/ai"
	"github.com/dagrd-medellin/emergency-pipeline/internal/alerts"
	"github.com/dagrd-medellin/emergency-pipeline/internal/config"
	v1 "github.com/dagrd-medellin/emergency-pipeline/internal/handler/http/v1"
	"github.com/dagrd-medellin/emergency-pipeline/internal/repository"
	"github.com/dagrd-medellin/emergency-pipeline/internal/service"
	"github.com/dagrd-medellin/emergency-pipeline/internal/whatsapp"
	"github.com/dagrd-medellin/emergency-pipeline/pkg/logger"
	"github.com/dagrd-medellin/emergency-pipeline/pkg/postgres"
	redisclient "github.com/dagrd-medellin/emergency-pipeline/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/dagrd-medellin/emergency-pipeline/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title DAGRD Emergency Pipeline API
// @version 1.0
// @description Ingesta de reportes de emergencia por mensajes de voz de WhatsApp, distribución de alertas y motor de consultas RAG.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Carga de configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Inicialización del logger
	log := logger.New(cfg)

	// Contexto para el apagado ordenado
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ejecución de migraciones
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Conexión a PostgreSQL (con tipos pgvector registrados)
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Inicialización del cliente Redis
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Cliente del proveedor de IA; sin clave arranca en modo degradado
	aiClient := ai.NewClient(ai.Config{
		APIKey:             cfg.OpenAIAPIKey,
		BaseURL:            cfg.OpenAIBaseURL,
		TranscriptionModel: cfg.TranscriptionModel,
		ExtractionModel:    cfg.ExtractionModel,
		EmbeddingModel:     cfg.EmbeddingModel,
		CompletionModel:    cfg.CompletionModel,
		EmbeddingDimension: cfg.EmbeddingDimension,
		Timeout:            cfg.OpenAITimeout,
	})
	if aiClient.Offline() {
		log.Warn("OPENAI_API_KEY is not set, AI client running in offline mode")
	}

	// Cliente de la Graph API de WhatsApp
	waClient := whatsapp.NewClient(cfg.WhatsAppAccessToken, cfg.WhatsAppPhoneNumberID, cfg.GraphAPIBaseURL, cfg.AlertTimeout)
	if !waClient.Configured() {
		log.Warn("WhatsApp credentials are not set, outbound messages disabled")
	}

	// Inicialización de repositorios
	reportRepo := repository.NewReportRepository(dbpool, redisClient)
	interventionRepo := repository.NewInterventionRepository(dbpool)
	historyRepo := repository.NewHistoryRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)
	queryRepo := repository.NewQueryRepository(dbpool)

	// Inicialización del publicador de trabajos de alerta
	jobPublisher := alerts.NewRedisJobPublisher(redisClient)

	// Inicialización de servicios
	ingestionService := service.NewIngestionService(reportRepo, waClient, aiClient, aiClient, aiClient, jobPublisher, log)
	reportService := service.NewReportService(reportRepo, interventionRepo, historyRepo, log)
	notifier := whatsapp.NewNotifier(waClient, log)
	alertService := service.NewAlertService(reportRepo, alertRepo, notifier, log, cfg.AlertConcurrency)
	queryService := service.NewQueryService(reportRepo, queryRepo, aiClient, aiClient, log, cfg.RAGTopK, cfg.RAGMatchThreshold)

	// Inicialización y arranque del worker de alertas
	alertWorker := alerts.NewWorker(redisClient, log, alertService)
	alertWorker.Start(ctx)

	// Inicialización de hándlers
	handler := v1.NewHandler(ingestionService, reportService, alertService, queryService, log, cfg)

	// Configuración del router Gin
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Ruta del Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Arranque del servidor HTTP
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Arranque del servidor en una goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Apagado ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

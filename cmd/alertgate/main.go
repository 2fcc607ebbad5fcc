package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appAlert "github.com/libratrack/alertgate/pkg/app/alert"
	"github.com/libratrack/alertgate/pkg/config"
	"github.com/libratrack/alertgate/pkg/detector"
	handlers "github.com/libratrack/alertgate/pkg/handlers/http"
	"github.com/libratrack/alertgate/pkg/infra/breaker"
	"github.com/libratrack/alertgate/pkg/infra/cache"
	"github.com/libratrack/alertgate/pkg/infra/database"
	infraLogger "github.com/libratrack/alertgate/pkg/infra/logger"
	_ "github.com/libratrack/alertgate/pkg/infra/migrations"
	"github.com/libratrack/alertgate/pkg/infra/repository"
	"github.com/libratrack/alertgate/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger("alertgate.log")

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	// Database
	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	// Redis
	cacheClient, err := cache.NewClient(cache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	})
	if err != nil {
		logger.Fatalf("failed to initialize redis client: %v", err)
	}

	// Signature matcher: canonical table plus any configured extras.
	det, err := detector.NewDetectorFromSettings(logger, cfg.Detector.Settings)
	if err != nil {
		logger.Fatalf("failed to build detector: %v", err)
	}

	// repository
	alertRepository := repository.NewAlertRepository(db.DB)

	// application services
	storeBreaker := breaker.NewCircuitBreaker("alert-store", 30*time.Second, 5)
	recorder := appAlert.NewRecorder(logger, alertRepository, storeBreaker)
	statsFinder := appAlert.NewStatsFinder(logger, alertRepository, cacheClient)

	handlerTransport := handlers.HandlerTransport{
		CreateAlertHandler:     handlers.NewCreateAlertHandler(logger, recorder),
		DetectInjectionHandler: handlers.NewDetectInjectionHandler(logger, det, recorder),
		ListAlertsHandler:      handlers.NewListAlertsHandler(logger, alertRepository),
		DeleteAlertHandler:     handlers.NewDeleteAlertHandler(logger, alertRepository),
		GetStatsHandler:        handlers.NewGetStatsHandler(logger, statsFinder),
		HealthHandler:          handlers.NewHealthHandler(logger, db),
		IndexHandler:           handlers.NewIndexHandler(),
	}

	srv := server.NewApiServer(server.ApiServerDI{
		HandlerTransport: handlerTransport,
		Config:           cfg,
		Logger:           logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}

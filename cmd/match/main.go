package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/config"
	"github.com/workme/backend/internal/pkg/database"
	"github.com/workme/backend/internal/pkg/health"
	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/middleware"
	natspkg "github.com/workme/backend/internal/pkg/nats"
	nrpkg "github.com/workme/backend/internal/pkg/newrelic"
	"github.com/workme/backend/internal/pkg/server"
	"github.com/workme/backend/services/match/gateway"
	"github.com/workme/backend/services/match/handler"
	httpHandler "github.com/workme/backend/services/match/handler/http"
	natsHandler "github.com/workme/backend/services/match/handler/nats"
	"github.com/workme/backend/services/match/repository"
	"github.com/workme/backend/services/match/usecase"
)

func main() {
	appName := "match-service"
	configs := config.InitConfig(os.Getenv("CONFIG_PATH"))

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("environment", configs.App.Environment),
	)

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repository
	availabilityRepo := repository.NewAvailabilityRepo(redisClient)

	// Gateway
	matchGW := gateway.NewMatchGW(configs)

	// UseCase
	matchUC := usecase.NewMatchUC(configs, availabilityRepo, matchGW)

	// Handlers
	matchHTTPHandler := httpHandler.NewMatchHandler(matchUC)
	matchNatsHandler := natsHandler.NewNatsHandler(matchUC, natsClient)
	h := handler.NewHandler(matchHTTPHandler, matchNatsHandler, configs)

	if err := h.StartConsumers(); err != nil {
		logger.Fatal("Failed to start NATS consumers", logger.Err(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"redis": redisClient.Ping,
	})

	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}

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
	"github.com/workme/backend/services/users/gateway"
	"github.com/workme/backend/services/users/handler"
	httpHandler "github.com/workme/backend/services/users/handler/http"
	"github.com/workme/backend/services/users/repository"
	"github.com/workme/backend/services/users/usecase"
)

func main() {
	appName := "users-service"
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

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repository
	userRepo := repository.NewUserRepo(postgresClient.GetDB())

	// Gateway
	userGW := gateway.NewUserGW(natsClient)

	// UseCase
	userUC := usecase.NewUserUC(configs, userRepo, userGW)

	// Handlers
	authHandler := httpHandler.NewAuthHandler(userUC)
	profileHandler := httpHandler.NewProfileHandler(userUC)
	h := handler.NewHandler(authHandler, profileHandler, configs)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient.Ping,
	})

	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, configs.Server.Port, time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}

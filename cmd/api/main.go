package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	_ "github.com/jhoicas/pos-api/docs"
	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/pos-api/internal/interfaces/http"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title        POS API
// @version      1.0
// @description  Consulta de productos y registro de ventas de punto de venta.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	connector, err := postgres.NewConnector(cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de PostgreSQL")
	}

	// Cada request abre su propia conexión; si la base no responde ahora se avisa y se arranca igual.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.DB.ConnectTimeout)
	if err := connector.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Msg("PostgreSQL no responde al arrancar")
	}
	pingCancel()

	productUC := usecase.NewProductUseCase(connector)
	transactionUC := usecase.NewTransactionUseCase(connector)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.SwaggerEnabled {
		if _, err := os.Stat(swaggerFile); err != nil {
			log.Warn().Err(err).Msg("swagger deshabilitado")
		} else {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: swaggerFile,
				Path:     "docs",
				Title:    "POS API",
			}))
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		ProductUC:     productUC,
		TransactionUC: transactionUC,
		Logger:        log,
		CORS:          cfg.CORS,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

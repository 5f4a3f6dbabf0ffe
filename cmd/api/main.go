package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/RestoStock-api/internal/application/stockops"
	"github.com/jhoicas/RestoStock-api/internal/application/usecase"
	"github.com/jhoicas/RestoStock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/RestoStock-api/internal/interfaces/http"
	"github.com/jhoicas/RestoStock-api/internal/scheduler"
	"github.com/jhoicas/RestoStock-api/pkg/config"
	"github.com/jhoicas/RestoStock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	elementRepo := postgres.NewStockElementRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	elementUC := usecase.NewElementUseCase(elementRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	enqueueUC := stockops.NewEnqueueOperationUseCase(operationRepo, elementRepo, locationRepo)
	executeUC := stockops.NewExecuteOperationsUseCase(txRunner, operationRepo, log)
	janitorUC := stockops.NewJanitorUseCase(operationRepo, log)
	stockQueryUC := stockops.NewStockQueryUseCase(stockRepo, elementRepo, operationRepo)

	// Disparadores periódicos: pase del motor tras ráfagas de encolado y
	// barrido diario de operaciones terminales.
	sched := scheduler.NewScheduler(cfg.Ops, executeUC, janitorUC, log)
	sched.Start()
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "RestoStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	http.Router(app, http.RouterDeps{
		ElementUC:  elementUC,
		LocationUC: locationUC,
		Enqueue:    enqueueUC,
		Execute:    executeUC,
		Janitor:    janitorUC,
		StockQuery: stockQueryUC,
		JWTSecret:  cfg.JWT.Secret,
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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JoaoAlvarez/contas-api/internal/application/csvimport"
	"github.com/JoaoAlvarez/contas-api/internal/application/usecase"
	"github.com/JoaoAlvarez/contas-api/internal/infrastructure/postgres"
	httpRouter "github.com/JoaoAlvarez/contas-api/internal/interfaces/http"
	"github.com/JoaoAlvarez/contas-api/pkg/config"
	"github.com/JoaoAlvarez/contas-api/pkg/logger"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	contaRepo := postgres.NewContaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	contaUC := usecase.NewContaUseCase(contaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	importer := csvimport.NewImporter(contaRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI em /docs sobre o spec versionado em docs/swagger.json
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Contas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ContaUC:     contaUC,
		UsuarioUC:   usuarioUC,
		Importer:    importer,
		UsuarioRepo: usuarioRepo,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

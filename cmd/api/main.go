package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/projeto2025/vendas-api/internal/application/auth"
	"github.com/projeto2025/vendas-api/internal/application/catalog"
	"github.com/projeto2025/vendas-api/internal/application/customer"
	"github.com/projeto2025/vendas-api/internal/application/sales"
	"github.com/projeto2025/vendas-api/internal/application/usecase"
	infrapdf "github.com/projeto2025/vendas-api/internal/infrastructure/pdf"
	"github.com/projeto2025/vendas-api/internal/infrastructure/postgres"
	httpRouter "github.com/projeto2025/vendas-api/internal/interfaces/http"
	"github.com/projeto2025/vendas-api/pkg/config"
	"github.com/projeto2025/vendas-api/pkg/jwt"
	"github.com/projeto2025/vendas-api/pkg/logger"
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
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	categoriaRepo := postgres.NewCategoriaRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	itemVendaRepo := postgres.NewItemVendaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtCfg := jwt.Config{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}

	comprovanteGen := infrapdf.NewMarotoComprovanteGenerator()
	categoriaUC := catalog.NewCategoriaUseCase(categoriaRepo, produtoRepo)
	produtoUC := catalog.NewProdutoUseCase(produtoRepo, categoriaRepo)
	clienteUC := customer.NewClienteUseCase(clienteRepo, vendaRepo)
	vendaUC := sales.NewVendaUseCase(txRunner, vendaRepo, itemVendaRepo, produtoRepo, clienteRepo, comprovanteGen)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, jwtCfg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoriaUC: categoriaUC,
		ProdutoUC:   produtoUC,
		ClienteUC:   clienteUC,
		VendaUC:     vendaUC,
		UsuarioUC:   usuarioUC,
		AuthUC:      authUC,
		JWTConfig:   jwtCfg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, fechando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}

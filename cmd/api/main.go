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

	"github.com/nationaltraders/plumbing-crm/internal/application/auth"
	"github.com/nationaltraders/plumbing-crm/internal/application/billing"
	"github.com/nationaltraders/plumbing-crm/internal/application/catalog"
	"github.com/nationaltraders/plumbing-crm/internal/application/reports"
	infrapdf "github.com/nationaltraders/plumbing-crm/internal/infrastructure/pdf"
	"github.com/nationaltraders/plumbing-crm/internal/infrastructure/postgres"
	httpRouter "github.com/nationaltraders/plumbing-crm/internal/interfaces/http"
	"github.com/nationaltraders/plumbing-crm/pkg/config"
	"github.com/nationaltraders/plumbing-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	numberGen := billing.NewNumberGenerator()
	invoiceUC := billing.NewInvoiceUseCase(customerRepo, invoiceRepo, numberGen)
	customerUC := billing.NewCustomerUseCase(customerRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, pdfGenerator, cfg.Shop)

	catalogUC := catalog.NewUseCase(productRepo)
	reportsUC := reports.NewUseCase(invoiceRepo, customerRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "National Traders CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CustomerUC: customerUC,
		InvoiceUC:  invoiceUC,
		PDFUC:      pdfUC,
		CatalogUC:  catalogUC,
		ReportsUC:  reportsUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

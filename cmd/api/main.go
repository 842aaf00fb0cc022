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

	"github.com/jhoicas/Finanzas-api/internal/application/analytics"
	"github.com/jhoicas/Finanzas-api/internal/application/auth"
	"github.com/jhoicas/Finanzas-api/internal/application/billing"
	infraexport "github.com/jhoicas/Finanzas-api/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/Finanzas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Finanzas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Finanzas-api/internal/interfaces/http"
	"github.com/jhoicas/Finanzas-api/pkg/config"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	revenueRepo := postgres.NewRevenueRepository(pool)

	xmlExporter := infraexport.NewXMLInvoiceExporter()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, xmlExporter)
	pdfUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo)
	revenueUC := analytics.NewRevenueUseCase(revenueRepo)

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
		Title:    "Finanzas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		CustomerUC:  customerUC,
		DashboardUC: dashboardUC,
		RevenueUC:   revenueUC,
		JWTSecret:   cfg.JWT.Secret,
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

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

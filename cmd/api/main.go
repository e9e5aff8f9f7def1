package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appbilling "github.com/squarem/invoicing-api/internal/application/billing"
	infrapdf "github.com/squarem/invoicing-api/internal/infrastructure/pdf"
	"github.com/squarem/invoicing-api/internal/infrastructure/postgres"
	httpRouter "github.com/squarem/invoicing-api/internal/interfaces/http"
	"github.com/squarem/invoicing-api/pkg/config"
	"github.com/squarem/invoicing-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	infoRepo := postgres.NewPaymentInfoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := appbilling.NewCompanyUseCase(companyRepo)
	clientUC := appbilling.NewClientUseCase(clientRepo)
	invoiceUC := appbilling.NewInvoiceUseCase(txRunner, invoiceRepo, companyRepo, clientRepo, paymentRepo, infoRepo)
	paymentUC := appbilling.NewPaymentUseCase(txRunner, invoiceRepo, paymentRepo)
	infoUC := appbilling.NewPaymentInfoUseCase(invoiceRepo, infoRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := appbilling.NewPDFUseCase(invoiceRepo, companyRepo, clientRepo, paymentRepo, infoRepo, pdfGenerator)

	if cfg.Share.Secret == "" {
		log.Warn().Msg("SHARE_SECRET is empty, share links will fail to sign")
	}
	shareUC := appbilling.NewShareLinkUseCase(invoiceRepo, appbilling.ShareLinkConfig{
		Secret:  cfg.Share.Secret,
		Issuer:  cfg.Share.Issuer,
		BaseURL: cfg.Share.BaseURL,
		TTL:     time.Duration(cfg.Share.TTLDays) * 24 * time.Hour,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		ClientUC:      clientUC,
		InvoiceUC:     invoiceUC,
		PaymentUC:     paymentUC,
		PaymentInfoUC: infoUC,
		PDFUC:         pdfUC,
		ShareLinkUC:   shareUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jcmexdev/storefront/internal/checkout/journal"
	journalsqlite "github.com/jcmexdev/storefront/internal/checkout/journal/sqlite"
	"github.com/jcmexdev/storefront/internal/httpx"
	"github.com/jcmexdev/storefront/internal/inventory"
	"github.com/jcmexdev/storefront/internal/ordering"
	"github.com/jcmexdev/storefront/internal/payment"
	"github.com/jcmexdev/storefront/internal/pkg/cache"
	"github.com/jcmexdev/storefront/internal/pkg/telemetry"
)

type config struct {
	Addr         string  `env:"STOREFRONT_ADDR" envDefault:":8080"`
	JournalPath  string  `env:"STOREFRONT_JOURNAL_PATH"`
	RedisAddr    string  `env:"STOREFRONT_REDIS_ADDR"`
	PaymentLimit float64 `env:"STOREFRONT_PAYMENT_LIMIT" envDefault:"0"`

	CustomerName    string `env:"STOREFRONT_CUSTOMER_NAME" envDefault:"John Doe"`
	CustomerID      int    `env:"STOREFRONT_CUSTOMER_ID" envDefault:"12345"`
	CustomerContact string `env:"STOREFRONT_CUSTOMER_CONTACT" envDefault:"9880854465"`
	CustomerAddress string `env:"STOREFRONT_CUSTOMER_ADDRESS" envDefault:"123 Main St"`
	CustomerEmail   string `env:"STOREFRONT_CUSTOMER_EMAIL" envDefault:"john.doe@gmail.com"`
}

func main() {
	telemetry.InitLogger("storefront")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse configuration", "error", err)
		os.Exit(1)
	}

	var repo journal.Repository
	if cfg.JournalPath != "" {
		r, err := journalsqlite.Open(cfg.JournalPath)
		if err != nil {
			slog.Error("failed to open checkout journal", "path", cfg.JournalPath, "error", err)
			os.Exit(1)
		}
		defer r.Close()
		repo = r
	}

	var c cache.Cache
	if cfg.RedisAddr != "" {
		c = cache.NewRedis(cfg.RedisAddr, "storefront")
	}

	customer := ordering.NewCustomer(
		cfg.CustomerName, cfg.CustomerID,
		cfg.CustomerContact, cfg.CustomerAddress, cfg.CustomerEmail,
	)
	processor := payment.NewProcessor(cfg.PaymentLimit)
	inv := inventory.NewService()

	handler := httpx.NewHandler(customer, inv, processor, repo, c)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: httpx.NewRouter(handler),
	}

	go func() {
		slog.Info("storefront http running", "addr", cfg.Addr, "customer", customer.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http shutdown error", "error", err)
	}
}

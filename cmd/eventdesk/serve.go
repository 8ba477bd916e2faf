package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"eventdesk/internal/adapters/httpapi"
	"eventdesk/internal/application"
	"eventdesk/internal/infrastructure/api"
	"eventdesk/internal/infrastructure/cache"
	"eventdesk/internal/infrastructure/database"
	"eventdesk/internal/infrastructure/i18n"
	"eventdesk/internal/infrastructure/metrics"
	"eventdesk/pkg/tz"
)

func serveCmd() *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP backend-for-frontend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply ledger migrations on start")
	return cmd
}

// serve wires output adapters -> application services -> HTTP handler and
// runs until SIGINT or SIGTERM.
func serve(parent context.Context, skipMigrations bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !skipMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return err
		}
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns:    int32(cfg.DBMaxConns),
		PingTimeout: cfg.DBPingTimeout,
	})
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	recorder := metrics.Recorder{}
	backend := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, recorder)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	details := application.NewParticipantDetailsService(backend, backend, cache.NewDetailsCache(rdb), recorder, cfg.DetailsCacheTTL)
	uc := httpapi.UseCases{
		Details:      details,
		Vouchers:     application.NewVoucherService(backend, database.NewVoucherLedgerRepository(pool), details, translator),
		Allocations:  application.NewAllocationService(backend, translator),
		Registration: application.NewRegistrationService(backend, translator),
		Badges:       application.NewBadgeTemplateService(backend),
		Certificates: application.NewCertificateService(backend, backend),
		Travel:       application.NewTravelRequirementService(backend),
		Vendors:      application.NewVendorHotelService(backend),
		Chat:         application.NewChatService(backend, recorder),
	}

	handler := httpapi.NewHandler(uc, translator, cfg.DefaultLocale, tz.Load(cfg.Timezone))
	server := httpapi.NewServer(handler, map[string]httpapi.HealthCheck{
		"redis":    func(ctx context.Context) error { return cache.HealthCheck(ctx, rdb) },
		"postgres": pool.Ping,
	})

	slog.Info("eventdesk starting", "addr", cfg.ListenAddr, "backend", cfg.APIBaseURL)
	return server.ListenAndServe(ctx, cfg.ListenAddr)
}

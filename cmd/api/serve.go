package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/xavierca1/ligue-vendas/internal/infra/database"
	"github.com/xavierca1/ligue-vendas/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-vendas/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-vendas/internal/infra/http/router"
	"github.com/xavierca1/ligue-vendas/internal/infra/integration/salesapi"
	"github.com/xavierca1/ligue-vendas/internal/infra/queue"
	"github.com/xavierca1/ligue-vendas/internal/infra/worker"
	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe a API HTTP (e o sync periódico de leads, se habilitado)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(parent), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Infra
	db, err := database.NewDBConnection(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.URL)
	if err != nil {
		return err
	}
	defer rabbitMQ.Close()

	// 2. Repositórios e adapters
	snapshotRepo := database.NewLeadSnapshotRepository(db)
	profileRepo := database.NewProfileRepository(db)
	producer := queue.NewProducer(rabbitMQ.Ch)
	salesAPI := salesapi.NewClient(salesapi.ClientOpts{
		BaseURL:      cfg.Upstream.BaseURL,
		Timeout:      cfg.Upstream.Timeout,
		ServiceToken: cfg.Upstream.ServiceToken,
	})
	metrics := middleware.Recorder{}

	// 3. UseCases
	sectionsUC := usecase.NewGetSectionsUseCase(salesAPI, metrics)
	labelsUC := usecase.NewGetProductLabelsUseCase(salesAPI, metrics)
	filterUC := usecase.NewFilterProductsUseCase(salesAPI, metrics)
	listLeadsUC := usecase.NewListLeadsUseCase(salesAPI, metrics)
	syncLeadsUC := usecase.NewSyncLeadsUseCase(salesAPI, snapshotRepo, producer, metrics)

	// 4. Workers
	if cfg.Sync.Enabled {
		syncWorker := worker.NewLeadSyncWorker(syncLeadsUC, cfg.Sync.UserIDs, cfg.Upstream.ServiceToken, cfg.Sync.Interval)
		go syncWorker.Start(ctx)
	}

	var limiter *handlers.RateLimiter
	if cfg.Server.LeadRateLimit > 0 {
		limiter = handlers.NewRateLimiter(cfg.Server.LeadRateLimit, time.Minute)
		go cleanupLoop(ctx, limiter)
	}

	// 5. Router
	h := router.Handlers{
		Health:  handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.Upstream.BaseURL),
		Catalog: handlers.NewCatalogHandler(sectionsUC, labelsUC, filterUC),
		Lead:    handlers.NewLeadHandler(listLeadsUC, syncLeadsUC),
		Profile: handlers.NewProfileHandler(profileRepo),
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.New(h, router.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			LeadLimiter:    limiter,
			TrustProxy:     cfg.Server.TrustProxy,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("🔥 ligue-vendas API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func cleanupLoop(ctx context.Context, limiter *handlers.RateLimiter) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Cleanup()
		}
	}
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

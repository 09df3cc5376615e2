package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

type LeadSyncer interface {
	Execute(ctx context.Context, token, userID string) (*usecase.SyncLeadsOutput, error)
}

// LeadSyncWorker sincroniza periodicamente os leads dos agentes
// configurados usando o token de serviço.
type LeadSyncWorker struct {
	syncer       LeadSyncer
	userIDs      []string
	serviceToken string
	tickInterval time.Duration
}

func NewLeadSyncWorker(syncer LeadSyncer, userIDs []string, serviceToken string, interval time.Duration) *LeadSyncWorker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &LeadSyncWorker{
		syncer:       syncer,
		userIDs:      userIDs,
		serviceToken: serviceToken,
		tickInterval: interval,
	}
}

func (w *LeadSyncWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.tickInterval).Int("agents", len(w.userIDs)).Msg("lead sync worker started")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("lead sync worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce sincroniza todos os agentes; erro de um não interrompe os outros.
func (w *LeadSyncWorker) RunOnce(ctx context.Context) {
	for _, userID := range w.userIDs {
		if ctx.Err() != nil {
			return
		}
		if _, err := w.syncer.Execute(ctx, w.serviceToken, userID); err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("lead sync failed")
		}
	}
}

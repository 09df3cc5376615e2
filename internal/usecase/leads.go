package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-vendas/internal/entity"
	"github.com/xavierca1/ligue-vendas/internal/infra/queue"
)

type ListLeadsUseCase struct {
	API     SalesAPI
	Metrics MetricsRecorder
}

func NewListLeadsUseCase(api SalesAPI, metrics MetricsRecorder) *ListLeadsUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &ListLeadsUseCase{API: api, Metrics: metrics}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, token string, input ListLeadsInput) (*ListLeadsOutput, error) {
	if errs := ValidateListLeadsInput(input); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	raws, err := uc.API.ListLeads(ctx, token, input.UserID)
	if err != nil {
		uc.Metrics.RecordUpstreamError(salesAPIService)
		return nil, &TechnicalError{
			Code:    "UPSTREAM_ERROR",
			Message: "falha ao buscar leads",
			Err:     err,
		}
	}

	leads := MapLeads(raws)
	summary := Summarize(leads)

	if input.Status != "" {
		want, _ := ParseLeadStatus(input.Status)
		filtered := make([]entity.Lead, 0, len(leads))
		for _, l := range leads {
			if l.Status == want {
				filtered = append(filtered, l)
			}
		}
		leads = filtered
	}

	return &ListLeadsOutput{Leads: leads, Summary: summary}, nil
}

// Summarize conta todos os leads, antes de qualquer filtro.
func Summarize(leads []entity.Lead) LeadSummary {
	s := LeadSummary{Total: len(leads)}
	for _, l := range leads {
		switch l.Status {
		case entity.LeadStatusInterested:
			s.Interested++
		case entity.LeadStatusFollowUp:
			s.FollowUp++
		case entity.LeadStatusConverted:
			s.Converted++
		case entity.LeadStatusClosed:
			s.Closed++
		}
	}
	return s
}

// SyncLeadsUseCase compara o status atual de cada lead com o último
// registrado e publica um evento por mudança. Lead visto pela primeira
// vez só é registrado.
type SyncLeadsUseCase struct {
	API       SalesAPI
	Snapshots LeadSnapshotRepository
	Queue     QueueProducerInterface
	Metrics   MetricsRecorder
	now       func() time.Time
}

func NewSyncLeadsUseCase(
	api SalesAPI,
	snapshots LeadSnapshotRepository,
	producer QueueProducerInterface,
	metrics MetricsRecorder,
) *SyncLeadsUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &SyncLeadsUseCase{
		API:       api,
		Snapshots: snapshots,
		Queue:     producer,
		Metrics:   metrics,
		now:       time.Now,
	}
}

func (uc *SyncLeadsUseCase) Execute(ctx context.Context, token, userID string) (*SyncLeadsOutput, error) {
	if errs := validateID("user_id", userID); len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	raws, err := uc.API.ListLeads(ctx, token, userID)
	if err != nil {
		uc.Metrics.RecordUpstreamError(salesAPIService)
		return nil, &TechnicalError{Code: "UPSTREAM_ERROR", Message: "falha ao buscar leads", Err: err}
	}

	// ids repetidos no backend contam uma vez só: o primeiro vence
	all := MapLeads(raws)
	leads := make([]entity.Lead, 0, len(all))
	ids := make([]string, 0, len(all))
	unique := make(map[string]struct{}, len(all))
	for _, l := range all {
		if l.ID == "" {
			continue
		}
		if _, dup := unique[l.ID]; dup {
			continue
		}
		unique[l.ID] = struct{}{}
		leads = append(leads, l)
		ids = append(ids, l.ID)
	}

	previous, err := uc.Snapshots.FindByLeadIDs(ctx, userID, ids)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "falha ao ler snapshots", Err: err}
	}

	out := &SyncLeadsOutput{}
	for _, lead := range leads {
		out.Checked++

		prev, seen := previous[lead.ID]
		if seen && prev.Status == lead.Status {
			continue
		}

		if err := uc.apply(ctx, userID, lead, prev, seen); err != nil {
			out.Failed++
			log.Error().Err(err).Str("user_id", userID).Str("lead_id", lead.ID).Msg("lead sync failed")
			continue
		}

		if seen {
			out.Changed++
			uc.Metrics.RecordLeadStatusChange(string(lead.Status))
		} else {
			out.Recorded++
		}
	}

	log.Info().
		Str("user_id", userID).
		Int("checked", out.Checked).
		Int("recorded", out.Recorded).
		Int("changed", out.Changed).
		Int("failed", out.Failed).
		Msg("leads synced")

	return out, nil
}

func (uc *SyncLeadsUseCase) apply(ctx context.Context, userID string, lead entity.Lead, prev entity.LeadSnapshot, seen bool) error {
	snapshot := entity.LeadSnapshot{
		UserID:         userID,
		LeadID:         lead.ID,
		Status:         lead.Status,
		OriginalStatus: lead.OriginalStatus,
		UpdatedAt:      uc.now(),
	}

	txn := NewTransaction()
	txn.AddOperation("save_snapshot",
		func(ctx context.Context) error {
			return uc.Snapshots.Upsert(ctx, snapshot)
		},
		func(ctx context.Context) error {
			if seen {
				return uc.Snapshots.Upsert(ctx, prev)
			}
			return uc.Snapshots.Delete(ctx, userID, lead.ID)
		},
	)

	if seen {
		payload := queue.LeadStatusChangedPayload{
			EventID:        uuid.New().String(),
			UserID:         userID,
			LeadID:         lead.ID,
			LeadName:       lead.Name,
			CategoryName:   lead.CategoryName,
			PreviousStatus: string(prev.Status),
			Status:         string(lead.Status),
			OriginalStatus: lead.OriginalStatus,
			OccurredAt:     snapshot.UpdatedAt,
		}
		txn.AddOperation("publish_event", func(ctx context.Context) error {
			return uc.Queue.PublishLeadStatusChanged(ctx, payload)
		}, nil)
	}

	return txn.Execute(ctx)
}

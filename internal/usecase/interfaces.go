package usecase

import (
	"context"

	"github.com/xavierca1/ligue-vendas/internal/entity"
	"github.com/xavierca1/ligue-vendas/internal/infra/queue"
)

// SalesAPI é o backend remoto de vendas. O token é o bearer do agente;
// vazio usa o token de serviço do cliente.
type SalesAPI interface {
	ListProducts(ctx context.Context, token string) ([]entity.Product, error)
	ListCategories(ctx context.Context, token string) ([]entity.Category, error)
	ListLeads(ctx context.Context, token, userID string) ([]entity.RawLead, error)
}

type LeadSnapshotRepository interface {
	entity.LeadSnapshotRepositoryInterface
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entity.Profile, error)
}

type QueueProducerInterface interface {
	PublishLeadStatusChanged(ctx context.Context, payload queue.LeadStatusChangedPayload) error
}

type EmailService interface {
	SendConversion(to, leadName, categoryName string) error
}

// MetricsRecorder desacopla os casos de uso do prometheus.
type MetricsRecorder interface {
	RecordSectionsDerived(count int)
	RecordLeadStatusChange(status string)
	RecordUpstreamError(service string)
}

type noopMetrics struct{}

func (noopMetrics) RecordSectionsDerived(int)     {}
func (noopMetrics) RecordLeadStatusChange(string) {}
func (noopMetrics) RecordUpstreamError(string)    {}

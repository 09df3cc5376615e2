package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/xavierca1/ligue-vendas/internal/entity"
	"github.com/xavierca1/ligue-vendas/internal/infra/queue"
)

// NotifyConversionUseCase avisa o agente por email quando um lead dele
// converte. Outros status são ignorados.
type NotifyConversionUseCase struct {
	Profiles     ProfileRepository
	EmailService EmailService
}

func NewNotifyConversionUseCase(profiles ProfileRepository, emailService EmailService) *NotifyConversionUseCase {
	return &NotifyConversionUseCase{Profiles: profiles, EmailService: emailService}
}

func (uc *NotifyConversionUseCase) Execute(ctx context.Context, payload queue.LeadStatusChangedPayload) error {
	if payload.Status != string(entity.LeadStatusConverted) {
		return nil
	}

	profile, err := uc.Profiles.FindByUserID(ctx, payload.UserID)
	if errors.Is(err, entity.ErrProfileNotFound) {
		log.Warn().Str("user_id", payload.UserID).Msg("no profile for agent, skipping conversion email")
		return nil
	}
	if err != nil {
		return fmt.Errorf("falha ao buscar perfil: %w", err)
	}
	if profile.Email == "" {
		log.Warn().Str("user_id", payload.UserID).Msg("agent has no email, skipping conversion email")
		return nil
	}

	if err := uc.EmailService.SendConversion(profile.Email, payload.LeadName, payload.CategoryName); err != nil {
		return fmt.Errorf("falha ao enviar email de conversão: %w", err)
	}

	log.Info().Str("user_id", payload.UserID).Str("lead_id", payload.LeadID).Msg("conversion email sent")
	return nil
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-vendas/internal/entity"
	"github.com/xavierca1/ligue-vendas/internal/infra/queue"
	"github.com/xavierca1/ligue-vendas/internal/usecase"
)

func TestNotifyConversionSendsEmail(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("FindByUserID", mock.Anything, "agent-1").Return(&entity.Profile{UserID: "agent-1", Email: "agente@example.com"}, nil)
	email := new(MockEmailService)
	email.On("SendConversion", "agente@example.com", "Ana", "Life Insurance").Return(nil)

	uc := usecase.NewNotifyConversionUseCase(profiles, email)
	err := uc.Execute(context.Background(), queue.LeadStatusChangedPayload{
		UserID: "agent-1", LeadID: "l1", LeadName: "Ana", CategoryName: "Life Insurance", Status: "Converted",
	})

	assert.NoError(t, err)
	email.AssertExpectations(t)
}

func TestNotifyConversionIgnoresOtherStatuses(t *testing.T) {
	profiles := new(MockProfileRepository)
	email := new(MockEmailService)

	uc := usecase.NewNotifyConversionUseCase(profiles, email)
	err := uc.Execute(context.Background(), queue.LeadStatusChangedPayload{UserID: "agent-1", LeadID: "l1", Status: "Closed"})

	assert.NoError(t, err)
	profiles.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	email.AssertNotCalled(t, "SendConversion", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyConversionWithoutProfile(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("FindByUserID", mock.Anything, "agent-2").Return(nil, entity.ErrProfileNotFound)
	email := new(MockEmailService)

	uc := usecase.NewNotifyConversionUseCase(profiles, email)
	err := uc.Execute(context.Background(), queue.LeadStatusChangedPayload{UserID: "agent-2", LeadID: "l1", Status: "Converted"})

	assert.NoError(t, err)
	email.AssertNotCalled(t, "SendConversion", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyConversionSMTPError(t *testing.T) {
	profiles := new(MockProfileRepository)
	profiles.On("FindByUserID", mock.Anything, "agent-1").Return(&entity.Profile{UserID: "agent-1", Email: "a@b.com"}, nil)
	email := new(MockEmailService)
	email.On("SendConversion", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp 554"))

	uc := usecase.NewNotifyConversionUseCase(profiles, email)
	err := uc.Execute(context.Background(), queue.LeadStatusChangedPayload{UserID: "agent-1", LeadID: "l1", Status: "Converted"})

	assert.ErrorContains(t, err, "smtp 554")
}

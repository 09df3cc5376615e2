package entity

import (
	"context"
	"errors"
	"time"
)

var (
	ErrProfileNotFound    = errors.New("perfil não encontrado")
	ErrEmailAlreadyExists = errors.New("email já cadastrado para outro agente")
)

// Profile guarda o estado do agente que antes vivia no contexto do app:
// ImageVersion sobe a cada troca de foto para invalidar o cache das telas.
type Profile struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email,omitempty"`
	ImageVersion int       `json:"image_version"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProfileRepositoryInterface interface {
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
	UpdateEmail(ctx context.Context, userID, email string) (*Profile, error)
	BumpImageVersion(ctx context.Context, userID string) (int, error)
}

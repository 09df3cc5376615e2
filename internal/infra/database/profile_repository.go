package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/xavierca1/ligue-vendas/internal/entity"
)

const uniqueViolation = "23505"

type ProfileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*entity.Profile, error) {
	query := `SELECT user_id, COALESCE(email, ''), image_version, updated_at FROM profiles WHERE user_id = $1`

	var p entity.Profile
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.Email, &p.ImageVersion, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perfil: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepository) UpdateEmail(ctx context.Context, userID, email string) (*entity.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, email, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET email = EXCLUDED.email, updated_at = NOW()
		RETURNING user_id, COALESCE(email, ''), image_version, updated_at
	`

	var p entity.Profile
	err := r.DB.QueryRowContext(ctx, query, userID, email).Scan(&p.UserID, &p.Email, &p.ImageVersion, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, entity.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("erro ao atualizar email: %w", err)
	}
	return &p, nil
}

// BumpImageVersion incrementa o contador de foto do agente, criando o
// perfil se preciso, e devolve a nova versão.
func (r *ProfileRepository) BumpImageVersion(ctx context.Context, userID string) (int, error) {
	query := `
		INSERT INTO profiles (user_id, image_version, updated_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET image_version = profiles.image_version + 1, updated_at = NOW()
		RETURNING image_version
	`

	var version int
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&version); err != nil {
		return 0, fmt.Errorf("erro ao atualizar versão da foto: %w", err)
	}
	return version, nil
}

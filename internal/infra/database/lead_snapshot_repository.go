package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/ligue-vendas/internal/entity"
)

type LeadSnapshotRepository struct {
	DB *sql.DB
}

func NewLeadSnapshotRepository(db *sql.DB) *LeadSnapshotRepository {
	return &LeadSnapshotRepository{DB: db}
}

func (r *LeadSnapshotRepository) FindByLeadIDs(ctx context.Context, userID string, leadIDs []string) (map[string]entity.LeadSnapshot, error) {
	snapshots := make(map[string]entity.LeadSnapshot, len(leadIDs))
	if len(leadIDs) == 0 {
		return snapshots, nil
	}

	query := `
		SELECT user_id, lead_id, status, original_status, updated_at
		FROM lead_snapshots
		WHERE user_id = $1 AND lead_id = ANY($2)
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, pq.Array(leadIDs))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s entity.LeadSnapshot
		if err := rows.Scan(&s.UserID, &s.LeadID, &s.Status, &s.OriginalStatus, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots[s.LeadID] = s
	}

	return snapshots, rows.Err()
}

func (r *LeadSnapshotRepository) Upsert(ctx context.Context, s entity.LeadSnapshot) error {
	query := `
		INSERT INTO lead_snapshots (user_id, lead_id, status, original_status, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, lead_id)
		DO UPDATE SET
			status = EXCLUDED.status,
			original_status = EXCLUDED.original_status,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query, s.UserID, s.LeadID, string(s.Status), s.OriginalStatus, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar snapshot: %w", err)
	}
	return nil
}

func (r *LeadSnapshotRepository) Delete(ctx context.Context, userID, leadID string) error {
	query := `DELETE FROM lead_snapshots WHERE user_id = $1 AND lead_id = $2`
	if _, err := r.DB.ExecContext(ctx, query, userID, leadID); err != nil {
		return fmt.Errorf("erro ao remover snapshot: %w", err)
	}
	return nil
}

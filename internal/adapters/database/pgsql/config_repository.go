package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
)

// configRowID pins the singleton row; every save upserts the same key.
const configRowID = 1

// PgxConfigRepository stores the system configuration as a single JSONB row.
// The record is always read and replaced as a whole, so a document column
// beats a table per nested collection.
type PgxConfigRepository struct {
	pool *pgxpool.Pool
}

// NewPgxConfigRepository creates a new repository for the system config.
func NewPgxConfigRepository(pool *pgxpool.Pool) portsrepo.ConfigRepositoryFacade {
	return &PgxConfigRepository{pool: pool}
}

var _ portsrepo.ConfigRepositoryFacade = (*PgxConfigRepository)(nil)

func (r *PgxConfigRepository) FindConfig(ctx context.Context) (*domain.SystemConfig, error) {
	query := `SELECT document FROM system_config WHERE id = $1;`
	var document []byte
	err := r.pool.QueryRow(ctx, query, configRowID).Scan(&document)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find system config: %w", err)
	}

	var cfg domain.SystemConfig
	if err := json.Unmarshal(document, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode system config document: %w", err)
	}
	return &cfg, nil
}

func (r *PgxConfigRepository) SaveConfig(ctx context.Context, cfg domain.SystemConfig) error {
	document, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode system config document: %w", err)
	}

	query := `
		INSERT INTO system_config (id, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			document = EXCLUDED.document,
			updated_at = EXCLUDED.updated_at;
	`
	_, err = r.pool.Exec(ctx, query, configRowID, document, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save system config: %w", err)
	}
	return nil
}

package infra_postgres_catalog

import (
	"context"
	"fmt"

	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Load(ctx context.Context) (model.Catalog, error) {
	query := `
		SELECT field, label, position
		FROM catalog_options
		ORDER BY field, position
	`

	var rows []OptionDB
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return model.Catalog{}, fmt.Errorf("failed to query catalog options: %w", err)
	}

	return ToDomain(rows), nil
}

// SeedIfEmpty fills an empty table with c. It reports whether rows were written.
func (r *Repository) SeedIfEmpty(ctx context.Context, c model.Catalog) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM catalog_options`); err != nil {
		return false, fmt.Errorf("failed to count catalog options: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO catalog_options (field, label, position)
		VALUES (:field, :label, :position)
		ON CONFLICT (field, label) DO NOTHING
	`
	for _, row := range FromDomain(c) {
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return false, fmt.Errorf("failed to seed catalog option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit catalog seed: %w", err)
	}
	return true, nil
}

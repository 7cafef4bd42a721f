package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phrazzld/person-api/internal/store"
)

// PersonRegistry implements store.PersonRegistry over the known_persons table.
type PersonRegistry struct {
	db store.DBTX
}

var _ store.PersonRegistry = (*PersonRegistry)(nil)

// NewPersonRegistry creates a registry using db, which the caller owns.
func NewPersonRegistry(db store.DBTX) *PersonRegistry {
	return &PersonRegistry{db: db}
}

// WithTx returns a registry whose queries run inside tx.
func (r *PersonRegistry) WithTx(tx *sql.Tx) *PersonRegistry {
	return &PersonRegistry{db: tx}
}

// Exists implements store.PersonRegistry.
func (r *PersonRegistry) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM known_persons WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up person %d: %w", id, MapError(err))
	}
	return exists, nil
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Replace makes ids the complete set of known persons, removing any id not
// listed. On a connection pool the change is applied in one transaction.
func (r *PersonRegistry) Replace(ctx context.Context, ids ...int) error {
	beginner, ok := r.db.(txBeginner)
	if !ok {
		return r.replace(ctx, ids)
	}

	tx, err := beginner.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin registry transaction: %w", MapError(err))
	}
	if err := r.WithTx(tx).replace(ctx, ids); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registry transaction: %w", MapError(err))
	}
	return nil
}

func (r *PersonRegistry) replace(ctx context.Context, ids []int) error {
	keep := make([]int64, len(ids))
	for i, id := range ids {
		keep[i] = int64(id)
	}

	_, err := r.db.ExecContext(ctx, `DELETE FROM known_persons WHERE id <> ALL($1::bigint[])`, keep)
	if err != nil {
		return fmt.Errorf("failed to prune known persons: %w", MapError(err))
	}
	return r.Add(ctx, ids...)
}

// Add registers ids, ignoring ones already present.
func (r *PersonRegistry) Add(ctx context.Context, ids ...int) error {
	for _, id := range ids {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO known_persons (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, id)
		if err != nil {
			return fmt.Errorf("failed to register person %d: %w", id, MapError(err))
		}
	}
	return nil
}

//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/person-api/internal/platform/postgres"
	"github.com/phrazzld/person-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertKnown(t *testing.T, registry *postgres.PersonRegistry, want map[int]bool) {
	t.Helper()
	for id, known := range want {
		ok, err := registry.Exists(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, known, ok, "id %d", id)
	}
}

func TestPersonRegistryIntegration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	t.Run("replace keeps exactly the configured ids", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			registry := postgres.NewPersonRegistry(tx)

			require.NoError(t, registry.Replace(ctx, 1, 2, 3, 4, 5))
			assertKnown(t, registry, map[int]bool{3: true, 10: false})

			require.NoError(t, registry.Replace(ctx, 10))
			assertKnown(t, registry, map[int]bool{3: false, 1: false, 10: true})
		})
	})

	t.Run("replace on the pool commits", func(t *testing.T) {
		registry := postgres.NewPersonRegistry(db)
		t.Cleanup(func() { _, _ = db.ExecContext(ctx, `DELETE FROM known_persons`) })

		require.NoError(t, registry.Replace(ctx, 7, 8))
		assertKnown(t, registry, map[int]bool{7: true, 8: true, 1: false})
	})

	t.Run("failed replace leaves previous set", func(t *testing.T) {
		registry := postgres.NewPersonRegistry(db)
		t.Cleanup(func() { _, _ = db.ExecContext(ctx, `DELETE FROM known_persons`) })

		require.NoError(t, registry.Replace(ctx, 4))
		err := registry.Replace(ctx, 9, -1)
		assert.ErrorIs(t, err, postgres.ErrInvalidID)
		assertKnown(t, registry, map[int]bool{4: true, 9: false})
	})

	t.Run("add is idempotent", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			registry := postgres.NewPersonRegistry(db).WithTx(tx)

			require.NoError(t, registry.Add(ctx, 21, 21))
			assertKnown(t, registry, map[int]bool{21: true})
		})
	})

	t.Run("non-positive id rejected", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			err := postgres.NewPersonRegistry(tx).Add(ctx, -1)
			assert.ErrorIs(t, err, postgres.ErrInvalidID)
		})
	})
}

package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	db, err := Open(DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openMemory(t)

	require.NoError(t, db.RunMigrations(ctx))
	require.NoError(t, db.RunMigrations(ctx))

	var applied int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&applied))
	files, err := getMigrationFiles()
	require.NoError(t, err)
	assert.Equal(t, len(files), applied)

	_, err = db.ExecContext(ctx,
		db.Rebind("INSERT INTO galaxies (name, galaxy_type, seed) VALUES ($1, $2, $3)"),
		"Andromeda", "Spiral", int64(-1))
	assert.NoError(t, err)
}

func TestRebind(t *testing.T) {
	query := "SELECT * FROM galaxies WHERE name = $1 AND seed = $2"

	sqlite := &DB{Driver: DriverSQLite}
	assert.Equal(t, "SELECT * FROM galaxies WHERE name = ? AND seed = ?", sqlite.Rebind(query))

	postgres := &DB{Driver: DriverPostgres}
	assert.Equal(t, query, postgres.Rebind(query))
}

func TestMigrationFilesAreSorted(t *testing.T) {
	files, err := getMigrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.IsNonDecreasing(t, files)
}

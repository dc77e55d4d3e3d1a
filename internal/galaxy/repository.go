package galaxy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"starseed-server/internal/celestial"
	"starseed-server/internal/shared/database"
	apperrors "starseed-server/internal/shared/errors"
)

// Repository is a Catalog backed by the galaxies table.
type Repository struct {
	db     *database.DB
	logger *slog.Logger
}

func NewRepository(db *database.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing galaxy repository", "driver", db.Driver)
	return &Repository{db: db, logger: logger}
}

func (r *Repository) Backend() string { return r.db.Driver }

// Seeds are stored bit-for-bit in a signed BIGINT column.
func (r *Repository) Register(ctx context.Context, g celestial.Galaxy) error {
	logger := r.logger.With(
		"component", "galaxy_repository",
		"operation", "register_galaxy",
		"name", g.Name,
	)
	logger.Debug("Registering galaxy")

	query := r.db.Rebind(`
		INSERT INTO galaxies (name, galaxy_type, seed)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING`)

	result, err := r.db.ExecContext(ctx, query, g.Name, string(g.GalaxyType), int64(g.Seed))
	if err != nil {
		logger.Error("Failed to register galaxy", "error", err)
		return apperrors.WrapInternal("failed to register galaxy", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.WrapInternal("failed to read affected rows", err)
	}
	if affected == 0 {
		return apperrors.Conflictf("galaxy %q already exists", g.Name)
	}

	logger.Info("Galaxy registered successfully")
	return nil
}

func (r *Repository) Get(ctx context.Context, name string) (*celestial.Galaxy, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "get_galaxy", "name", name)
	logger.Debug("Getting galaxy by name")

	query := r.db.Rebind(`
		SELECT name, galaxy_type, seed
		FROM galaxies
		WHERE name = $1`)

	g, err := scanGalaxy(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFoundf("galaxy %q not found", name)
		}
		logger.Error("Database error getting galaxy", "error", err)
		return nil, apperrors.WrapInternal("database error", err)
	}

	return g, nil
}

func (r *Repository) List(ctx context.Context) ([]celestial.Galaxy, error) {
	logger := r.logger.With("component", "galaxy_repository", "operation", "list_galaxies")

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, galaxy_type, seed
		FROM galaxies
		ORDER BY name`)
	if err != nil {
		logger.Error("Failed to list galaxies", "error", err)
		return nil, apperrors.WrapInternal("failed to list galaxies", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("Failed to close rows", "error", err)
		}
	}()

	galaxies := []celestial.Galaxy{}
	for rows.Next() {
		g, err := scanGalaxy(rows)
		if err != nil {
			return nil, apperrors.WrapInternal("failed to scan galaxy", err)
		}
		galaxies = append(galaxies, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.WrapInternal("error iterating galaxies", err)
	}

	logger.Debug("Galaxies listed", "count", len(galaxies))
	return galaxies, nil
}

// Seed registers g unless a galaxy with the same name exists.
func (r *Repository) Seed(ctx context.Context, g celestial.Galaxy) error {
	err := r.Register(ctx, g)
	if apperrors.GetType(err) == apperrors.ErrorTypeConflict {
		return nil
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGalaxy(row rowScanner) (*celestial.Galaxy, error) {
	var (
		name       string
		galaxyType string
		seed       int64
	)
	if err := row.Scan(&name, &galaxyType, &seed); err != nil {
		return nil, err
	}

	t := celestial.GalaxyType(galaxyType)
	if !t.Valid() {
		return nil, fmt.Errorf("stored galaxy %q has unknown type %q", name, galaxyType)
	}

	g := celestial.NewGalaxy(name, t, uint64(seed))
	return &g, nil
}

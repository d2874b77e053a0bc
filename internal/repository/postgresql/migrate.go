package postgresql

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/student_uploader/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type MigrationDirection string

const (
	MigrateUp   MigrationDirection = "up"
	MigrateDown MigrationDirection = "down"
)

func ParseMigrationDirection(s string) (MigrationDirection, error) {
	switch d := MigrationDirection(s); d {
	case MigrateUp, MigrateDown:
		return d, nil
	default:
		return "", fmt.Errorf("direction must be %q or %q, got %q", MigrateUp, MigrateDown, s)
	}
}

// Migrate applies the embedded migrations. Having nothing to apply is not an error.
func Migrate(log *slog.Logger, cfg config.PostgreSQL, direction MigrationDirection) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, ConnectionURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	switch direction {
	case MigrateUp:
		err = migrator.Up()
	case MigrateDown:
		err = migrator.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Info("migrations applied successfully", slog.String("direction", string(direction)))

	return nil
}

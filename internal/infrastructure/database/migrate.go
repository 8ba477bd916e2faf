package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// ErrDirtyLedgerSchema is returned when a previous ledger migration stopped
// halfway and needs a manual `migrate force`.
var ErrDirtyLedgerSchema = errors.New("voucher ledger schema is dirty")

// RunMigrations brings the voucher ledger schema up to date.
func RunMigrations(dsn string, migrationsPath string) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dsn)
	if err != nil {
		return fmt.Errorf("ledger migration init: %w", err)
	}
	defer m.Close()

	if err := checkSchema(m); err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("ledger migration up: %w", err)
	}

	version, _, _ := m.Version()
	slog.Info("ledger schema ready", "version", version)
	return nil
}

type versioner interface {
	Version() (uint, bool, error)
}

// checkSchema refuses to migrate over a dirty schema. A fresh database has
// no version yet and is fine.
func checkSchema(v versioner) error {
	version, dirty, err := v.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		return nil
	case err != nil:
		return fmt.Errorf("ledger schema version: %w", err)
	case dirty:
		return fmt.Errorf("%w at version %d", ErrDirtyLedgerSchema, version)
	}
	return nil
}

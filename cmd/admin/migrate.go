package main

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/khoahotran/planmoni-site/internal/config"
)

// newMigrateCmd applies the schema the postgres storage driver expects.
func newMigrateCmd(configDir *string) *cobra.Command {
	var dir string

	run := func(step func(*migrate.Migrate) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.DB.DSN == "" {
				return errors.New("DB_DSN is not set")
			}
			m, err := migrate.New("file://"+dir, cfg.DB.DSN)
			if err != nil {
				return fmt.Errorf("creating migrate instance: %w", err)
			}
			defer m.Close()

			if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return err
			}
			version, dirty, err := m.Version()
			if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
			return nil
		}
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the Postgres schema",
	}
	cmd.PersistentFlags().StringVar(&dir, "path", "migrations", "directory holding the SQL migrations")
	cmd.AddCommand(
		&cobra.Command{Use: "up", Short: "Apply all pending migrations", Args: cobra.NoArgs,
			RunE: run(func(m *migrate.Migrate) error { return m.Up() })},
		&cobra.Command{Use: "down", Short: "Roll back the last migration", Args: cobra.NoArgs,
			RunE: run(func(m *migrate.Migrate) error { return m.Steps(-1) })},
	)
	return cmd
}

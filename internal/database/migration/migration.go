package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
	// Optional steps only add search indexes; a failure is logged and startup continues.
	Optional bool
}

// Every step is idempotent and runs on each start, so a partially applied schema is completed
// by the next boot.
var steps = []migrationStep{
	{
		Name: "create_table_form_structures",
		SQL: `CREATE TABLE IF NOT EXISTS form_structures (
  id             BIGINT      GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
  name           TEXT        NOT NULL,
  date_created   TIMESTAMPTZ NOT NULL DEFAULT now(),
  structure_json TEXT        NOT NULL
);`,
	},
	{
		Name: "create_index_form_structures_date_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_form_structures_date_created ON form_structures (date_created DESC, id DESC);`,
	},
	{
		// Needs CREATE privilege on the database; without it ILIKE search falls back to a scan.
		Name:     "create_extension_pg_trgm",
		SQL:      `CREATE EXTENSION IF NOT EXISTS pg_trgm;`,
		Optional: true,
	},
	{
		Name:     "create_index_form_structures_name_trgm",
		SQL:      `CREATE INDEX IF NOT EXISTS idx_form_structures_name_trgm ON form_structures USING GIN (name gin_trgm_ops);`,
		Optional: true,
	},
}

// EnsureMigrated applies the form_structures schema. Required steps stop at the first failure;
// optional ones are skipped with a warning.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger zerolog.Logger, dbHost string) error {
	start := time.Now()
	log := logger.With().
		Str("component", "database").
		Str("db_host", dbHost).
		Logger()

	log.Info().Str("event", "db_migration_start").Str("status", "in_progress").Int("steps", len(steps)).Send()

	skipped := 0
	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			if step.Optional {
				skipped++
				log.Warn().
					Str("event", "db_migration_step_skipped").
					Str("status", "degraded").
					Str("migration_step", step.Name).
					Err(err).
					Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
					Send()
				continue
			}

			log.Error().
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Err(err).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	log.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int("skipped_steps", skipped).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}

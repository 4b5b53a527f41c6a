package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the list
// can re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Money columns are stored as TEXT holding exact decimal strings; calendar
// dates use YYYY-MM-DD and timestamps RFC3339.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'lead'
		              CHECK(status IN ('lead','survey','quote','preparation',
		                               'execution','handover','closed',
		                               'rejected','pending_deletion')),
		location      TEXT NOT NULL DEFAULT '',
		contact_name  TEXT NOT NULL DEFAULT '',
		client        TEXT NOT NULL DEFAULT '',
		hourly_rate   TEXT NOT NULL DEFAULT '5000',
		hours_per_day TEXT NOT NULL DEFAULT '8',
		vat_rate      TEXT NOT NULL DEFAULT '27',
		budget        TEXT,
		start_date    TEXT,
		end_date      TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS materials (
		id    TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		unit  TEXT NOT NULL DEFAULT '',
		price TEXT NOT NULL DEFAULT '0'
	)`,

	`CREATE TABLE IF NOT EXISTS operations (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		hourly_rate TEXT NOT NULL DEFAULT '0'
	)`,

	`CREATE TABLE IF NOT EXISTS machines (
		id    TEXT PRIMARY KEY,
		name  TEXT NOT NULL,
		price TEXT NOT NULL DEFAULT '0'
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_items (
		id                   TEXT PRIMARY KEY,
		code                 TEXT NOT NULL UNIQUE,
		description          TEXT NOT NULL DEFAULT '',
		unit                 TEXT NOT NULL DEFAULT '',
		category             TEXT NOT NULL DEFAULT '',
		material_cost        TEXT NOT NULL DEFAULT '0',
		labor_cost           TEXT NOT NULL DEFAULT '0',
		machine_cost         TEXT NOT NULL DEFAULT '0',
		labor_hours_per_unit TEXT NOT NULL DEFAULT '0',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_material_components (
		id              TEXT PRIMARY KEY,
		catalog_item_id TEXT NOT NULL REFERENCES catalog_items(id) ON DELETE CASCADE,
		material_id     TEXT NOT NULL REFERENCES materials(id) ON DELETE CASCADE,
		amount          TEXT NOT NULL DEFAULT '0'
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_labor_components (
		id              TEXT PRIMARY KEY,
		catalog_item_id TEXT NOT NULL REFERENCES catalog_items(id) ON DELETE CASCADE,
		operation_id    TEXT NOT NULL REFERENCES operations(id) ON DELETE CASCADE,
		hours           TEXT NOT NULL DEFAULT '0'
	)`,

	`CREATE TABLE IF NOT EXISTS catalog_machine_components (
		id              TEXT PRIMARY KEY,
		catalog_item_id TEXT NOT NULL REFERENCES catalog_items(id) ON DELETE CASCADE,
		machine_id      TEXT NOT NULL REFERENCES machines(id) ON DELETE CASCADE,
		amount          TEXT NOT NULL DEFAULT '0'
	)`,

	`CREATE TABLE IF NOT EXISTS line_items (
		id                      TEXT PRIMARY KEY,
		project_id              TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		catalog_item_id         TEXT REFERENCES catalog_items(id),
		material_id             TEXT REFERENCES materials(id) ON DELETE SET NULL,
		ordinal_label           TEXT NOT NULL DEFAULT '',
		description             TEXT NOT NULL DEFAULT '',
		unit                    TEXT NOT NULL DEFAULT '',
		category                TEXT NOT NULL DEFAULT '',
		responsible             TEXT NOT NULL DEFAULT '',
		owner                   TEXT NOT NULL DEFAULT '',
		note                    TEXT NOT NULL DEFAULT '',
		quantity                TEXT NOT NULL DEFAULT '0',
		labor_hours_per_unit    TEXT NOT NULL DEFAULT '0',
		material_unit_price     TEXT NOT NULL DEFAULT '0',
		labor_own_share_pct     TEXT NOT NULL DEFAULT '100',
		progress_pct            TEXT NOT NULL DEFAULT '0',
		manual_start_date       TEXT,
		manual_duration_days    INTEGER NOT NULL DEFAULT 0,
		material_total          TEXT NOT NULL DEFAULT '0',
		labor_rate_own_per_unit TEXT NOT NULL DEFAULT '0',
		labor_rate_sub_per_unit TEXT NOT NULL DEFAULT '0',
		labor_total_own         TEXT NOT NULL DEFAULT '0',
		labor_total_sub         TEXT NOT NULL DEFAULT '0',
		computed_duration_days  INTEGER NOT NULL DEFAULT 1,
		created_at              TEXT NOT NULL,
		updated_at              TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_line_items_project ON line_items(project_id)`,

	`CREATE TABLE IF NOT EXISTS dependency_links (
		id        TEXT PRIMARY KEY,
		source_id TEXT NOT NULL REFERENCES line_items(id) ON DELETE CASCADE,
		target_id TEXT NOT NULL REFERENCES line_items(id) ON DELETE CASCADE,
		type      TEXT NOT NULL DEFAULT '0'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependency_links_source ON dependency_links(source_id)`,
}

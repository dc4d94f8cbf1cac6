package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means a fresh database.
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id                      INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at                TEXT NOT NULL,
			root                    TEXT NOT NULL,
			version                 TEXT NOT NULL,
			total_projects          INTEGER NOT NULL,
			total_packages          INTEGER NOT NULL,
			nullable_enabled        INTEGER NOT NULL,
			implicit_usings_enabled INTEGER NOT NULL,
			docs_enabled            INTEGER NOT NULL,
			error_count             INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS scan_projects (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			scan_id            INTEGER NOT NULL REFERENCES scans(id),
			name               TEXT NOT NULL,
			rel_path           TEXT NOT NULL,
			framework          TEXT,
			output_type        TEXT NOT NULL,
			package_count      INTEGER NOT NULL,
			nullable           BOOLEAN NOT NULL,
			implicit_usings    BOOLEAN NOT NULL,
			generate_docs      BOOLEAN NOT NULL,
			project_references INTEGER NOT NULL,
			parse_errors       TEXT
		)`,

		`CREATE INDEX IF NOT EXISTS idx_scan_projects_scan ON scan_projects(scan_id)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_root ON scans(root)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}

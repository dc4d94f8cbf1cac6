package store

import (
	"encoding/json"
	"time"

	"github.com/blackwell-systems/projlens/internal/analysis"
	"github.com/blackwell-systems/projlens/internal/msbuild"
)

// ScanRow is one persisted scan with its summary counts.
type ScanRow struct {
	ID                    int64     `json:"id"`
	TakenAt               time.Time `json:"taken_at"`
	Root                  string    `json:"root"`
	Version               string    `json:"version"`
	TotalProjects         int       `json:"total_projects"`
	TotalPackages         int       `json:"total_packages"`
	NullableEnabled       int       `json:"nullable_enabled"`
	ImplicitUsingsEnabled int       `json:"implicit_usings_enabled"`
	DocsEnabled           int       `json:"docs_enabled"`
	ErrorCount            int       `json:"error_count"`
}

// ProjectRow is one project record within a persisted scan.
type ProjectRow struct {
	ID                int64  `json:"id"`
	ScanID            int64  `json:"scan_id"`
	Name              string `json:"name"`
	RelPath           string `json:"rel_path"`
	Framework         string `json:"framework,omitempty"`
	OutputType        string `json:"output_type"`
	PackageCount      int    `json:"package_count"`
	Nullable          bool   `json:"nullable"`
	ImplicitUsings    bool   `json:"implicit_usings"`
	GenerateDocs      bool   `json:"generate_docs"`
	ProjectReferences int    `json:"project_references"`
	ParseErrors       string `json:"parse_errors,omitempty"`
}

// SaveScan persists one scan: a summary row plus one row per project.
// Parse diagnostics are stored as a JSON array per project.
func (db *DB) SaveScan(root, version string, projects []msbuild.Project, s analysis.Summary) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO scans
		(taken_at, root, version, total_projects, total_packages,
		 nullable_enabled, implicit_usings_enabled, docs_enabled, error_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), root, version,
		s.TotalProjects, s.TotalPackages, s.NullableEnabled,
		s.ImplicitUsingsEnabled, s.DocsEnabled, len(s.WithErrors),
	)
	if err != nil {
		return 0, err
	}
	scanID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range projects {
		errsJSON := ""
		if len(p.ParseErrors) > 0 {
			b, err := json.Marshal(p.ParseErrors)
			if err != nil {
				return 0, err
			}
			errsJSON = string(b)
		}
		if _, err := tx.Exec(
			`INSERT INTO scan_projects
			(scan_id, name, rel_path, framework, output_type, package_count,
			 nullable, implicit_usings, generate_docs, project_references, parse_errors)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			scanID, p.Name, p.RelPath, p.TargetFramework, p.OutputType,
			len(p.Packages), p.Nullable, p.ImplicitUsings, p.GenerateDocs,
			p.ProjectReferences, errsJSON,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return scanID, nil
}

// ListScans returns the most recent scans, newest first. limit <= 0 means
// no limit.
func (db *DB) ListScans(limit int) ([]ScanRow, error) {
	query := `SELECT id, taken_at, root, version, total_projects, total_packages,
		nullable_enabled, implicit_usings_enabled, docs_enabled, error_count
		FROM scans ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scans []ScanRow
	for rows.Next() {
		var s ScanRow
		var takenAt string
		if err := rows.Scan(&s.ID, &takenAt, &s.Root, &s.Version,
			&s.TotalProjects, &s.TotalPackages, &s.NullableEnabled,
			&s.ImplicitUsingsEnabled, &s.DocsEnabled, &s.ErrorCount); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// ProjectsForScan returns the project rows of one scan in insertion order.
func (db *DB) ProjectsForScan(scanID int64) ([]ProjectRow, error) {
	rows, err := db.conn.Query(
		`SELECT id, scan_id, name, rel_path, framework, output_type,
			package_count, nullable, implicit_usings, generate_docs,
			project_references, parse_errors
		FROM scan_projects WHERE scan_id = ? ORDER BY id`, scanID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []ProjectRow
	for rows.Next() {
		var p ProjectRow
		var framework, parseErrors nullString
		if err := rows.Scan(&p.ID, &p.ScanID, &p.Name, &p.RelPath,
			&framework, &p.OutputType, &p.PackageCount, &p.Nullable,
			&p.ImplicitUsings, &p.GenerateDocs, &p.ProjectReferences,
			&parseErrors); err != nil {
			return nil, err
		}
		p.Framework = string(framework)
		p.ParseErrors = string(parseErrors)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// nullString implements sql.Scanner for nullable TEXT columns.
type nullString string

func (ns *nullString) Scan(value any) error {
	if value == nil {
		*ns = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*ns = nullString(v)
	case []byte:
		*ns = nullString(v)
	default:
		*ns = ""
	}
	return nil
}

// Package library persists named designs so users can save and reload
// configurations. The core never touches this; it is a collaborator that
// stores ModuleConfig snapshots.
package library

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sahilm/fuzzy"

	"github.com/plankworks/cabd/pkg/model"
)

// Design is one saved configuration.
type Design struct {
	ID        int64
	Name      string
	Archetype model.Archetype
	Config    model.ModuleConfig
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DB handles design persistence.
type DB struct {
	db *sql.DB
}

// Open opens or creates the design database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ldb := &DB{db: db}
	if err := ldb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return ldb, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS designs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		archetype TEXT NOT NULL,
		config_json TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_designs_archetype ON designs(archetype);
	`
	_, err := d.db.Exec(schema)
	return err
}

// Save inserts or replaces a design by name.
func (d *DB) Save(name string, cfg model.ModuleConfig) (*Design, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	now := time.Now().UTC()
	_, err = d.db.Exec(`
		INSERT INTO designs (name, archetype, config_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			archetype = excluded.archetype,
			config_json = excluded.config_json,
			updated_at = excluded.updated_at
	`, name, string(cfg.Archetype), string(data), now, now)
	if err != nil {
		return nil, fmt.Errorf("save design: %w", err)
	}
	return d.Get(name)
}

// Get returns the design with the given name.
func (d *DB) Get(name string) (*Design, error) {
	row := d.db.QueryRow(`
		SELECT id, name, archetype, config_json, created_at, updated_at
		FROM designs WHERE name = ?
	`, name)
	return scanDesign(row)
}

// List returns all designs, most recently updated first.
func (d *DB) List() ([]Design, error) {
	rows, err := d.db.Query(`
		SELECT id, name, archetype, config_json, created_at, updated_at
		FROM designs ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var designs []Design
	for rows.Next() {
		dd, err := scanDesign(rows)
		if err != nil {
			return nil, err
		}
		designs = append(designs, *dd)
	}
	return designs, rows.Err()
}

// Delete removes a design by name.
func (d *DB) Delete(name string) error {
	_, err := d.db.Exec(`DELETE FROM designs WHERE name = ?`, name)
	return err
}

// Find fuzzy-matches the query against design names and returns matches in
// relevance order. An empty query returns everything.
func (d *DB) Find(query string) ([]Design, error) {
	all, err := d.List()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return all, nil
	}

	names := make([]string, len(all))
	for i, dd := range all {
		names[i] = dd.Name
	}

	matches := fuzzy.Find(query, names)
	out := make([]Design, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDesign(row rowScanner) (*Design, error) {
	var d Design
	var archetype, configJSON string
	if err := row.Scan(&d.ID, &d.Name, &archetype, &configJSON, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("design not found")
		}
		return nil, err
	}
	d.Archetype = model.Archetype(archetype)
	if err := json.Unmarshal([]byte(configJSON), &d.Config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &d, nil
}

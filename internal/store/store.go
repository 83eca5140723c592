// Package store provides SQLite-based snapshots of a model definition:
// registered variables, phase order, composition, and material assignments.
// The registry itself stays in memory; the snapshot exists for inspection
// and for resuming a model setup session.
package store

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/okstad/poromodel/internal/domain"
)

// DB wraps a SQLite connection for model definition snapshots.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS variables (
		name TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		scope TEXT NOT NULL,
		dof_cells INTEGER NOT NULL,
		dof_faces INTEGER NOT NULL,
		dof_nodes INTEGER NOT NULL,
		size INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS phases (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS composition (
		phase TEXT NOT NULL,
		position INTEGER NOT NULL,
		substance TEXT NOT NULL,
		PRIMARY KEY (phase, position)
	);

	CREATE TABLE IF NOT EXISTS materials (
		subregion_id TEXT PRIMARY KEY,
		subregion TEXT NOT NULL,
		substance TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS model_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// VariableRow is one registered variable as persisted.
type VariableRow struct {
	Name     string `db:"name"`
	Symbol   string `db:"symbol"`
	Scope    string `db:"scope"`
	DOFCells int    `db:"dof_cells"`
	DOFFaces int    `db:"dof_faces"`
	DOFNodes int    `db:"dof_nodes"`
	Size     int    `db:"size"`
}

// MaterialRow is one subregion-to-material binding as persisted.
type MaterialRow struct {
	SubregionID string `db:"subregion_id"`
	Subregion   string `db:"subregion"`
	Substance   string `db:"substance"`
}

// SaveModel writes the full model definition (full replace).
func (db *DB) SaveModel(d *domain.Domain) error {
	slog.Info("saving model definition",
		"variables", len(d.VariableNames()),
		"phases", d.NumPhases(),
		"substances", d.NumSubstances(),
	)

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"variables", "phases", "composition", "materials"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	for _, name := range d.VariableNames() {
		v, err := d.Variable(name)
		if err != nil {
			return fmt.Errorf("snapshot variable %q: %w", name, err)
		}
		dof := v.DOF()
		_, err = tx.Exec(`INSERT INTO variables
			(name, symbol, scope, dof_cells, dof_faces, dof_nodes, size)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			v.Name(), v.Symbol(), v.Scope().String(), dof.Cells, dof.Faces, dof.Nodes, v.Size(),
		)
		if err != nil {
			return fmt.Errorf("insert variable %q: %w", name, err)
		}
	}

	comp := d.Composition()
	for i, ph := range d.Phases() {
		if _, err := tx.Exec("INSERT INTO phases (position, name) VALUES (?, ?)", i, ph.Name()); err != nil {
			return fmt.Errorf("insert phase %q: %w", ph.Name(), err)
		}
		for j, sub := range comp.InPhase[ph.Name()] {
			_, err := tx.Exec("INSERT INTO composition (phase, position, substance) VALUES (?, ?, ?)",
				ph.Name(), j, sub)
			if err != nil {
				return fmt.Errorf("insert composition %q/%q: %w", ph.Name(), sub, err)
			}
		}
	}

	for _, sd := range d.Subdomains() {
		_, err := tx.Exec("INSERT INTO materials (subregion_id, subregion, substance) VALUES (?, ?, ?)",
			sd.Sub.ID.String(), sd.Sub.Name, sd.Material.Material.Name())
		if err != nil {
			return fmt.Errorf("insert material for %q: %w", sd.Sub.Name, err)
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO model_meta (key, value) VALUES (?, ?)",
		"num_cells", fmt.Sprintf("%d", d.NumCells())); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	slog.Info("model definition saved")
	return nil
}

// LoadVariables returns the persisted variable rows, ordered by name.
func (db *DB) LoadVariables() ([]VariableRow, error) {
	var rows []VariableRow
	err := db.conn.Select(&rows, "SELECT * FROM variables ORDER BY name")
	return rows, err
}

// LoadPhases returns the persisted phase names in canonical order.
func (db *DB) LoadPhases() ([]string, error) {
	var names []string
	err := db.conn.Select(&names, "SELECT name FROM phases ORDER BY position")
	return names, err
}

// LoadComposition returns the persisted phase-to-substances mapping, each
// substance list in phase iteration order.
func (db *DB) LoadComposition() (map[string][]string, error) {
	var rows []struct {
		Phase     string `db:"phase"`
		Substance string `db:"substance"`
	}
	err := db.conn.Select(&rows, "SELECT phase, substance FROM composition ORDER BY phase, position")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string)
	for _, r := range rows {
		out[r.Phase] = append(out[r.Phase], r.Substance)
	}
	return out, nil
}

// LoadMaterials returns the persisted material bindings.
func (db *DB) LoadMaterials() ([]MaterialRow, error) {
	var rows []MaterialRow
	err := db.conn.Select(&rows, "SELECT * FROM materials ORDER BY subregion")
	return rows, err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM model_meta WHERE key = ?", key)
	return value, err
}

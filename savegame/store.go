package savegame

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
)

// Persistable is an object that can be saved into a Store.
type Persistable interface {
	Name() string
	Serialize() (map[string]any, error)
	Deserialize(rec map[string]any) error
}

// SaveInfo describes one save in a Store.
type SaveInfo struct {
	Name    string `json:"name"`
	Tick    uint64 `json:"tick"`
	Records int    `json:"records"`
}

// Store keeps saves in a SQLite database. Each save holds one record per
// object, keyed by the object name.
type Store struct {
	db    *sql.DB
	codec Codec
}

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	name TEXT PRIMARY KEY,
	tick INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
	save   TEXT NOT NULL,
	object TEXT NOT NULL,
	data   BLOB NOT NULL,
	PRIMARY KEY (save, object)
);`

// Open opens or creates the store at the given file path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("savegame: open %s: %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("savegame: create schema: %w", err)
	}

	return &Store{db: db, codec: NewJSONCodec()}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the records of the objects under the save name, replacing a
// previous save with the same name.
func (s *Store) Save(
	ctx context.Context,
	save string,
	tick uint64,
	objects []Persistable,
) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("savegame: begin: %w", err)
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM records WHERE save = ?`, save); err != nil {
		return fmt.Errorf("savegame: clear %s: %w", save, err)
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO saves (name, tick) VALUES (?, ?)`,
		save, int64(tick)); err != nil {
		return fmt.Errorf("savegame: save %s: %w", save, err)
	}

	for _, o := range objects {
		if err = s.insert(ctx, tx, save, o); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("savegame: commit: %w", err)
	}

	return nil
}

func (s *Store) insert(
	ctx context.Context,
	tx *sql.Tx,
	save string,
	o Persistable,
) error {
	rec, err := o.Serialize()
	if err != nil {
		return fmt.Errorf("savegame: serialize %s: %w", o.Name(), err)
	}

	buf := new(bytes.Buffer)
	if err := s.codec.Encode(rec, buf); err != nil {
		return fmt.Errorf("savegame: encode %s: %w", o.Name(), err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO records (save, object, data) VALUES (?, ?, ?)`,
		save, o.Name(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("savegame: insert %s: %w", o.Name(), err)
	}

	return nil
}

// Load restores the objects from the save. Every object must have a record.
func (s *Store) Load(
	ctx context.Context,
	save string,
	objects []Persistable,
) error {
	records, err := s.Records(ctx, save)
	if err != nil {
		return err
	}

	for _, o := range objects {
		rec, ok := records[o.Name()]
		if !ok {
			return fmt.Errorf("savegame: %s has no record of %s", save, o.Name())
		}

		if err := o.Deserialize(rec); err != nil {
			return fmt.Errorf("savegame: restore %s: %w", o.Name(), err)
		}
	}

	return nil
}

// Records returns the decoded records of a save, keyed by object name.
func (s *Store) Records(
	ctx context.Context,
	save string,
) (map[string]map[string]any, error) {
	if _, err := s.Info(ctx, save); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT object, data FROM records WHERE save = ? ORDER BY object`, save)
	if err != nil {
		return nil, fmt.Errorf("savegame: query %s: %w", save, err)
	}
	defer rows.Close()

	out := make(map[string]map[string]any)

	for rows.Next() {
		var (
			object string
			data   []byte
		)

		if err := rows.Scan(&object, &data); err != nil {
			return nil, fmt.Errorf("savegame: scan %s: %w", save, err)
		}

		rec, err := s.codec.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("savegame: decode %s: %w", object, err)
		}

		out[object] = rec
	}

	return out, rows.Err()
}

// Info returns the description of a save.
func (s *Store) Info(ctx context.Context, save string) (SaveInfo, error) {
	info := SaveInfo{Name: save}

	var tick int64

	err := s.db.QueryRowContext(ctx,
		`SELECT tick FROM saves WHERE name = ?`, save).Scan(&tick)
	if err == sql.ErrNoRows {
		return info, fmt.Errorf("savegame: no save named %s", save)
	}

	if err != nil {
		return info, fmt.Errorf("savegame: query %s: %w", save, err)
	}

	info.Tick = uint64(tick)

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE save = ?`, save).Scan(&info.Records)
	if err != nil {
		return info, fmt.Errorf("savegame: count %s: %w", save, err)
	}

	return info, nil
}

// Saves lists the saves in the store, ordered by name.
func (s *Store) Saves(ctx context.Context) ([]SaveInfo, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM saves ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("savegame: list: %w", err)
	}

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("savegame: list: %w", err)
		}

		names = append(names, name)
	}

	rows.Close()

	out := make([]SaveInfo, 0, len(names))
	for _, n := range names {
		info, err := s.Info(ctx, n)
		if err != nil {
			return nil, err
		}

		out = append(out, info)
	}

	return out, nil
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sheetlens/domain/catalog"
	"sheetlens/domain/core"
	"sheetlens/domain/profile"
	"sheetlens/internal/errors"
	"sheetlens/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS datasets (
	id TEXT PRIMARY KEY,
	display_name TEXT NOT NULL,
	original_filename TEXT NOT NULL,
	file_path TEXT NOT NULL DEFAULT '',
	record_count INTEGER NOT NULL DEFAULT 0,
	field_count INTEGER NOT NULL DEFAULT 0,
	missing_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
	profiles JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL
)`

// catalogStore implements ports.CatalogStore on PostgreSQL
type catalogStore struct {
	db *sqlx.DB
}

// NewCatalogStore creates the postgres-backed catalog store, bootstrapping
// the schema if needed
func NewCatalogStore(db *sqlx.DB) (ports.CatalogStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create datasets table: %w", err)
	}
	return &catalogStore{db: db}, nil
}

func (s *catalogStore) Save(ctx context.Context, entry *catalog.Entry) error {
	profilesJSON, err := json.Marshal(entry.Profiles)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	query := `INSERT INTO datasets (
		id, display_name, original_filename, file_path, record_count,
		field_count, missing_rate, profiles, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE SET
		display_name = EXCLUDED.display_name,
		record_count = EXCLUDED.record_count,
		field_count = EXCLUDED.field_count,
		missing_rate = EXCLUDED.missing_rate,
		profiles = EXCLUDED.profiles`

	_, err = s.db.ExecContext(ctx, query,
		entry.ID.String(), entry.DisplayName, entry.OriginalFilename, entry.FilePath,
		entry.RecordCount, entry.FieldCount, entry.MissingRate, profilesJSON,
		entry.CreatedAt.Time(),
	)
	if err != nil {
		return fmt.Errorf("failed to save dataset: %w", err)
	}
	return nil
}

func (s *catalogStore) Get(ctx context.Context, id core.DatasetID) (*catalog.Entry, error) {
	query := `SELECT id, display_name, original_filename, file_path, record_count,
		field_count, missing_rate, profiles, created_at
	FROM datasets WHERE id = $1`

	entry, err := scanEntry(s.db.QueryRowxContext(ctx, query, id.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("dataset not found: " + id.String())
		}
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return entry, nil
}

func (s *catalogStore) List(ctx context.Context) ([]*catalog.Entry, error) {
	query := `SELECT id, display_name, original_filename, file_path, record_count,
		field_count, missing_rate, profiles, created_at
	FROM datasets ORDER BY created_at DESC`

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var entries []*catalog.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *catalogStore) Delete(ctx context.Context, id core.DatasetID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return errors.NotFound("dataset not found: " + id.String())
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*catalog.Entry, error) {
	var entry catalog.Entry
	var id string
	var profilesJSON []byte
	var createdAt sql.NullTime

	err := row.Scan(&id, &entry.DisplayName, &entry.OriginalFilename, &entry.FilePath,
		&entry.RecordCount, &entry.FieldCount, &entry.MissingRate, &profilesJSON, &createdAt)
	if err != nil {
		return nil, err
	}

	entry.ID = core.DatasetID(id)
	if createdAt.Valid {
		entry.CreatedAt = core.NewTimestamp(createdAt.Time)
	}
	entry.Profiles = []profile.ColumnProfile{}
	if len(profilesJSON) > 0 {
		if err := json.Unmarshal(profilesJSON, &entry.Profiles); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
		}
	}
	return &entry, nil
}

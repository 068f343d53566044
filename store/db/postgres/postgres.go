package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	// Import the PostgreSQL driver.
	_ "github.com/lib/pq"

	"github.com/shail31-tech/Clinical-Notes-Summary/internal/profile"
	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

type DB struct {
	db      *sql.DB
	profile *profile.Profile
}

// NewDB opens a PostgreSQL database specified by its DSN.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile.DSN == "" {
		return nil, errors.New("dsn required")
	}

	postgresDB, err := sql.Open("postgres", profile.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open db with dsn: %s", profile.DSN)
	}
	if err := postgresDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping db")
	}

	driver := DB{db: postgresDB, profile: profile}

	return &driver, nil
}

func (d *DB) GetDB() *sql.DB {
	return d.db
}

func (d *DB) Close() error {
	return d.db.Close()
}

const migrationStmt = `
CREATE TABLE IF NOT EXISTS note (
	id TEXT PRIMARY KEY,
	creator_id TEXT NOT NULL,
	title TEXT NOT NULL,
	raw_text TEXT NOT NULL,
	status TEXT NOT NULL,
	created_ts BIGINT NOT NULL,
	chief_complaint TEXT NOT NULL DEFAULT '',
	history_of_present_illness TEXT NOT NULL DEFAULT '',
	assessment TEXT NOT NULL DEFAULT '',
	plan TEXT NOT NULL DEFAULT '',
	medications JSONB NOT NULL DEFAULT '[]',
	allergies JSONB NOT NULL DEFAULT '[]',
	icd_codes JSONB NOT NULL DEFAULT '[]',
	summary_source TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_note_creator_id ON note (creator_id);
`

func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, migrationStmt); err != nil {
		return errors.Wrap(err, "failed to migrate note schema")
	}
	return nil
}

// placeholder returns the positional parameter for 1-based index i.
func placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
}

// placeholders returns a comma-joined list of n positional parameters.
func placeholders(n int) string {
	list := make([]string, n)
	for i := range list {
		list[i] = placeholder(i + 1)
	}
	return strings.Join(list, ", ")
}

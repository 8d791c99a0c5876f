package sqlite

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
    profile_id        TEXT PRIMARY KEY,
    age               INTEGER NOT NULL,
    gender            TEXT NOT NULL,
    location          TEXT NOT NULL,
    employment_status TEXT NOT NULL,
    work_schedule     TEXT,
    ethnicity         TEXT,
    creation_time     TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS assessments (
    assessment_id     TEXT PRIMARY KEY,
    profile_id        TEXT NOT NULL,
    payload           TEXT NOT NULL,
    creation_time     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assessments_profile ON assessments(profile_id);

CREATE TABLE IF NOT EXISTS guides (
    guide_id          TEXT PRIMARY KEY,
    profile_id        TEXT NOT NULL,
    payload           TEXT NOT NULL,
    creation_time     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_guides_profile ON guides(profile_id);
`

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// Package postgres implements store.Store on PostgreSQL via the pgx stdlib
// driver. It mirrors the sqlite backend's JSON-document layout.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
    profile_id        TEXT PRIMARY KEY,
    age               INTEGER NOT NULL,
    gender            TEXT NOT NULL,
    location          TEXT NOT NULL,
    employment_status TEXT NOT NULL,
    work_schedule     TEXT,
    ethnicity         TEXT,
    creation_time     TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS assessments (
    assessment_id     TEXT PRIMARY KEY,
    profile_id        TEXT NOT NULL,
    payload           JSONB NOT NULL,
    creation_time     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assessments_profile ON assessments(profile_id);
CREATE TABLE IF NOT EXISTS guides (
    guide_id          TEXT PRIMARY KEY,
    profile_id        TEXT NOT NULL,
    payload           JSONB NOT NULL,
    creation_time     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_guides_profile ON guides(profile_id);
`

// New opens the connection, ensures the schema, and returns the store.
func New(dsn string) (store.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &pgStore{db: db}, nil
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Profiles() store.Profiles       { return &profiles{db: s.db} }
func (s *pgStore) Assessments() store.Assessments { return &assessments{db: s.db} }
func (s *pgStore) Guides() store.Guides           { return &guides{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

// --- Profiles ---

type profiles struct{ db *sql.DB }

func (p *profiles) Create(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	out := *in
	out.ProfileID = store.NewID(store.ProfilePrefix)
	out.CreationTime = time.Now().UTC()
	_, err := p.db.ExecContext(ctx, `
        INSERT INTO profiles (profile_id, age, gender, location, employment_status, work_schedule, ethnicity, creation_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, out.ProfileID, out.Age, out.Gender, out.Location, out.EmploymentStatus, out.WorkSchedule, out.Ethnicity, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *profiles) Get(ctx context.Context, profileID string) (*model.Profile, error) {
	row := p.db.QueryRowContext(ctx, `
        SELECT profile_id, age, gender, location, employment_status, work_schedule, ethnicity, creation_time
        FROM profiles WHERE profile_id=$1
    `, profileID)
	var out model.Profile
	err := row.Scan(&out.ProfileID, &out.Age, &out.Gender, &out.Location,
		&out.EmploymentStatus, &out.WorkSchedule, &out.Ethnicity, &out.CreationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *profiles) List(ctx context.Context) ([]*model.Profile, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT profile_id, age, gender, location, employment_status, work_schedule, ethnicity, creation_time
        FROM profiles ORDER BY creation_time
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Profile, 0)
	for rows.Next() {
		var rec model.Profile
		if err := rows.Scan(&rec.ProfileID, &rec.Age, &rec.Gender, &rec.Location,
			&rec.EmploymentStatus, &rec.WorkSchedule, &rec.Ethnicity, &rec.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (p *profiles) Update(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	res, err := p.db.ExecContext(ctx, `
        UPDATE profiles SET age=$1, gender=$2, location=$3, employment_status=$4, work_schedule=$5, ethnicity=$6
        WHERE profile_id=$7
    `, in.Age, in.Gender, in.Location, in.EmploymentStatus, in.WorkSchedule, in.Ethnicity, in.ProfileID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return p.Get(ctx, in.ProfileID)
}

func (p *profiles) Delete(ctx context.Context, profileID string) error {
	res, err := p.db.ExecContext(ctx, `DELETE FROM profiles WHERE profile_id=$1`, profileID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Assessments ---

type assessments struct{ db *sql.DB }

func (a *assessments) Create(ctx context.Context, in *model.Assessment) (*model.Assessment, error) {
	out := *in
	out.AssessmentID = store.NewID(store.AssessmentPrefix)
	out.CreationTime = time.Now().UTC()
	payload, err := json.Marshal(&out)
	if err != nil {
		return nil, err
	}
	_, err = a.db.ExecContext(ctx, `
        INSERT INTO assessments (assessment_id, profile_id, payload, creation_time) VALUES ($1,$2,$3,$4)
    `, out.AssessmentID, out.ProfileID, payload, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *assessments) Get(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	var payload []byte
	err := a.db.QueryRowContext(ctx, `SELECT payload FROM assessments WHERE assessment_id=$1`, assessmentID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out model.Assessment
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *assessments) List(ctx context.Context) ([]*model.Assessment, error) {
	return a.query(ctx, `SELECT payload FROM assessments ORDER BY creation_time`)
}

func (a *assessments) ListByProfile(ctx context.Context, profileID string) ([]*model.Assessment, error) {
	return a.query(ctx, `SELECT payload FROM assessments WHERE profile_id=$1 ORDER BY creation_time`, profileID)
}

func (a *assessments) query(ctx context.Context, q string, args ...any) ([]*model.Assessment, error) {
	rows, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Assessment, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec model.Assessment
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// --- Guides ---

type guides struct{ db *sql.DB }

func (g *guides) Create(ctx context.Context, in *model.Guide) (*model.Guide, error) {
	out := *in
	out.GuideID = store.NewID(store.GuidePrefix)
	out.CreationTime = time.Now().UTC()
	payload, err := json.Marshal(&out)
	if err != nil {
		return nil, err
	}
	_, err = g.db.ExecContext(ctx, `
        INSERT INTO guides (guide_id, profile_id, payload, creation_time) VALUES ($1,$2,$3,$4)
    `, out.GuideID, out.ProfileID, payload, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *guides) Get(ctx context.Context, guideID string) (*model.Guide, error) {
	var payload []byte
	err := g.db.QueryRowContext(ctx, `SELECT payload FROM guides WHERE guide_id=$1`, guideID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out model.Guide
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *guides) List(ctx context.Context) ([]*model.Guide, error) {
	return g.query(ctx, `SELECT payload FROM guides ORDER BY creation_time`)
}

func (g *guides) ListByProfile(ctx context.Context, profileID string) ([]*model.Guide, error) {
	return g.query(ctx, `SELECT payload FROM guides WHERE profile_id=$1 ORDER BY creation_time`, profileID)
}

func (g *guides) Delete(ctx context.Context, guideID string) error {
	res, err := g.db.ExecContext(ctx, `DELETE FROM guides WHERE guide_id=$1`, guideID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (g *guides) query(ctx context.Context, q string, args ...any) ([]*model.Guide, error) {
	rows, err := g.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Guide, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec model.Guide
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

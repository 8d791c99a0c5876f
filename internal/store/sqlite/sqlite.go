// Package sqlite implements store.Store on a local SQLite file. Assessments
// and guides are stored as JSON documents keyed by id and profile id, which
// keeps the schema stable while the record shapes evolve.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/store"
)

type sqlStore struct{ db *sql.DB }

// New opens the database file, ensures the schema, and returns the store.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqlStore{db: db}, nil
}

// NewWithDB wires an existing connection (used by tests and the factory).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := EnsureSchema(context.Background(), db); err != nil {
		return nil, err
	}
	return &sqlStore{db: db}, nil
}

func (s *sqlStore) Profiles() store.Profiles       { return &profiles{db: s.db} }
func (s *sqlStore) Assessments() store.Assessments { return &assessments{db: s.db} }
func (s *sqlStore) Guides() store.Guides           { return &guides{db: s.db} }

// HealthPing implements health.HealthPinger for the SQLite-backed store.
func (s *sqlStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

// --- Profiles ---

type profiles struct{ db *sql.DB }

func (p *profiles) Create(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	out := *in
	out.ProfileID = store.NewID(store.ProfilePrefix)
	out.CreationTime = time.Now().UTC()
	_, err := p.db.ExecContext(ctx, `
        INSERT INTO profiles (profile_id, age, gender, location, employment_status, work_schedule, ethnicity, creation_time)
        VALUES (?,?,?,?,?,?,?,?)
    `, out.ProfileID, out.Age, out.Gender, out.Location, out.EmploymentStatus, out.WorkSchedule, out.Ethnicity, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *profiles) Get(ctx context.Context, profileID string) (*model.Profile, error) {
	row := p.db.QueryRowContext(ctx, `
        SELECT profile_id, age, gender, location, employment_status, work_schedule, ethnicity, creation_time
        FROM profiles WHERE profile_id = ?
    `, profileID)
	return scanProfile(row)
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
		rec, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (p *profiles) Update(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	res, err := p.db.ExecContext(ctx, `
        UPDATE profiles SET age=?, gender=?, location=?, employment_status=?, work_schedule=?, ethnicity=?
        WHERE profile_id=?
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
	res, err := p.db.ExecContext(ctx, `DELETE FROM profiles WHERE profile_id=?`, profileID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func scanProfile(row rowScanner) (*model.Profile, error) {
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
        INSERT INTO assessments (assessment_id, profile_id, payload, creation_time) VALUES (?,?,?,?)
    `, out.AssessmentID, out.ProfileID, string(payload), out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *assessments) Get(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	var payload string
	err := a.db.QueryRowContext(ctx, `SELECT payload FROM assessments WHERE assessment_id=?`, assessmentID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out model.Assessment
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *assessments) List(ctx context.Context) ([]*model.Assessment, error) {
	return a.query(ctx, `SELECT payload FROM assessments ORDER BY creation_time`)
}

func (a *assessments) ListByProfile(ctx context.Context, profileID string) ([]*model.Assessment, error) {
	return a.query(ctx, `SELECT payload FROM assessments WHERE profile_id=? ORDER BY creation_time`, profileID)
}

func (a *assessments) query(ctx context.Context, q string, args ...any) ([]*model.Assessment, error) {
	rows, err := a.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*model.Assessment, 0)
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec model.Assessment
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
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
        INSERT INTO guides (guide_id, profile_id, payload, creation_time) VALUES (?,?,?,?)
    `, out.GuideID, out.ProfileID, string(payload), out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *guides) Get(ctx context.Context, guideID string) (*model.Guide, error) {
	var payload string
	err := g.db.QueryRowContext(ctx, `SELECT payload FROM guides WHERE guide_id=?`, guideID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out model.Guide
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *guides) List(ctx context.Context) ([]*model.Guide, error) {
	return g.query(ctx, `SELECT payload FROM guides ORDER BY creation_time`)
}

func (g *guides) ListByProfile(ctx context.Context, profileID string) ([]*model.Guide, error) {
	return g.query(ctx, `SELECT payload FROM guides WHERE profile_id=? ORDER BY creation_time`, profileID)
}

func (g *guides) Delete(ctx context.Context, guideID string) error {
	// The profile back-reference is the profile_id column, so the row delete
	// removes the record and its index entry in one statement.
	res, err := g.db.ExecContext(ctx, `DELETE FROM guides WHERE guide_id=?`, guideID)
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
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec model.Guide
		if err := json.Unmarshal([]byte(payload), &rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

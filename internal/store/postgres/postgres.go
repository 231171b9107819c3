// Package postgres provides the relational store backend. Ids are serial
// integers assigned by the database and rendered as decimal strings.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/lifefork/lifefork-server/internal/model"
	"github.com/lifefork/lifefork-server/internal/store"
)

const ddl = `
CREATE TABLE IF NOT EXISTS simulations (
    id                 BIGSERIAL PRIMARY KEY,
    title              TEXT NOT NULL,
    age                INTEGER NOT NULL,
    gender             TEXT,
    hobbies            TEXT NOT NULL,
    personality        TEXT NOT NULL,
    current_situation  TEXT NOT NULL,
    current_goals      TEXT NOT NULL,
    alternative_choice TEXT NOT NULL,
    results            JSONB NOT NULL,
    category           TEXT NOT NULL DEFAULT '',
    success_rate       INTEGER NOT NULL DEFAULT 0,
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
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

// Bootstrap ensures the simulations table exists.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, ddl)
	return err
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Simulations() store.Simulations { return &simulations{db: s.db} }

// HealthPing implements health.Pinger.
func (s *pgStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

type simulations struct{ db *sql.DB }

func (s *simulations) Create(ctx context.Context, rec *model.Simulation) (*model.Simulation, error) {
	results, err := json.Marshal(rec.Results)
	if err != nil {
		return nil, err
	}
	var (
		id      int64
		created time.Time
	)
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO simulations
            (title, age, gender, hobbies, personality, current_situation, current_goals, alternative_choice, results, category, success_rate)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at
    `, rec.Title, rec.Age, rec.Gender, rec.Hobbies, rec.Personality,
		rec.CurrentSituation, rec.CurrentGoals, rec.AlternativeChoice,
		results, rec.Category, rec.SuccessRate)
	if err := row.Scan(&id, &created); err != nil {
		return nil, err
	}
	out := *rec
	out.ID = strconv.FormatInt(id, 10)
	out.CreatedAt = created.UTC()
	return &out, nil
}

func (s *simulations) Get(ctx context.Context, id string) (*model.Simulation, error) {
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, model.ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, `
        SELECT id, title, age, gender, hobbies, personality, current_situation, current_goals, alternative_choice, results, category, success_rate, created_at
        FROM simulations WHERE id=$1
    `, numID)
	rec, err := scanSimulation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return rec, err
}

func (s *simulations) List(ctx context.Context) ([]*model.Simulation, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, title, age, gender, hobbies, personality, current_situation, current_goals, alternative_choice, results, category, success_rate, created_at
        FROM simulations ORDER BY created_at DESC, id DESC
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []*model.Simulation{}
	for rows.Next() {
		rec, err := scanSimulation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *simulations) Delete(ctx context.Context, id string) error {
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// Unparseable ids cannot exist in this backend; deleting them is a no-op.
		return nil
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM simulations WHERE id=$1`, numID)
	return err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanSimulation(row rowScanner) (*model.Simulation, error) {
	var (
		out     model.Simulation
		id      int64
		results []byte
		created time.Time
	)
	if err := row.Scan(&id, &out.Title, &out.Age, &out.Gender, &out.Hobbies,
		&out.Personality, &out.CurrentSituation, &out.CurrentGoals,
		&out.AlternativeChoice, &results, &out.Category, &out.SuccessRate,
		&created); err != nil {
		return nil, err
	}
	out.ID = strconv.FormatInt(id, 10)
	out.CreatedAt = created.UTC()
	if len(results) > 0 {
		out.Results = &model.SimulationResults{}
		if err := json.Unmarshal(results, out.Results); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

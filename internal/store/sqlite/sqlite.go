// Package sqlite provides a durable single-file store backend, useful for
// local deployments without a database server. Ids are AUTOINCREMENT integers
// rendered as decimal strings.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lifefork/lifefork-server/internal/model"
	"github.com/lifefork/lifefork-server/internal/store"
)

const ddl = `
CREATE TABLE IF NOT EXISTS simulations (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    title              TEXT NOT NULL,
    age                INTEGER NOT NULL,
    gender             TEXT,
    hobbies            TEXT NOT NULL,
    personality        TEXT NOT NULL,
    current_situation  TEXT NOT NULL,
    current_goals      TEXT NOT NULL,
    alternative_choice TEXT NOT NULL,
    results            TEXT NOT NULL,
    category           TEXT NOT NULL DEFAULT '',
    success_rate       INTEGER NOT NULL DEFAULT 0,
    created_at         TEXT NOT NULL
)`

// Fixed-width UTC layout so the TEXT column sorts chronologically.
// RFC3339Nano trims trailing zeros, which breaks lexicographic ORDER BY.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Open opens (and creates if needed) the SQLite database at path and ensures
// the schema exists.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is empty")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// modernc sqlite is single-writer; a pool of one avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a SQLite store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Simulations() store.Simulations { return &simulations{db: s.db} }

// HealthPing implements health.Pinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

type simulations struct{ db *sql.DB }

func (s *simulations) Create(ctx context.Context, rec *model.Simulation) (*model.Simulation, error) {
	results, err := json.Marshal(rec.Results)
	if err != nil {
		return nil, err
	}
	created := time.Now().UTC()
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO simulations
            (title, age, gender, hobbies, personality, current_situation, current_goals, alternative_choice, results, category, success_rate, created_at)
        VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
    `, rec.Title, rec.Age, rec.Gender, rec.Hobbies, rec.Personality,
		rec.CurrentSituation, rec.CurrentGoals, rec.AlternativeChoice,
		string(results), rec.Category, rec.SuccessRate, created.Format(timeLayout))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	out := *rec
	out.ID = strconv.FormatInt(id, 10)
	out.CreatedAt = created
	return &out, nil
}

func (s *simulations) Get(ctx context.Context, id string) (*model.Simulation, error) {
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, model.ErrNotFound
	}
	row := s.db.QueryRowContext(ctx, `
        SELECT id, title, age, gender, hobbies, personality, current_situation, current_goals, alternative_choice, results, category, success_rate, created_at
        FROM simulations WHERE id=?
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
		return nil
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM simulations WHERE id=?`, numID)
	return err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanSimulation(row rowScanner) (*model.Simulation, error) {
	var (
		out     model.Simulation
		id      int64
		results string
		created string
	)
	if err := row.Scan(&id, &out.Title, &out.Age, &out.Gender, &out.Hobbies,
		&out.Personality, &out.CurrentSituation, &out.CurrentGoals,
		&out.AlternativeChoice, &results, &out.Category, &out.SuccessRate,
		&created); err != nil {
		return nil, err
	}
	out.ID = strconv.FormatInt(id, 10)
	ts, err := time.Parse(timeLayout, created)
	if err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	out.CreatedAt = ts
	if results != "" {
		out.Results = &model.SimulationResults{}
		if err := json.Unmarshal([]byte(results), out.Results); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Package memory provides a transient in-process store. Contents are lost on
// restart; useful for development and tests.
package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/lifefork/lifefork-server/internal/model"
	"github.com/lifefork/lifefork-server/internal/store"
)

// New constructs an empty in-memory store.
func New() store.Store { return &memStore{recs: map[string]*model.Simulation{}} }

type memStore struct {
	mu     sync.Mutex
	nextID int64
	recs   map[string]*model.Simulation
}

func (s *memStore) Simulations() store.Simulations { return (*simulations)(s) }

// HealthPing implements health.Pinger; an in-process map is always reachable.
func (s *memStore) HealthPing(ctx context.Context) error { return ctx.Err() }

type simulations memStore

func (s *simulations) Create(_ context.Context, rec *model.Simulation) (*model.Simulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Serialized id assignment keeps ids unique and monotonic under
	// concurrent creates.
	s.nextID++
	out := *rec
	out.ID = strconv.FormatInt(s.nextID, 10)
	out.CreatedAt = time.Now().UTC()
	s.recs[out.ID] = &out

	stored := out
	return &stored, nil
}

func (s *simulations) Get(_ context.Context, id string) (*model.Simulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (s *simulations) List(_ context.Context) ([]*model.Simulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Simulation, 0, len(s.recs))
	for _, rec := range s.recs {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		// Tie-break on the numeric id: later-inserted first.
		a, _ := strconv.ParseInt(out[i].ID, 10, 64)
		b, _ := strconv.ParseInt(out[j].ID, 10, 64)
		return a > b
	})
	return out, nil
}

func (s *simulations) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, id)
	return nil
}

package store

import (
	"context"

	"github.com/lifefork/lifefork-server/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (memory, postgres,
// sqlite, mongo).
type Store interface {
	Simulations() Simulations
}

// Simulations is the uniform record contract every backend implements.
//
// List order is createdAt descending with ties broken by id descending, so
// the most recently inserted record wins on equal timestamps.
type Simulations interface {
	// Create assigns id and createdAt, persists, and returns the stored
	// record. No partially-visible record is ever observable.
	Create(ctx context.Context, s *model.Simulation) (*model.Simulation, error)
	// Get returns model.ErrNotFound for missing ids.
	Get(ctx context.Context, id string) (*model.Simulation, error)
	List(ctx context.Context) ([]*model.Simulation, error)
	// Delete of a missing id is a no-op, not an error.
	Delete(ctx context.Context, id string) error
}

package services

import (
	"context"

	"github.com/lifefork/lifefork-server/internal/model"
	"github.com/lifefork/lifefork-server/internal/narrative"
	"github.com/lifefork/lifefork-server/internal/store"
	"github.com/lifefork/lifefork-server/internal/validate"
)

// SimulationService orchestrates the simulation lifecycle:
// validate -> generate -> assemble record -> persist.
type SimulationService struct {
	store store.Store
	live  narrative.Generator
	demo  narrative.Generator
}

// NewSimulationService wires the store with the live and demo generators.
// live may equal demo when the service runs in offline mode.
func NewSimulationService(s store.Store, live, demo narrative.Generator) *SimulationService {
	return &SimulationService{store: s, live: live, demo: demo}
}

// Run validates the form, generates results with the live generator and
// persists the record. A record is only created after generation output
// passed the result contract; no partial records exist.
func (s *SimulationService) Run(ctx context.Context, form model.SimulationForm) (*model.Simulation, error) {
	return s.run(ctx, form, s.live)
}

// RunDemo is Run on the offline synthesis path.
func (s *SimulationService) RunDemo(ctx context.Context, form model.SimulationForm) (*model.Simulation, error) {
	return s.run(ctx, form, s.demo)
}

func (s *SimulationService) run(ctx context.Context, form model.SimulationForm, gen narrative.Generator) (*model.Simulation, error) {
	if err := validate.SimulationForm(&form).Err(); err != nil {
		return nil, err
	}
	results, err := gen.Generate(ctx, form)
	if err != nil {
		return nil, err
	}
	return s.store.Simulations().Create(ctx, model.NewSimulation(form, results))
}

// Get fetches one record; model.ErrNotFound when absent.
func (s *SimulationService) Get(ctx context.Context, id string) (*model.Simulation, error) {
	return s.store.Simulations().Get(ctx, id)
}

// List returns all records, newest first.
func (s *SimulationService) List(ctx context.Context) ([]*model.Simulation, error) {
	return s.store.Simulations().List(ctx)
}

// Delete removes a record by id; deleting a missing id is a no-op.
func (s *SimulationService) Delete(ctx context.Context, id string) error {
	return s.store.Simulations().Delete(ctx, id)
}

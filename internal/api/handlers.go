package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lifefork/lifefork-server/internal/api/respond"
	"github.com/lifefork/lifefork-server/internal/model"
	"github.com/lifefork/lifefork-server/internal/services"
)

// SimulationHandler provides HTTP transport for simulation operations.
type SimulationHandler struct {
	svc *services.SimulationService
}

func NewSimulationHandler(svc *services.SimulationService) *SimulationHandler {
	return &SimulationHandler{svc: svc}
}

// ListSimulations GET /api/simulations
func (h *SimulationHandler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.List(r.Context())
	if err != nil {
		respond.WriteServerError(w, "Failed to load simulations", err)
		return
	}
	// Empty list is a 200 with [], never a 404.
	respond.WriteJSON(w, http.StatusOK, recs)
}

// GetSimulation GET /api/simulations/{id}
func (h *SimulationHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Simulation not found")
			return
		}
		respond.WriteServerError(w, "Failed to load simulation", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

// CreateSimulation POST /api/simulations
func (h *SimulationHandler) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.svc.Run)
}

// CreateDemoSimulation POST /api/simulations/demo
//
// Same contract as CreateSimulation but uses offline synthesis instead of the
// live generation call; kept for testing and for when quota is exhausted.
func (h *SimulationHandler) CreateDemoSimulation(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.svc.RunDemo)
}

func (h *SimulationHandler) create(w http.ResponseWriter, r *http.Request, run func(context.Context, model.SimulationForm) (*model.Simulation, error)) {
	var form model.SimulationForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respond.WriteValidation(w, "Invalid JSON body", map[string][]string{})
		return
	}

	rec, err := run(r.Context(), form)
	if err != nil {
		var ve model.ValidationError
		if errors.As(err, &ve) {
			respond.WriteValidation(w, "Form data is invalid", ve.Fields)
			return
		}
		if model.IsGenerationError(err) {
			respond.WriteServerError(w, "Failed to generate simulation. Please try again later.", err)
			return
		}
		respond.WriteServerError(w, "Failed to save simulation", err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rec)
}

// DeleteSimulation DELETE /api/simulations/{id}
//
// Always returns 200: deleting a non-existent id is an idempotent no-op.
func (h *SimulationHandler) DeleteSimulation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.WriteServerError(w, "Failed to delete simulation", err)
		return
	}
	respond.WriteMessage(w, "Simulation deleted")
}

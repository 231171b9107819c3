package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// NewRouter wires routes, middleware and CORS. The API is consumed from
// browsers on other origins, so every response carries
// Access-Control-Allow-Origin: * and OPTIONS preflights succeed.
func NewRouter(sim *SimulationHandler, health *HealthHandler, log zerolog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(Recover)
	r.Use(RequestLog(log))

	r.HandleFunc("/api/simulations", sim.ListSimulations).Methods("GET")
	r.HandleFunc("/api/simulations", sim.CreateSimulation).Methods("POST")
	r.HandleFunc("/api/simulations/demo", sim.CreateDemoSimulation).Methods("POST")
	r.HandleFunc("/api/simulations/{id}", sim.GetSimulation).Methods("GET")
	r.HandleFunc("/api/simulations/{id}", sim.DeleteSimulation).Methods("DELETE")

	r.HandleFunc("/api/health", health.CheckHealth).Methods("GET")

	return handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)
}

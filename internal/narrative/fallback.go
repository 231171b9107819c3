package narrative

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/lifefork/lifefork-server/internal/model"
)

// FallbackGenerator attempts the primary (live) generator and, on any
// generation failure, synthesizes a result with the fallback instead of
// surfacing the error. The fallback policy is explicit here rather than
// hidden inside the client.
type FallbackGenerator struct {
	primary  Generator
	fallback Generator
	log      zerolog.Logger
}

// NewFallbackGenerator wraps primary with fallback.
func NewFallbackGenerator(primary, fallback Generator, log zerolog.Logger) *FallbackGenerator {
	return &FallbackGenerator{primary: primary, fallback: fallback, log: log}
}

// Generate implements Generator.
func (g *FallbackGenerator) Generate(ctx context.Context, form model.SimulationForm) (*model.SimulationResults, error) {
	results, err := g.primary.Generate(ctx, form)
	if err == nil {
		return results, nil
	}
	if ctx.Err() != nil {
		// Caller is gone; nothing useful to synthesize.
		return nil, err
	}
	g.log.Warn().Err(err).Msg("live generation failed, falling back to offline synthesis")
	return g.fallback.Generate(ctx, form)
}

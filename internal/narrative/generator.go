// Package narrative produces SimulationResults for a validated form, either
// by calling the Gemini generation API or by offline template synthesis.
package narrative

import (
	"context"
	"fmt"

	"github.com/lifefork/lifefork-server/internal/model"
)

// Generator turns a validated form into generated results.
// Implementations: GeminiGenerator (live), OfflineGenerator (template),
// FallbackGenerator (live with offline fallback).
type Generator interface {
	Generate(ctx context.Context, form model.SimulationForm) (*model.SimulationResults, error)
}

// ValidateResults re-checks generated output against the result contract
// before it can be persisted. The generation service occasionally returns
// schema-shaped but out-of-contract data; such output is a permanent
// generation failure, not something to store or retry.
func ValidateResults(r *model.SimulationResults) error {
	if r == nil {
		return fmt.Errorf("results are nil")
	}
	if r.FutureLetterAlternative.Letter == "" {
		return fmt.Errorf("futureLetterAlternative.letter is empty")
	}
	if r.FutureLetterCurrent.Letter == "" {
		return fmt.Errorf("futureLetterCurrent.letter is empty")
	}
	if r.OverallScore < 1 || r.OverallScore > 100 {
		return fmt.Errorf("overallScore %d outside [1,100]", r.OverallScore)
	}
	return nil
}

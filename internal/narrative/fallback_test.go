package narrative

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lifefork/lifefork-server/internal/model"
)

type stubGenerator struct {
	calls   int
	results *model.SimulationResults
	err     error
}

func (s *stubGenerator) Generate(_ context.Context, _ model.SimulationForm) (*model.SimulationResults, error) {
	s.calls++
	return s.results, s.err
}

func TestFallbackGenerator_PrimarySucceeds(t *testing.T) {
	want := &model.SimulationResults{Category: "Career", OverallScore: 88}
	primary := &stubGenerator{results: want}
	fallback := &stubGenerator{results: &model.SimulationResults{Category: "fallback"}}

	g := NewFallbackGenerator(primary, fallback, zerolog.Nop())
	got, err := g.Generate(context.Background(), model.SimulationForm{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != want {
		t.Fatal("expected primary results")
	}
	if fallback.calls != 0 {
		t.Fatal("fallback should not run when primary succeeds")
	}
}

func TestFallbackGenerator_PrimaryFails(t *testing.T) {
	primary := &stubGenerator{err: model.NewGenerationError("quota exhausted", true, nil)}
	want := &model.SimulationResults{Category: "Career", OverallScore: 72}
	fallback := &stubGenerator{results: want}

	g := NewFallbackGenerator(primary, fallback, zerolog.Nop())
	got, err := g.Generate(context.Background(), model.SimulationForm{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != want {
		t.Fatal("expected fallback results")
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("calls: primary=%d fallback=%d", primary.calls, fallback.calls)
	}
}

func TestFallbackGenerator_CanceledContextDoesNotFallBack(t *testing.T) {
	primary := &stubGenerator{err: context.Canceled}
	fallback := &stubGenerator{results: &model.SimulationResults{}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewFallbackGenerator(primary, fallback, zerolog.Nop())
	if _, err := g.Generate(ctx, model.SimulationForm{}); err == nil {
		t.Fatal("expected error for canceled context")
	}
	if fallback.calls != 0 {
		t.Fatal("fallback must not run after cancellation")
	}
}

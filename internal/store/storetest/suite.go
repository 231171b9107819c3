// Package storetest provides a reusable contract suite every store backend
// must pass.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lifefork/lifefork-server/internal/model"
	"github.com/lifefork/lifefork-server/internal/store"
)

func sampleForm(choice string) model.SimulationForm {
	return model.SimulationForm{
		Age:               25,
		Hobbies:           "music",
		Personality:       "social",
		CurrentSituation:  "Working as an accountant",
		CurrentGoals:      "grow professionally",
		AlternativeChoice: choice,
	}
}

func sampleResults(score int) *model.SimulationResults {
	return &model.SimulationResults{
		FutureLetterAlternative: model.FutureLetter{Letter: "Dear me, the leap was worth it.", Timeline: "5 years later", Location: "A new city", Mood: "content"},
		FutureLetterCurrent:     model.FutureLetter{Letter: "Hello me, still on the old road.", Timeline: "5 years later", Location: "The same office", Mood: "stable"},
		Comparison:              model.Comparison{MajorDifferences: "a", EmotionalTone: "b", LifeEvents: "c"},
		OverallScore:            score,
		Category:                "Career",
	}
}

// Run exercises the uniform Simulations contract against a fresh backend.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	ctx := context.Background()

	t.Run("create assigns id and createdAt", func(t *testing.T) {
		sims := newStore(t).Simulations()
		rec, err := sims.Create(ctx, model.NewSimulation(sampleForm("become a software developer"), sampleResults(80)))
		require.NoError(t, err)
		require.NotEmpty(t, rec.ID)
		require.False(t, rec.CreatedAt.IsZero())
	})

	t.Run("get round-trips all fields", func(t *testing.T) {
		sims := newStore(t).Simulations()
		in := model.NewSimulation(sampleForm("become a software developer"), sampleResults(83))
		created, err := sims.Create(ctx, in)
		require.NoError(t, err)

		got, err := sims.Get(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, in.Title, got.Title)
		require.Equal(t, in.Age, got.Age)
		require.Equal(t, in.Hobbies, got.Hobbies)
		require.Equal(t, in.Personality, got.Personality)
		require.Equal(t, in.CurrentSituation, got.CurrentSituation)
		require.Equal(t, in.CurrentGoals, got.CurrentGoals)
		require.Equal(t, in.AlternativeChoice, got.AlternativeChoice)
		require.Equal(t, in.Results, got.Results)
		require.Equal(t, in.Category, got.Category)
		require.Equal(t, in.SuccessRate, got.SuccessRate)
	})

	t.Run("get missing id returns not found", func(t *testing.T) {
		sims := newStore(t).Simulations()
		_, err := sims.Get(ctx, "999999")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		sims := newStore(t).Simulations()
		var ids []string
		for _, choice := range []string{"first", "second", "third"} {
			rec, err := sims.Create(ctx, model.NewSimulation(sampleForm(choice), sampleResults(75)))
			require.NoError(t, err)
			ids = append(ids, rec.ID)
		}

		recs, err := sims.List(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 3)
		// Newest first; equal timestamps tie-break to the later insert.
		require.Equal(t, ids[2], recs[0].ID)
		require.Equal(t, ids[1], recs[1].ID)
		require.Equal(t, ids[0], recs[2].ID)
	})

	t.Run("list on empty store returns empty slice", func(t *testing.T) {
		sims := newStore(t).Simulations()
		recs, err := sims.List(ctx)
		require.NoError(t, err)
		require.Empty(t, recs)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		sims := newStore(t).Simulations()
		rec, err := sims.Create(ctx, model.NewSimulation(sampleForm("keep"), sampleResults(71)))
		require.NoError(t, err)

		require.NoError(t, sims.Delete(ctx, "999999"))
		recs, err := sims.List(ctx)
		require.NoError(t, err)
		require.Len(t, recs, 1)

		require.NoError(t, sims.Delete(ctx, rec.ID))
		require.NoError(t, sims.Delete(ctx, rec.ID))

		_, err = sims.Get(ctx, rec.ID)
		require.ErrorIs(t, err, model.ErrNotFound)
	})
}

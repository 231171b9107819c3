package narrative

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/lifefork/lifefork-server/internal/model"
)

// OfflineGenerator synthesizes a schema-conforming result from the form
// fields alone, with no external call. It backs the demo endpoint and the
// fallback path when the live service fails or quota is exhausted.
type OfflineGenerator struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewOfflineGenerator creates an offline generator seeded from seed.
func NewOfflineGenerator(seed int64) *OfflineGenerator {
	return &OfflineGenerator{rand: rand.New(rand.NewSource(seed))}
}

// categoryKeywords maps alternative-choice keywords to a category label.
// Unmatched choices fall back to "Career".
var categoryKeywords = []struct {
	category string
	words    []string
}{
	{"Health", []string{"nurse", "doctor", "medic", "therapist"}},
	{"Education", []string{"teacher", "teach", "professor", "school"}},
	{"Arts", []string{"art", "music", "paint", "writer", "actor", "design"}},
	{"Relationships", []string{"marry", "family", "partner"}},
	{"Lifestyle", []string{"travel", "abroad", "village", "farm", "move"}},
}

func categorize(choice string) string {
	lc := strings.ToLower(choice)
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(lc, w) {
				return ck.category
			}
		}
	}
	return "Career"
}

// Generate implements Generator by string interpolation of the form fields.
func (g *OfflineGenerator) Generate(_ context.Context, form model.SimulationForm) (*model.SimulationResults, error) {
	futureAge := form.Age + 5
	choice := strings.ToLower(form.AlternativeChoice)

	altLetter := fmt.Sprintf(`Dear %d-year-old me,

This morning, on my way in to work, I thought back to those undecided days five years ago. Leaving "%s" behind to choose %s really did take courage.

The first years were hard, of course. Starting over in a new field at %d was not easy. But my interest in %s made the learning much more enjoyable, and being %s turned out to be an unexpected advantage in this world.

These days the feeling that my work matters keeps me going. Financially I am comfortable now too - we did not starve, despite what you feared back then. The biggest change is that I am at peace with myself. You kept asking "what if I fail, what if I regret it?" From here, those worries look empty. Taking the risk turned out to be one of life's best gifts.

Your interest in %s did not disappear in this new life either. Nothing was lost; it just took a new form.

With love,
The you who made the brave choice`,
		futureAge, form.CurrentSituation, choice, form.Age, form.Hobbies, form.Personality, form.Hobbies)

	curLetter := fmt.Sprintf(`Hello %d-year-old me,

We stayed the course with "%s" and I am at a fairly stable point now. The goals you set - %s - have mostly worked out. My finances are fine and I climbed the expected steps.

But lately I keep remembering that old dream: %s. It felt too risky then; now I catch myself thinking "you should have at least tried." I chose the safe road, and something is missing.

My interest in %s is still there, but only as a pastime. Being %s is appreciated here, yet I feel like I never use my full capacity. Maybe life is just like this - safe, a little colorless. Still, most people never get this stability, so I should be grateful.

Best,
The you on the safe road`,
		futureAge, form.CurrentSituation, form.CurrentGoals, choice, form.Hobbies, form.Personality)

	g.mu.Lock()
	score := 70 + g.rand.Intn(25)
	g.mu.Unlock()

	return &model.SimulationResults{
		FutureLetterAlternative: model.FutureLetter{
			Letter:   altLetter,
			Timeline: "5 years later",
			Location: "At the new workplace",
			Mood:     "Content and at peace",
		},
		FutureLetterCurrent: model.FutureLetter{
			Letter:   curLetter,
			Timeline: "5 years later",
			Location: "At my office desk",
			Mood:     "Stable but questioning",
		},
		Comparison: model.Comparison{
			MajorDifferences: "More meaningful work and personal fulfillment on the alternative path; financial security and social standing on the current one",
			EmotionalTone:    "Pride and peace from the leap on the alternative path; steadiness with a trace of regret on the current one",
			LifeEvents:       "Different relationships, different struggles and different success stories on each path",
		},
		OverallScore: score,
		Category:     categorize(form.AlternativeChoice),
	}, nil
}

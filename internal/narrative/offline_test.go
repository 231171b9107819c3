package narrative

import (
	"context"
	"strings"
	"testing"

	"github.com/lifefork/lifefork-server/internal/model"
)

func TestOfflineGenerator_SchemaConformance(t *testing.T) {
	form := model.SimulationForm{
		Age:               25,
		Hobbies:           "müzik",
		Personality:       "sosyal",
		CurrentSituation:  "Muhasebe elemanıyım",
		CurrentGoals:      "gelişmek",
		AlternativeChoice: "Yazılım geliştirici olmak",
	}

	gen := NewOfflineGenerator(1)
	for i := 0; i < 50; i++ {
		res, err := gen.Generate(context.Background(), form)
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if err := ValidateResults(res); err != nil {
			t.Fatalf("offline output violates result contract: %v", err)
		}
		if res.OverallScore < 70 || res.OverallScore > 94 {
			t.Fatalf("score %d outside demo range [70,94]", res.OverallScore)
		}
		if !strings.Contains(res.FutureLetterAlternative.Letter, strings.ToLower(form.AlternativeChoice)) {
			t.Fatalf("alternative letter does not mention the choice:\n%s", res.FutureLetterAlternative.Letter)
		}
		if !strings.Contains(res.FutureLetterCurrent.Letter, form.CurrentGoals) {
			t.Fatal("current letter does not mention the goals")
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		choice string
		want   string
	}{
		{"become a nurse", "Health"},
		{"train as a Doctor", "Health"},
		{"become a teacher", "Education"},
		{"study music seriously", "Arts"},
		{"move abroad", "Lifestyle"},
		{"start a family", "Relationships"},
		{"Yazılım geliştirici olmak", "Career"},
		{"", "Career"},
	}
	for _, tt := range tests {
		if got := categorize(tt.choice); got != tt.want {
			t.Errorf("categorize(%q) = %q, want %q", tt.choice, got, tt.want)
		}
	}
}

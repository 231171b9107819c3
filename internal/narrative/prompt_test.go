package narrative

import (
	"strings"
	"testing"

	"github.com/lifefork/lifefork-server/internal/model"
)

// Generation quality depends on every form field reaching the model verbatim.
func TestBuildPrompt_EmbedsAllFields(t *testing.T) {
	gender := "female"
	form := model.SimulationForm{
		Age:               34,
		Gender:            &gender,
		Hobbies:           "pottery and long-distance running",
		Personality:       "introverted, methodical",
		CurrentSituation:  "Project manager at a logistics firm",
		CurrentGoals:      "Move into a director role",
		AlternativeChoice: "Open a ceramics studio",
	}

	prompt := buildPrompt(form)
	for _, want := range []string{
		"34",
		gender,
		form.Hobbies,
		form.Personality,
		form.CurrentSituation,
		form.CurrentGoals,
		form.AlternativeChoice,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_AbsentGender(t *testing.T) {
	prompt := buildPrompt(model.SimulationForm{Age: 20, Hobbies: "h", Personality: "p",
		CurrentSituation: "s", CurrentGoals: "g", AlternativeChoice: "c"})
	if !strings.Contains(prompt, "Not specified") {
		t.Fatal("absent gender should render as Not specified")
	}
}

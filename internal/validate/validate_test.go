package validate

import (
	"testing"

	"github.com/lifefork/lifefork-server/internal/model"
)

func validForm() model.SimulationForm {
	return model.SimulationForm{
		Age:               25,
		Hobbies:           "müzik",
		Personality:       "sosyal",
		CurrentSituation:  "Muhasebe elemanıyım",
		CurrentGoals:      "gelişmek",
		AlternativeChoice: "Yazılım geliştirici olmak",
	}
}

func TestSimulationForm_Valid(t *testing.T) {
	form := validForm()
	if errs := SimulationForm(&form); !errs.Empty() {
		t.Fatalf("expected no errors, got %v", errs.Fields())
	}
}

func TestSimulationForm_AgeBounds(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		wantErr bool
	}{
		{"below minimum", 15, true},
		{"at minimum", 16, false},
		{"at maximum", 80, false},
		{"above maximum", 81, true},
		{"zero", 0, true},
		{"negative", -5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			form.Age = tt.age
			errs := SimulationForm(&form)
			if _, failed := errs.Fields()["age"]; failed != tt.wantErr {
				t.Fatalf("age=%d: failed=%v, want %v", tt.age, failed, tt.wantErr)
			}
		})
	}
}

func TestSimulationForm_RequiredFields(t *testing.T) {
	for _, field := range []string{"hobbies", "personality", "currentSituation", "currentGoals", "alternativeChoice"} {
		t.Run(field, func(t *testing.T) {
			form := validForm()
			switch field {
			case "hobbies":
				form.Hobbies = "   "
			case "personality":
				form.Personality = ""
			case "currentSituation":
				form.CurrentSituation = "\t\n"
			case "currentGoals":
				form.CurrentGoals = ""
			case "alternativeChoice":
				form.AlternativeChoice = " "
			}
			errs := SimulationForm(&form)
			if reasons := errs.Fields()[field]; len(reasons) == 0 {
				t.Fatalf("expected failure reason for %s, got %v", field, errs.Fields())
			}
		})
	}
}

func TestSimulationForm_WholeRequestRejection(t *testing.T) {
	form := model.SimulationForm{Age: 10}
	errs := SimulationForm(&form)
	// Every bad field is reported, not just the first.
	if len(errs.Fields()) != 6 {
		t.Fatalf("expected 6 failing fields, got %d: %v", len(errs.Fields()), errs.Fields())
	}
	if errs.Err() == nil {
		t.Fatal("expected an error")
	}
	if !model.IsValidationError(errs.Err()) {
		t.Fatal("expected a ValidationError")
	}
}

func TestSimulationForm_TrimsInPlace(t *testing.T) {
	form := validForm()
	form.Hobbies = "  müzik  "
	g := "  "
	form.Gender = &g
	if errs := SimulationForm(&form); !errs.Empty() {
		t.Fatalf("unexpected errors: %v", errs.Fields())
	}
	if form.Hobbies != "müzik" {
		t.Fatalf("hobbies not trimmed: %q", form.Hobbies)
	}
	// A whitespace-only gender collapses to absent.
	if form.Gender != nil {
		t.Fatalf("blank gender should become nil, got %q", *form.Gender)
	}
}

package model

import (
	"strings"
	"testing"
)

func TestNewSimulation_TitleDerivation(t *testing.T) {
	form := SimulationForm{
		Age: 25, Hobbies: "music", Personality: "social",
		CurrentSituation: "accountant", CurrentGoals: "grow",
		AlternativeChoice: "become a software developer",
	}

	tests := []struct {
		name      string
		results   *SimulationResults
		choice    string
		wantTitle string
	}{
		{
			name:      "category prefix",
			results:   &SimulationResults{Category: "Career", OverallScore: 80},
			choice:    "become a software developer",
			wantTitle: "Career: become a software developer",
		},
		{
			name:      "no category falls back to generic prefix",
			results:   &SimulationResults{OverallScore: 80},
			choice:    "become a software developer",
			wantTitle: "Simulation: become a software developer",
		},
		{
			name:      "long choice truncated to 50 runes with ellipsis",
			results:   &SimulationResults{Category: "Career", OverallScore: 80},
			choice:    strings.Repeat("x", 60),
			wantTitle: "Career: " + strings.Repeat("x", 50) + "...",
		},
		{
			name:      "exactly 50 runes not truncated",
			results:   &SimulationResults{Category: "Career", OverallScore: 80},
			choice:    strings.Repeat("x", 50),
			wantTitle: "Career: " + strings.Repeat("x", 50),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := form
			f.AlternativeChoice = tt.choice
			s := NewSimulation(f, tt.results)
			if s.Title != tt.wantTitle {
				t.Fatalf("title = %q, want %q", s.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewSimulation_TruncationCountsRunes(t *testing.T) {
	choice := strings.Repeat("ü", 60)
	s := NewSimulation(SimulationForm{AlternativeChoice: choice}, &SimulationResults{Category: "Arts"})
	want := "Arts: " + strings.Repeat("ü", 50) + "..."
	if s.Title != want {
		t.Fatalf("title = %q, want %q", s.Title, want)
	}
}

func TestNewSimulation_DenormalizesResults(t *testing.T) {
	res := &SimulationResults{Category: "Education", OverallScore: 91}
	s := NewSimulation(SimulationForm{AlternativeChoice: "teach"}, res)
	if s.Category != "Education" {
		t.Fatalf("category = %q", s.Category)
	}
	if s.SuccessRate != 91 {
		t.Fatalf("successRate = %d", s.SuccessRate)
	}
	if s.Results != res {
		t.Fatalf("results not attached")
	}
}

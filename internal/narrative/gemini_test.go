package narrative

import (
	"errors"
	"testing"

	"github.com/lifefork/lifefork-server/internal/model"
)

const conformingReply = `{
  "futureLetterAlternative": {"letter": "Dear me, the leap was worth it.", "timeline": "5 years later", "location": "Berlin", "mood": "content"},
  "futureLetterCurrent": {"letter": "Hello me, still here.", "timeline": "5 years later", "location": "The office", "mood": "stable"},
  "comparison": {"majorDifferences": "a", "emotionalTone": "b", "lifeEvents": "c"},
  "overallScore": 84,
  "category": "Career"
}`

func TestParseResults_Conforming(t *testing.T) {
	res, err := parseResults([]byte(conformingReply))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.OverallScore != 84 {
		t.Fatalf("score = %d", res.OverallScore)
	}
	if res.Category != "Career" {
		t.Fatalf("category = %q", res.Category)
	}
	if res.FutureLetterAlternative.Location != "Berlin" {
		t.Fatalf("location = %q", res.FutureLetterAlternative.Location)
	}
}

func TestParseResults_RoundsFractionalScore(t *testing.T) {
	reply := `{
	  "futureLetterAlternative": {"letter": "x", "timeline": "t", "location": "l", "mood": "m"},
	  "futureLetterCurrent": {"letter": "y", "timeline": "t", "location": "l", "mood": "m"},
	  "comparison": {"majorDifferences": "a", "emotionalTone": "b", "lifeEvents": "c"},
	  "overallScore": 84.6,
	  "category": "Career"
	}`
	res, err := parseResults([]byte(reply))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if res.OverallScore != 85 {
		t.Fatalf("score = %d, want 85", res.OverallScore)
	}
}

func TestParseResults_Failures(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed JSON", `{"futureLetterAlternative":`},
		{"plain text", `I cannot answer that.`},
		{
			"score out of range",
			`{
			  "futureLetterAlternative": {"letter": "x", "timeline": "t", "location": "l", "mood": "m"},
			  "futureLetterCurrent": {"letter": "y", "timeline": "t", "location": "l", "mood": "m"},
			  "comparison": {"majorDifferences": "a", "emotionalTone": "b", "lifeEvents": "c"},
			  "overallScore": 140,
			  "category": "Career"
			}`,
		},
		{
			"empty letter",
			`{
			  "futureLetterAlternative": {"letter": "", "timeline": "t", "location": "l", "mood": "m"},
			  "futureLetterCurrent": {"letter": "y", "timeline": "t", "location": "l", "mood": "m"},
			  "comparison": {"majorDifferences": "a", "emotionalTone": "b", "lifeEvents": "c"},
			  "overallScore": 80,
			  "category": "Career"
			}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseResults([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			var ge model.GenerationError
			if !errors.As(err, &ge) {
				t.Fatalf("expected GenerationError, got %T", err)
			}
			// Conformance failures must never be retried.
			if ge.Retryable {
				t.Fatal("conformance failure marked retryable")
			}
		})
	}
}

func TestValidateResults_ScoreBounds(t *testing.T) {
	base := func(score int) *model.SimulationResults {
		return &model.SimulationResults{
			FutureLetterAlternative: model.FutureLetter{Letter: "a"},
			FutureLetterCurrent:     model.FutureLetter{Letter: "b"},
			OverallScore:            score,
		}
	}
	if err := ValidateResults(base(1)); err != nil {
		t.Fatalf("score 1 should pass: %v", err)
	}
	if err := ValidateResults(base(100)); err != nil {
		t.Fatalf("score 100 should pass: %v", err)
	}
	if err := ValidateResults(base(0)); err == nil {
		t.Fatal("score 0 should fail")
	}
	if err := ValidateResults(base(101)); err == nil {
		t.Fatal("score 101 should fail")
	}
	if err := ValidateResults(nil); err == nil {
		t.Fatal("nil results should fail")
	}
}

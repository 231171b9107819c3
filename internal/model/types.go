package model

import (
	"time"
	"unicode/utf8"
)

// SimulationForm is the validated user input describing a current life
// situation and one alternative choice. Treated as immutable after validation.
type SimulationForm struct {
	Age               int     `json:"age"`
	Gender            *string `json:"gender,omitempty"`
	Hobbies           string  `json:"hobbies"`
	Personality       string  `json:"personality"`
	CurrentSituation  string  `json:"currentSituation"`
	CurrentGoals      string  `json:"currentGoals"`
	AlternativeChoice string  `json:"alternativeChoice"`
}

// FutureLetter is one generated first-person narrative from a future self.
type FutureLetter struct {
	Letter   string `json:"letter"`
	Timeline string `json:"timeline"`
	Location string `json:"location"`
	Mood     string `json:"mood"`
}

// Comparison contrasts the two generated life paths.
type Comparison struct {
	MajorDifferences string `json:"majorDifferences"`
	EmotionalTone    string `json:"emotionalTone"`
	LifeEvents       string `json:"lifeEvents"`
}

// SimulationResults is the full generated outcome attached to a record.
type SimulationResults struct {
	FutureLetterAlternative FutureLetter `json:"futureLetterAlternative"`
	FutureLetterCurrent     FutureLetter `json:"futureLetterCurrent"`
	Comparison              Comparison   `json:"comparison"`
	OverallScore            int          `json:"overallScore"`
	Category                string       `json:"category"`
}

// Simulation is the persisted record: one form submission together with its
// generated results. Records are never updated in place; the only lifecycle
// transitions are create and delete.
//
// ID is always a string on the wire. Serial-id backends render their integer
// id as a decimal string so switching backends does not change the response
// shape.
type Simulation struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Age               int                `json:"age"`
	Gender            *string            `json:"gender,omitempty"`
	Hobbies           string             `json:"hobbies"`
	Personality       string             `json:"personality"`
	CurrentSituation  string             `json:"currentSituation"`
	CurrentGoals      string             `json:"currentGoals"`
	AlternativeChoice string             `json:"alternativeChoice"`
	Results           *SimulationResults `json:"results"`
	Category          string             `json:"category,omitempty"`
	SuccessRate       int                `json:"successRate,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
}

const titleChoiceLimit = 50

// NewSimulation assembles an unsaved record from a validated form and its
// generated results. Title derivation and the category/successRate
// denormalization live here so every store backend shares them; the backend
// assigns ID and CreatedAt on Create.
func NewSimulation(form SimulationForm, results *SimulationResults) *Simulation {
	s := &Simulation{
		Age:               form.Age,
		Gender:            form.Gender,
		Hobbies:           form.Hobbies,
		Personality:       form.Personality,
		CurrentSituation:  form.CurrentSituation,
		CurrentGoals:      form.CurrentGoals,
		AlternativeChoice: form.AlternativeChoice,
		Results:           results,
	}
	if results != nil {
		s.Category = results.Category
		s.SuccessRate = results.OverallScore
	}
	s.Title = deriveTitle(s.Category, form.AlternativeChoice)
	return s
}

// deriveTitle builds "{category}: {choice}" with the choice truncated to 50
// runes plus an ellipsis, or a generic prefix when category is absent.
func deriveTitle(category, choice string) string {
	prefix := "Simulation"
	if category != "" {
		prefix = category
	}
	return prefix + ": " + truncate(choice, titleChoiceLimit)
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + "..."
}

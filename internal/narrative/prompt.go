package narrative

import (
	"fmt"
	"strings"

	"github.com/lifefork/lifefork-server/internal/model"
)

// systemInstruction steers the model toward personalized, grounded letters.
const systemInstruction = `You are an analyst who writes personalized life simulations. Every response must be specific to the user's unique situation - never use generic phrasing.

RULES:
1. Always use the person's age, situation, profession and hobbies
2. Include daily-life detail (morning routine, workplace, commute home)
3. Add emotional depth - memories, experiences, feelings
4. Balance realistic difficulties with successes
5. Show the role of their hobbies in the new life
6. Use a warm, sincere voice`

// buildPrompt renders the generation instruction. Every form field is embedded
// verbatim; generation quality depends entirely on the model seeing the full
// situation, goals, choice, hobbies and personality text.
func buildPrompt(form model.SimulationForm) string {
	gender := "Not specified"
	if form.Gender != nil {
		gender = *form.Gender
	}

	var b strings.Builder
	b.WriteString("You are the user's future self writing letters back to them. Read the user data carefully and write realistic, sincere letters.\n\n")
	b.WriteString("USER DATA:\n")
	fmt.Fprintf(&b, "- Age: %d\n", form.Age)
	fmt.Fprintf(&b, "- Gender: %s\n", gender)
	fmt.Fprintf(&b, "- Hobbies and interests: %s\n", form.Hobbies)
	fmt.Fprintf(&b, "- Personality: %s\n", form.Personality)
	fmt.Fprintf(&b, "- Current situation: %s\n", form.CurrentSituation)
	fmt.Fprintf(&b, "- Current goals: %s\n", form.CurrentGoals)
	fmt.Fprintf(&b, "- Alternative choice: %s\n\n", form.AlternativeChoice)
	b.WriteString(`LETTER RULES:
1. Open naturally, e.g. "Dear ` + fmt.Sprint(form.Age+5) + `-year-old me," or similar
2. Use short, direct sentences
3. Give concrete detail (city, workplace, daily life)
4. Weave the hobbies in
5. Mention both the good and the hard parts
6. Pick a timeline that makes sense for the age and the choice - do not default to "10 years"
7. Emotional but not overwrought

Write two letters: one from the self that made the alternative choice, one from the self that stayed on the current path, then compare the two lives and score overall satisfaction with the alternative path from 1 to 100. Choose the category that fits best (Career, Education, Relationships, Lifestyle, Health or Arts).
`)
	return b.String()
}

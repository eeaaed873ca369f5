package insights

import (
	"fmt"

	"careercoach-backend/internal/llm"
)

const persona = "You are a strict JSON API. Output ONLY valid JSON."

const outputSchema = `{
  "salaryRanges": [
    { "role": "string", "min": number, "max": number, "median": number, "location": "string" }
  ],
  "growthRate": number,
  "demandLevel": "High" | "Medium" | "Low",
  "topSkills": ["skill1", "skill2"],
  "marketOutlook": "Positive" | "Neutral" | "Negative",
  "keyTrends": ["trend1", "trend2"],
  "recommendedSkills": ["skill1", "skill2"]
}`

// buildPrompt requests a strict-JSON market snapshot for the industry.
func buildPrompt(industry string) llm.PromptSpec {
	return llm.PromptSpec{
		Persona: persona,
		Intro: fmt.Sprintf(
			"Analyze the current state of the %s industry and return ONLY valid JSON.\nNo markdown. No explanations.",
			industry,
		),
		Task: []llm.Field{
			{Value: outputSchema},
		},
		Rules: []string{
			"At least 5 roles",
			"Growth rate must be a percentage",
			"At least 5 skills and trends",
		},
		Temperature: 0.2,
	}
}

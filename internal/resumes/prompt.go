package resumes

import (
	"fmt"

	"careercoach-backend/internal/llm"
)

const improvePersona = "You are an expert resume writer. Rewrite content to be impactful and ATS-friendly."

// buildImprovePrompt asks for a single rewritten paragraph of one resume
// section. Nothing about the stored resume is referenced, only the caller's
// current text and industry.
func buildImprovePrompt(industry, sectionType, current string) llm.PromptSpec {
	return llm.PromptSpec{
		Persona: improvePersona,
		Intro: fmt.Sprintf(
			"As an expert resume writer, improve the following %s description for a %s professional.",
			sectionType, industry,
		),
		Task: []llm.Field{
			{Value: fmt.Sprintf("Current content:\n%q", current)},
		},
		Rules: []string{
			"Use strong action verbs",
			"Include metrics and results where possible",
			"Highlight relevant technical skills",
			"Keep it concise but impactful",
			"Focus on achievements over responsibilities",
			"Use industry-specific keywords",
		},
		OutputFormat: "Return ONLY one improved paragraph.\nNo explanations. No markdown.",
		Temperature:  0.4,
	}
}

package coverletters

import (
	"fmt"
	"strconv"
	"strings"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/users"
)

const persona = "You are a professional career assistant. Write high-quality markdown cover letters."

// buildPrompt assembles the generation prompt from the user's profile and the
// caller-supplied job fields.
func buildPrompt(user users.User, jobTitle, companyName, jobDescription string) llm.PromptSpec {
	return llm.PromptSpec{
		Persona: persona,
		Intro:   fmt.Sprintf("Write a professional cover letter for a %s position at %s.", jobTitle, companyName),
		Profile: []llm.Field{
			{Label: "Industry", Value: user.Industry},
			{Label: "Years of Experience", Value: strconv.Itoa(user.Experience)},
			{Label: "Skills", Value: strings.Join(user.Skills, ", ")},
			{Label: "Professional Background", Value: user.Bio},
		},
		Task: []llm.Field{
			{Value: "Job Description:\n" + jobDescription},
		},
		Rules: []string{
			"Professional and enthusiastic tone",
			"Highlight relevant skills and experience",
			"Show understanding of the company's needs",
			"Max 400 words",
			"Proper business letter formatting in markdown",
			"Include specific achievements",
			"Relate experience to job requirements",
		},
		Temperature: 0.5,
	}
}

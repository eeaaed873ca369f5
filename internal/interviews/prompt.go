package interviews

import (
	"fmt"
	"strings"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/users"
)

const (
	quizPersona = "You are a strict JSON API. Output ONLY valid JSON."
	tipPersona  = "You are a helpful interview coach. Provide concise improvement advice."
)

const quizOutputFormat = `Return ONLY valid JSON in the following format (no markdown, no explanation):

{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string"
    }
  ]
}`

// buildQuizPrompt asks for ten fresh questions. The previous assessment's
// question texts and the seed are textual hints against repetition only.
func buildQuizPrompt(user users.User, previousQuestions []string, seed int64) llm.PromptSpec {
	intro := fmt.Sprintf("Generate 10 UNIQUE technical interview questions for a %s professional", user.Industry)
	if len(user.Skills) > 0 {
		intro += fmt.Sprintf(" with expertise in %s", strings.Join(user.Skills, ", "))
	}
	intro += "."

	previous := "None"
	if len(previousQuestions) > 0 {
		previous = strings.Join(previousQuestions, "\n- ")
	}

	return llm.PromptSpec{
		Persona: quizPersona,
		Intro:   intro,
		Task: []llm.Field{
			{Value: fmt.Sprintf("Quiz Seed: %d", seed)},
			{Value: "Do NOT repeat or paraphrase any of the following questions:\n- " + previous},
		},
		Rules: []string{
			"Vary difficulty (easy, medium, hard)",
			"Cover different concepts",
			"Avoid similar wording",
			"Each question must be multiple choice with exactly 4 options",
			"Correct answer must be one of the options",
		},
		OutputFormat: quizOutputFormat,
		Temperature:  0.6,
	}
}

// buildTipPrompt asks for one short study tip based on the missed questions.
func buildTipPrompt(industry string, wrong []QuestionResult) llm.PromptSpec {
	var b strings.Builder
	for i, q := range wrong {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Question: %q\nCorrect Answer: %q", q.Question, q.Answer)
	}

	return llm.PromptSpec{
		Persona: tipPersona,
		Intro:   fmt.Sprintf("The user answered the following %s interview questions incorrectly:", industry),
		Task: []llm.Field{
			{Value: b.String()},
		},
		Rules: []string{
			"Max 2 sentences",
			"Encouraging tone",
			"Focus on what to study or practice",
			"Do NOT mention mistakes explicitly",
		},
		Temperature: 0.4,
	}
}

package interviews

import "time"

// Question is one multiple-choice quiz question as returned by the model.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuestionResult records how the caller answered one question.
type QuestionResult struct {
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	UserAnswer  string `json:"userAnswer"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation"`
}

// Assessment is one completed quiz with its per-question results.
type Assessment struct {
	ID             string           `json:"id"`
	UserID         string           `json:"-"`
	QuizScore      float64          `json:"quizScore"`
	Questions      []QuestionResult `json:"questions"`
	Category       string           `json:"category"`
	ImprovementTip string           `json:"improvementTip,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// CategoryTechnical is the only category produced today.
const CategoryTechnical = "Technical"

package interviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/shared/telemetry"
	"careercoach-backend/internal/users"
)

// Service contains business logic for interview quizzes and assessments.
type Service struct {
	Repo  Repo
	Users users.Repo
	LLM   llm.Client
}

// GenerateQuiz asks the model for ten fresh multiple-choice questions for the
// caller's industry and skills. Nothing is persisted until SaveQuizResult.
func (s *Service) GenerateQuiz(ctx context.Context, userID string) ([]Question, error) {
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var previousQuestions []string
	last, ok, err := s.Repo.LatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if ok {
		for _, q := range last.Questions {
			previousQuestions = append(previousQuestions, q.Question)
		}
	}

	seed := time.Now().UnixMilli()
	text, err := s.LLM.Complete(ctx, buildQuizPrompt(user, previousQuestions, seed).Request())
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	return parseQuiz(text)
}

// parseQuiz accepts only a JSON object whose questions field is an array.
func parseQuiz(text string) ([]Question, error) {
	var envelope struct {
		Questions json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal([]byte(llm.StripCodeFence(text)), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuizFormat, err)
	}
	var questions []Question
	if err := json.Unmarshal(envelope.Questions, &questions); err != nil {
		return nil, fmt.Errorf("%w: questions is not an array", ErrInvalidQuizFormat)
	}
	if questions == nil {
		return nil, fmt.Errorf("%w: questions is not an array", ErrInvalidQuizFormat)
	}
	return questions, nil
}

// SaveQuizResult grades the caller's answers against the questions and
// persists an assessment. Answers are compared by exact string equality; a
// missing answer counts as wrong. When at least one answer is wrong, a single
// follow-up completion asks for a short improvement tip. A failing tip call is
// logged and the tip omitted, it never fails the save.
func (s *Service) SaveQuizResult(ctx context.Context, userID string, questions []Question, answers []string, score float64) (Assessment, error) {
	if len(questions) == 0 {
		return Assessment{}, ErrInvalidInput
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return Assessment{}, err
	}

	results := make([]QuestionResult, len(questions))
	var wrong []QuestionResult
	for i, q := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		results[i] = QuestionResult{
			Question:    q.Question,
			Answer:      q.CorrectAnswer,
			UserAnswer:  answer,
			IsCorrect:   q.CorrectAnswer == answer,
			Explanation: q.Explanation,
		}
		if !results[i].IsCorrect {
			wrong = append(wrong, results[i])
		}
	}

	tip := ""
	if len(wrong) > 0 {
		tip, err = s.LLM.Complete(ctx, buildTipPrompt(user.Industry, wrong).Request())
		if err != nil {
			telemetry.Warn("improvement tip generation failed", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
			tip = ""
		}
	}

	assessment := Assessment{
		ID:             uuid.NewString(),
		UserID:         userID,
		QuizScore:      score,
		Questions:      results,
		Category:       CategoryTechnical,
		ImprovementTip: tip,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, assessment); err != nil {
		return Assessment{}, err
	}
	return assessment, nil
}

// GetAssessments returns the caller's assessments oldest-first.
func (s *Service) GetAssessments(ctx context.Context, userID string) ([]Assessment, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.Repo.ListByUser(ctx, userID)
}

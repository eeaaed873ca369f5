package interviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/users"
)

const validQuiz = `{
  "questions": [
    {
      "question": "What does a nil map lookup return?",
      "options": ["panic", "zero value", "error", "false"],
      "correctAnswer": "zero value",
      "explanation": "Reading a nil map yields the zero value."
    },
    {
      "question": "Which keyword starts a goroutine?",
      "options": ["async", "spawn", "go", "thread"],
      "correctAnswer": "go",
      "explanation": "The go statement starts a goroutine."
    }
  ]
}`

// queueLLM returns canned responses in order, one per Complete call.
type queueLLM struct {
	responses []string
	errs      []error
	calls     int
	requests  []llm.CompletionRequest
}

func (s *queueLLM) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	i := s.calls
	s.calls++
	s.requests = append(s.requests, req)
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", errors.New("no canned response")
}

func newTestService(t *testing.T, client *queueLLM) *Service {
	t.Helper()
	userRepo := users.NewMemoryRepo()
	require.NoError(t, userRepo.Upsert(context.Background(), users.User{
		ID:    "user-1",
		Email: "dev@example.com",
	}))
	require.NoError(t, userRepo.UpdateProfile(context.Background(), "user-1", "Software", 5, []string{"Go", "SQL"}, "Backend developer"))
	return &Service{
		Repo:  NewMemoryRepo(),
		Users: userRepo,
		LLM:   client,
	}
}

func sampleQuestions() []Question {
	return []Question{
		{
			Question:      "What does a nil map lookup return?",
			Options:       []string{"panic", "zero value", "error", "false"},
			CorrectAnswer: "zero value",
			Explanation:   "Reading a nil map yields the zero value.",
		},
		{
			Question:      "Which keyword starts a goroutine?",
			Options:       []string{"async", "spawn", "go", "thread"},
			CorrectAnswer: "go",
			Explanation:   "The go statement starts a goroutine.",
		},
	}
}

func TestGenerateQuiz(t *testing.T) {
	client := &queueLLM{responses: []string{validQuiz}}
	svc := newTestService(t, client)

	questions, err := svc.GenerateQuiz(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "zero value", questions[0].CorrectAnswer)

	require.Equal(t, 1, client.calls)
	req := client.requests[0]
	assert.Contains(t, req.Prompt, "Software professional with expertise in Go, SQL")
	assert.Contains(t, req.Prompt, "Quiz Seed:")
	assert.Contains(t, req.Prompt, "- None")
	assert.InDelta(t, 0.6, req.Temperature, 0.001)
}

func TestGenerateQuizEmbedsPreviousQuestions(t *testing.T) {
	client := &queueLLM{responses: []string{"tip", validQuiz}}
	svc := newTestService(t, client)

	_, err := svc.SaveQuizResult(context.Background(), "user-1", sampleQuestions(), []string{"panic", "go"}, 50)
	require.NoError(t, err)

	_, err = svc.GenerateQuiz(context.Background(), "user-1")
	require.NoError(t, err)

	quizReq := client.requests[1]
	assert.Contains(t, quizReq.Prompt, "Do NOT repeat or paraphrase")
	assert.Contains(t, quizReq.Prompt, "What does a nil map lookup return?")
}

func TestParseQuizRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"not json":              "ten questions coming right up",
		"questions is a string": `{"questions": "oops"}`,
		"questions is a map":    `{"questions": {"q1": "x"}}`,
		"questions is null":     `{"questions": null}`,
		"questions is absent":   `{"category": "Technical"}`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseQuiz(text)
			require.ErrorIs(t, err, ErrInvalidQuizFormat)
		})
	}
}

func TestSaveQuizResultAllCorrectSkipsTip(t *testing.T) {
	client := &queueLLM{}
	svc := newTestService(t, client)

	assessment, err := svc.SaveQuizResult(context.Background(), "user-1", sampleQuestions(), []string{"zero value", "go"}, 100)
	require.NoError(t, err)

	assert.Zero(t, client.calls, "no tip call when every answer is right")
	assert.Equal(t, CategoryTechnical, assessment.Category)
	assert.Empty(t, assessment.ImprovementTip)
	for _, r := range assessment.Questions {
		assert.True(t, r.IsCorrect)
	}
}

func TestSaveQuizResultGradesByExactMatch(t *testing.T) {
	client := &queueLLM{responses: []string{"Keep practicing goroutines."}}
	svc := newTestService(t, client)

	// Second answer missing entirely, graded as wrong.
	assessment, err := svc.SaveQuizResult(context.Background(), "user-1", sampleQuestions(), []string{"Zero value"}, 0)
	require.NoError(t, err)

	require.Len(t, assessment.Questions, 2)
	assert.False(t, assessment.Questions[0].IsCorrect, "comparison is case-sensitive")
	assert.False(t, assessment.Questions[1].IsCorrect)
	assert.Equal(t, "", assessment.Questions[1].UserAnswer)

	require.Equal(t, 1, client.calls)
	tipReq := client.requests[0]
	assert.Contains(t, tipReq.Prompt, "Which keyword starts a goroutine?")
	assert.InDelta(t, 0.4, tipReq.Temperature, 0.001)
	assert.Equal(t, "Keep practicing goroutines.", assessment.ImprovementTip)
}

func TestSaveQuizResultTipFailureIsDowngraded(t *testing.T) {
	client := &queueLLM{errs: []error{errors.New("provider down")}}
	svc := newTestService(t, client)

	assessment, err := svc.SaveQuizResult(context.Background(), "user-1", sampleQuestions(), []string{"wrong", "wrong"}, 0)
	require.NoError(t, err, "tip failure must not fail the save")
	assert.Empty(t, assessment.ImprovementTip)

	stored, err := svc.GetAssessments(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestGetAssessmentsOldestFirst(t *testing.T) {
	svc := newTestService(t, &queueLLM{})
	now := time.Now().UTC()
	for i, id := range []string{"a-1", "a-2", "a-3"} {
		require.NoError(t, svc.Repo.Create(context.Background(), Assessment{
			ID:        id,
			UserID:    "user-1",
			Questions: []QuestionResult{{Question: "q"}},
			Category:  CategoryTechnical,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	stored, err := svc.GetAssessments(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "a-1", stored[0].ID)
	assert.Equal(t, "a-3", stored[2].ID)
}

func TestSaveQuizResultUnknownUser(t *testing.T) {
	client := &queueLLM{}
	svc := newTestService(t, client)

	_, err := svc.SaveQuizResult(context.Background(), "stranger", sampleQuestions(), nil, 0)
	require.ErrorIs(t, err, users.ErrNotFound)
	assert.Zero(t, client.calls)
}

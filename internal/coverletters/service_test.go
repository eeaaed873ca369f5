package coverletters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/users"
)

type stubLLM struct {
	response string
	err      error
	calls    int
	lastReq  llm.CompletionRequest
}

func (s *stubLLM) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestService(t *testing.T, client *stubLLM) (*Service, *users.MemoryRepo) {
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
	}, userRepo
}

func TestGeneratePersistsCompletedLetter(t *testing.T) {
	client := &stubLLM{response: "Dear Hiring Manager, ..."}
	svc, _ := newTestService(t, client)

	letter, err := svc.Generate(context.Background(), "user-1", "Backend Engineer", "Acme", "Build services")
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, letter.Status)
	assert.Equal(t, "Dear Hiring Manager, ...", letter.Content)
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.lastReq.Prompt, "Backend Engineer position at Acme")
	assert.Contains(t, client.lastReq.Prompt, "- Skills: Go, SQL")
	assert.InDelta(t, 0.5, client.lastReq.Temperature, 0.001)

	stored, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, letter.ID, stored[0].ID)
}

func TestGenerateEmptyCompletionWritesNothing(t *testing.T) {
	client := &stubLLM{err: llm.ErrEmptyCompletion}
	svc, _ := newTestService(t, client)

	_, err := svc.Generate(context.Background(), "user-1", "Backend Engineer", "Acme", "jd")
	require.ErrorIs(t, err, llm.ErrEmptyCompletion)

	stored, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGenerateUnknownUser(t *testing.T) {
	client := &stubLLM{response: "letter"}
	svc, _ := newTestService(t, client)

	_, err := svc.Generate(context.Background(), "stranger", "Backend Engineer", "Acme", "jd")
	require.ErrorIs(t, err, users.ErrNotFound)
	assert.Zero(t, client.calls, "no completion call for unknown user")
}

func TestGenerateWrapsProviderErrors(t *testing.T) {
	client := &stubLLM{err: errors.New("connection reset")}
	svc, _ := newTestService(t, client)

	_, err := svc.Generate(context.Background(), "user-1", "Backend Engineer", "Acme", "jd")
	require.ErrorIs(t, err, ErrGenerationFailed)
}

func TestGetAndDeleteAreOwnerScoped(t *testing.T) {
	client := &stubLLM{response: "letter"}
	svc, userRepo := newTestService(t, client)
	require.NoError(t, userRepo.Upsert(context.Background(), users.User{ID: "user-2", Email: "other@example.com"}))

	letter, err := svc.Generate(context.Background(), "user-1", "Backend Engineer", "Acme", "jd")
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "user-2", letter.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), "user-2", letter.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), "user-1", letter.ID))
	_, err = svc.Get(context.Background(), "user-1", letter.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

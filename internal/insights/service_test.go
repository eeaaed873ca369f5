package insights

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

const validPayload = `{
  "salaryRanges": [
    {"role": "Backend Engineer", "min": 90000, "max": 180000, "median": 130000, "location": "US"},
    {"role": "SRE", "min": 100000, "max": 190000, "median": 140000, "location": "US"}
  ],
  "growthRate": 12.5,
  "demandLevel": "High",
  "topSkills": ["Go", "SQL", "Kubernetes"],
  "marketOutlook": "Positive",
  "keyTrends": ["AI tooling", "Platform engineering"],
  "recommendedSkills": ["Terraform", "gRPC"]
}`

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

func TestGetInsightsGeneratesOnFirstCall(t *testing.T) {
	client := &stubLLM{response: validPayload}
	svc, _ := newTestService(t, client)

	insight, err := svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Software", insight.Industry)
	assert.Equal(t, "High", insight.DemandLevel)
	assert.InDelta(t, 12.5, insight.GrowthRate, 0.001)
	assert.Len(t, insight.SalaryRanges, 2)
	assert.Equal(t, insight.LastUpdated.Add(7*24*time.Hour), insight.NextUpdate)

	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.lastReq.Prompt, "Software industry")
	assert.InDelta(t, 0.2, client.lastReq.Temperature, 0.001)
}

func TestGetInsightsNeverRegenerates(t *testing.T) {
	client := &stubLLM{response: validPayload}
	svc, _ := newTestService(t, client)

	first, err := svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)

	// Even a stale NextUpdate does not trigger a refresh.
	second, err := svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls, "second call must not hit the model")
	assert.Equal(t, first.LastUpdated, second.LastUpdated)
	assert.Equal(t, first.TopSkills, second.TopSkills)
}

func TestGetInsightsToleratesCodeFence(t *testing.T) {
	client := &stubLLM{response: "```json\n" + validPayload + "\n```"}
	svc, _ := newTestService(t, client)

	insight, err := svc.GetInsights(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Positive", insight.MarketOutlook)
}

func TestGetInsightsRejectsBadPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":           "the market is great",
		"no salary ranges":   `{"salaryRanges": [], "growthRate": 1, "demandLevel": "High", "topSkills": ["Go"], "marketOutlook": "Positive", "keyTrends": ["x"], "recommendedSkills": ["y"]}`,
		"missing growthRate": `{"salaryRanges": [{"role": "Dev"}], "demandLevel": "High", "topSkills": ["Go"], "marketOutlook": "Positive", "keyTrends": ["x"], "recommendedSkills": ["y"]}`,
		"bad demand level":   `{"salaryRanges": [{"role": "Dev"}], "growthRate": 1, "demandLevel": "Extreme", "topSkills": ["Go"], "marketOutlook": "Positive", "keyTrends": ["x"], "recommendedSkills": ["y"]}`,
		"bad outlook":        `{"salaryRanges": [{"role": "Dev"}], "growthRate": 1, "demandLevel": "High", "topSkills": ["Go"], "marketOutlook": "Great", "keyTrends": ["x"], "recommendedSkills": ["y"]}`,
	}
	for name, response := range cases {
		t.Run(name, func(t *testing.T) {
			svc, _ := newTestService(t, &stubLLM{response: response})
			_, err := svc.GetInsights(context.Background(), "user-1")
			require.ErrorIs(t, err, ErrInvalidAIResponse)

			_, err = svc.Repo.GetByUser(context.Background(), "user-1")
			assert.ErrorIs(t, err, ErrNotFound, "rejected payloads must not be persisted")
		})
	}
}

func TestGetInsightsRequiresIndustry(t *testing.T) {
	client := &stubLLM{response: validPayload}
	svc, userRepo := newTestService(t, client)
	require.NoError(t, userRepo.Upsert(context.Background(), users.User{ID: "user-2", Email: "new@example.com"}))

	_, err := svc.GetInsights(context.Background(), "user-2")
	require.ErrorIs(t, err, ErrNoIndustry)
	assert.Zero(t, client.calls)
}

func TestGetInsightsUnknownUser(t *testing.T) {
	client := &stubLLM{response: validPayload}
	svc, _ := newTestService(t, client)

	_, err := svc.GetInsights(context.Background(), "stranger")
	require.ErrorIs(t, err, users.ErrNotFound)
	assert.Zero(t, client.calls)
}

func TestGetInsightsWrapsProviderErrors(t *testing.T) {
	svc, _ := newTestService(t, &stubLLM{err: errors.New("connection reset")})

	_, err := svc.GetInsights(context.Background(), "user-1")
	require.ErrorIs(t, err, ErrGenerationFailed)
}

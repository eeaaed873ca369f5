package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertFromAuthKeepsProfileFields(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	require.NoError(t, svc.UpsertFromAuth(ctx, User{ID: "user-1", Email: "dev@example.com"}))
	_, err := svc.UpdateProfile(ctx, "user-1", "Software", 5, []string{"Go", " SQL "}, "Backend developer")
	require.NoError(t, err)

	// A later login must not wipe onboarding data.
	require.NoError(t, svc.UpsertFromAuth(ctx, User{ID: "user-1", Email: "dev@example.com", FullName: "Dev User"}))

	user, err := svc.GetByID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Software", user.Industry)
	assert.Equal(t, []string{"Go", "SQL"}, user.Skills, "skills are trimmed")
	assert.Equal(t, "Dev User", user.FullName)
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := context.Background()
	require.NoError(t, svc.UpsertFromAuth(ctx, User{ID: "user-1", Email: "dev@example.com"}))

	_, err := svc.UpdateProfile(ctx, "user-1", "  ", 5, nil, "")
	assert.Error(t, err)

	_, err = svc.UpdateProfile(ctx, "user-1", "Software", -1, nil, "")
	assert.Error(t, err)

	_, err = svc.UpdateProfile(ctx, "missing", "Software", 1, nil, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

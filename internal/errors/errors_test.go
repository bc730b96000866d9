package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeOf(t *testing.T) {
	err := NewRepositoryNotFoundError("octocat", "missing", 404)
	wrapped := fmt.Errorf("fetch: %w", err)

	assert.Equal(t, ErrRepoNotFound, TypeOf(wrapped))
	assert.True(t, IsRepoNotFound(wrapped))
	assert.False(t, IsRateLimited(wrapped))
	assert.Equal(t, "Repository not found or API error (404)", Message(wrapped))

	var nf *RepositoryNotFoundError
	require.True(t, stderrors.As(wrapped, &nf))
	assert.Equal(t, "missing", nf.Name)

	assert.Equal(t, ErrInternal, TypeOf(stderrors.New("plain")))
	assert.Equal(t, "plain", Message(stderrors.New("plain")))
	assert.False(t, IsSchema(nil))
}

func TestRateLimitError(t *testing.T) {
	reset := time.Unix(1700000000, 0)
	err := NewRateLimitError(reset, 60, 0)

	assert.True(t, IsRateLimited(err))
	var rl *RateLimitError
	require.True(t, stderrors.As(err, &rl))
	assert.Equal(t, reset, rl.ResetTime)
	assert.Equal(t, 60, rl.Limit)

	assert.Equal(t, ErrRateLimited, TypeOf(&RateLimitError{}))
}

func TestValidationPredicates(t *testing.T) {
	assert.True(t, IsValidationError(NewInvalidURLError("bad", nil)))
	assert.True(t, IsValidationError(NewValidationError("bad", nil)))
	assert.False(t, IsValidationError(NewBackendError("down", nil)))

	cause := stderrors.New("dial tcp: refused")
	err := NewNetworkError("failed to reach GitHub API", cause)
	assert.True(t, IsNetwork(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "NETWORK_ERROR")
}

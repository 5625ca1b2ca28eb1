package view

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matematik7/octofit-go/api"
)

func TestStateResolve(t *testing.T) {
	s := NewState()
	assert.True(t, s.IsLoading())
	assert.False(t, s.Empty())

	require.NoError(t, s.Resolve([]api.Record{{"name": "a"}}))
	assert.Equal(t, Loaded, s.Status())
	assert.Equal(t, 1, s.Count())

	assert.Equal(t, ErrSettled, s.Fail(errors.New("late")))
	assert.True(t, s.IsLoaded())
	assert.Empty(t, s.Message())
}

func TestStateResolveNil(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Resolve(nil))
	assert.True(t, s.Empty())
	assert.NotNil(t, s.Records())
}

func TestStateFail(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Fail(&api.StatusError{Code: 500}))
	assert.Equal(t, Failed, s.Status())
	assert.Equal(t, "error", s.StatusName())
	assert.Contains(t, s.Message(), "500")

	assert.Equal(t, ErrSettled, s.Resolve([]api.Record{{}}))
	assert.True(t, s.IsFailed())
	assert.Zero(t, s.Count())
}

func TestActionIsInert(t *testing.T) {
	action := Action{Name: "edit", Label: "Edit"}
	assert.False(t, action.Enabled())

	s := NewState()
	require.NoError(t, s.Resolve([]api.Record{{"name": "a"}}))

	err := action.Invoke(s)
	assert.Equal(t, ErrNotImplemented, errors.Cause(err))
	assert.Equal(t, Loaded, s.Status())
	assert.Equal(t, []api.Record{{"name": "a"}}, s.Records())
}

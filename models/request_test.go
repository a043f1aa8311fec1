package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestTransitions(t *testing.T) {
	r := &Request{Type: RequestBreakdown, Status: RequestPending}
	require.NoError(t, r.Transition(RequestApproved))
	require.NoError(t, r.Transition(RequestCompleted))
	assert.Equal(t, RequestCompleted, r.Status)

	err := r.Transition(RequestPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, RequestCompleted, r.Status)
}

func TestRequestRejectOnlyFromPending(t *testing.T) {
	r := &Request{Status: RequestPending}
	require.NoError(t, r.Transition(RequestRejected))
	assert.ErrorIs(t, r.Transition(RequestApproved), ErrInvalidTransition)

	approved := &Request{Status: RequestApproved}
	assert.False(t, approved.CanTransition(RequestRejected))
	assert.False(t, approved.CanTransition(RequestPending))

	pending := &Request{Status: RequestPending}
	assert.False(t, pending.CanTransition(RequestCompleted))
}

func TestRequestTypeValid(t *testing.T) {
	assert.True(t, RequestNewHire.Valid())
	assert.True(t, RequestBreakdown.Valid())
	assert.True(t, RequestReturn.Valid())
	assert.False(t, RequestType("repair").Valid())
}

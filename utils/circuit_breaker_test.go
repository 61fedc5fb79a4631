package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend down")

func failing() error { return errBackend }
func succeeding() error { return nil }

func TestCircuitBreaker_StaysClosedOnSuccess(t *testing.T) {
	cb := NewCircuitBreaker("test")

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Execute(succeeding))
	}
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_TripsAfterConsecutiveFailures(t *testing.T) {
	cb := NewCircuitBreaker("test")

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cb.Execute(failing), errBackend)
	}
	assert.Equal(t, StateOpen, cb.State())

	// further calls are refused without reaching the backend
	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := NewCircuitBreaker("test")

	for i := 0; i < 4; i++ {
		_ = cb.Execute(failing)
	}
	require.NoError(t, cb.Execute(succeeding))

	// the streak restarted, so four more failures do not trip it
	for i := 0; i < 4; i++ {
		_ = cb.Execute(failing)
	}
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	cb := NewCircuitBreaker("test")

	for i := 0; i < 5; i++ {
		_ = cb.Execute(failing)
	}
	require.Equal(t, StateOpen, cb.State())

	// rewind the trip time instead of sleeping through the cooldown
	cb.mutex.Lock()
	cb.openedAt = time.Now().Add(-cb.cooldown)
	cb.mutex.Unlock()

	assert.Equal(t, StateHalfOpen, cb.State())

	// a successful probe closes the breaker again
	require.NoError(t, cb.Execute(succeeding))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	cb := NewCircuitBreaker("test")

	for i := 0; i < 5; i++ {
		_ = cb.Execute(failing)
	}

	cb.mutex.Lock()
	cb.openedAt = time.Now().Add(-cb.cooldown)
	cb.mutex.Unlock()
	require.Equal(t, StateHalfOpen, cb.State())

	// one failure in half-open is enough to reopen
	assert.ErrorIs(t, cb.Execute(failing), errBackend)
	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(succeeding), ErrBreakerOpen)
}

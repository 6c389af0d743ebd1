package middleware

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"autohuis/backoffice-leads/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newTestLimiter(rps float64, burst int) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(rps, burst)
	rl.now = clock.Now
	rl.lastPrune = clock.now
	return rl, clock
}

func TestRateLimiter_BurstThenRefill(t *testing.T) {
	rl, clock := newTestLimiter(1, 2)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "burst exhausted")

	clock.now = clock.now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"), "one token refilled")
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl, _ := newTestLimiter(1, 1)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl, _ := newTestLimiter(0, 0)

	for i := 0; i < 100; i++ {
		require.True(t, rl.Allow("10.0.0.1"))
	}
}

func TestRateLimiter_PrunesIdleVisitors(t *testing.T) {
	rl, clock := newTestLimiter(1, 1)

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")
	assert.Equal(t, 2, rl.Len())

	clock.now = clock.now.Add(visitorTTL + time.Minute)
	rl.Allow("10.0.0.3")

	assert.Equal(t, 1, rl.Len())
}

func TestRateLimit_Middleware(t *testing.T) {
	rl, _ := newTestLimiter(1, 1)
	router := newTestRouter(RateLimit(rl))

	first := serve(router, http.MethodPost, "/api/v1/leads/parse", nil)
	assert.Equal(t, http.StatusOK, first.Code)

	second := serve(router, http.MethodPost, "/api/v1/leads/parse", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "Rate limit exceeded")
}

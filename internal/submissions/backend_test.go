package submissions

import (
	"context"
	"errors"
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techsummit/backend/internal/clock"
)

var tokenPattern = regexp.MustCompile(`^[0-9A-Z]{9}$`)

// instantBackend keeps the default success rates but drops the latency.
func instantBackend(seed uint64, opts ...Option) *SimulatedBackend {
	base := []Option{WithRand(rand.New(rand.NewPCG(seed, seed+1)))}
	for kind, p := range DefaultProfiles {
		p.Latency = 0
		base = append(base, WithProfile(kind, p))
	}
	return NewSimulatedBackend(nil, append(base, opts...)...)
}

func TestSimulatedBackend_FailureRates(t *testing.T) {
	t.Parallel()

	const trials = 20000
	tests := []struct {
		kind Kind
		want float64
	}{
		{KindApplication, 0.10},
		{KindNomination, 0.15},
		{KindBooking, 0.10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			b := instantBackend(42)
			failures := 0
			for i := 0; i < trials; i++ {
				_, err := b.Submit(context.Background(), tt.kind, nil)
				if err != nil {
					require.ErrorIs(t, err, ErrSubmissionFailed)
					failures++
				}
			}
			rate := float64(failures) / trials
			assert.InDelta(t, tt.want, rate, 0.015, "failure rate for %s", tt.kind)
		})
	}
}

func TestSimulatedBackend_TokensAreDistinct(t *testing.T) {
	t.Parallel()

	b := instantBackend(7, WithProfile(KindApplication, Profile{SuccessRate: 1}))
	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		r, err := b.Submit(context.Background(), KindApplication, nil)
		require.NoError(t, err)
		require.Regexp(t, tokenPattern, r.Token)
		require.False(t, seen[r.Token], "duplicate token %s", r.Token)
		seen[r.Token] = true
	}
}

func TestSimulatedBackend_BookingNumber(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1709287654321)
	b := instantBackend(1,
		WithProfile(KindBooking, Profile{SuccessRate: 1}),
		WithClock(clock.NewFixed(now)),
	)

	r, err := b.Submit(context.Background(), KindBooking, nil)
	require.NoError(t, err)

	assert.Equal(t, "TP654321", r.Token)
	assert.Equal(t, now.UTC(), r.AcceptedAt)
}

func TestSimulatedBackend_FailureMessage(t *testing.T) {
	t.Parallel()

	b := instantBackend(1, WithProfile(KindNomination, Profile{
		SuccessRate:    0,
		FailureMessage: "Failed to submit nomination. Please try again.",
	}))

	_, err := b.Submit(context.Background(), KindNomination, nil)

	var subErr *SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, KindNomination, subErr.Kind)
	assert.Equal(t, "Failed to submit nomination. Please try again.", err.Error())
}

func TestSimulatedBackend_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := instantBackend(1).Submit(context.Background(), Kind("newsletter"), nil)
	assert.ErrorIs(t, err, ErrSubmissionFailed)
}

func TestSimulatedBackend_WaitsLatency(t *testing.T) {
	t.Parallel()

	b := NewSimulatedBackend(nil, WithProfile(KindApplication, Profile{Latency: 30 * time.Millisecond, SuccessRate: 1}))

	start := time.Now()
	_, err := b.Submit(context.Background(), KindApplication, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSimulatedBackend_ContextCanceled(t *testing.T) {
	t.Parallel()

	b := NewSimulatedBackend(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := b.Submit(ctx, KindApplication, nil)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDefaultProfiles(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1500*time.Millisecond, DefaultProfiles[KindApplication].Latency)
	assert.Equal(t, 1200*time.Millisecond, DefaultProfiles[KindNomination].Latency)
	assert.Equal(t, 1500*time.Millisecond, DefaultProfiles[KindBooking].Latency)
	assert.Equal(t, 0.90, DefaultProfiles[KindApplication].SuccessRate)
	assert.Equal(t, 0.85, DefaultProfiles[KindNomination].SuccessRate)
	assert.Equal(t, 0.90, DefaultProfiles[KindBooking].SuccessRate)
}

func TestBookingNumber_ShortTimestamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TP1234", bookingNumber(time.UnixMilli(1234)))
}

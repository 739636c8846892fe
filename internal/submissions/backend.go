package submissions

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/techsummit/backend/internal/clock"
)

// Kind identifies which form or flow a submission belongs to.
type Kind string

const (
	KindApplication Kind = "speaker_application"
	KindNomination  Kind = "speaker_nomination"
	KindBooking     Kind = "ticket_booking"
)

// ErrSubmissionFailed marks every simulated or remote submission failure. It is always retryable.
var ErrSubmissionFailed = errors.New("submission failed")

// SubmissionError carries the human readable failure message shown to the user.
type SubmissionError struct {
	Kind    Kind
	Message string
}

func (e *SubmissionError) Error() string { return e.Message }

func (e *SubmissionError) Unwrap() error { return ErrSubmissionFailed }

// Profile describes how a simulated submission behaves.
type Profile struct {
	Latency        time.Duration
	SuccessRate    float64
	FailureMessage string
}

// DefaultProfiles are the latencies and success rates of the demo backend.
var DefaultProfiles = map[Kind]Profile{
	KindApplication: {
		Latency:        1500 * time.Millisecond,
		SuccessRate:    0.90,
		FailureMessage: "Failed to submit application. Please try again.",
	},
	KindNomination: {
		Latency:        1200 * time.Millisecond,
		SuccessRate:    0.85,
		FailureMessage: "Failed to submit nomination. Please try again.",
	},
	KindBooking: {
		Latency:        1500 * time.Millisecond,
		SuccessRate:    0.90,
		FailureMessage: "Booking failed. Please try again.",
	},
}

// Receipt is what a backend hands back for an accepted submission.
type Receipt struct {
	Token      string
	AcceptedAt time.Time
}

// Backend accepts submissions. The simulated backend stands in for a form intake
// service; a network client can replace it as long as it keeps the token formats.
type Backend interface {
	Submit(ctx context.Context, kind Kind, payload any) (Receipt, error)
}

const (
	tokenLength   = 9
	tokenAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	bookingPrefix = "TP"
)

// SimulatedBackend waits a fixed latency and then fails at random.
type SimulatedBackend struct {
	profiles map[Kind]Profile
	clock    clock.Clock
	logger   *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a SimulatedBackend.
type Option func(*SimulatedBackend)

// WithProfile overrides the behavior of one submission kind.
func WithProfile(kind Kind, p Profile) Option {
	return func(b *SimulatedBackend) { b.profiles[kind] = p }
}

// WithRand sets the random source used for failures and tokens.
func WithRand(r *rand.Rand) Option {
	return func(b *SimulatedBackend) { b.rng = r }
}

// WithClock sets the clock used for booking confirmation numbers.
func WithClock(c clock.Clock) Option {
	return func(b *SimulatedBackend) { b.clock = c }
}

// NewSimulatedBackend creates the demo backend with DefaultProfiles.
func NewSimulatedBackend(logger *zap.Logger, opts ...Option) *SimulatedBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &SimulatedBackend{
		profiles: make(map[Kind]Profile, len(DefaultProfiles)),
		clock:    clock.NewSystem(),
		logger:   logger,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for k, p := range DefaultProfiles {
		b.profiles[k] = p
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Submit implements Backend.
func (b *SimulatedBackend) Submit(ctx context.Context, kind Kind, payload any) (Receipt, error) {
	p, ok := b.profiles[kind]
	if !ok {
		return Receipt{}, &SubmissionError{Kind: kind, Message: "Unknown submission type."}
	}
	if err := wait(ctx, p.Latency); err != nil {
		return Receipt{}, err
	}

	b.mu.Lock()
	roll := b.rng.Float64()
	var token string
	if roll < p.SuccessRate && kind != KindBooking {
		token = b.randomToken()
	}
	b.mu.Unlock()

	if roll >= p.SuccessRate {
		b.logger.Debug("simulated submission failure", zap.String("kind", string(kind)), zap.Float64("roll", roll))
		return Receipt{}, &SubmissionError{Kind: kind, Message: p.FailureMessage}
	}

	now := b.clock.Now()
	if kind == KindBooking {
		token = bookingNumber(now)
	}
	b.logger.Debug("simulated submission accepted", zap.String("kind", string(kind)), zap.String("token", token), zap.Any("payload", payload))
	return Receipt{Token: token, AcceptedAt: now}, nil
}

// randomToken must be called with b.mu held.
func (b *SimulatedBackend) randomToken() string {
	buf := make([]byte, tokenLength)
	for i := range buf {
		buf[i] = tokenAlphabet[b.rng.IntN(len(tokenAlphabet))]
	}
	return string(buf)
}

// bookingNumber is "TP" followed by the last six digits of the Unix millisecond time.
func bookingNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return bookingPrefix + ms
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/techsummit/backend/internal/clock"
	"github.com/techsummit/backend/internal/models"
	"github.com/techsummit/backend/internal/schedule"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSpeakerNotFound = errors.New("speaker not found")
	ErrTierNotFound    = errors.New("ticket tier not found")
	ErrInvalidCatalog  = errors.New("invalid catalog")
)

// Snapshot is an immutable view of the catalog. Callers must not modify its slices.
type Snapshot struct {
	Sessions []models.Session
	Speakers []models.Speaker
	Tickets  []models.TicketTier
	Facets   schedule.Facets
	LoadedAt time.Time

	sessionIdx map[int]int
	speakerIdx map[int]int
	tierIdx    map[string]int
}

func newSnapshot(sessions []models.Session, speakers []models.Speaker, tickets []models.TicketTier, at time.Time) (*Snapshot, error) {
	s := &Snapshot{
		Sessions:   sessions,
		Speakers:   speakers,
		Tickets:    tickets,
		LoadedAt:   at,
		sessionIdx: make(map[int]int, len(sessions)),
		speakerIdx: make(map[int]int, len(speakers)),
		tierIdx:    make(map[string]int, len(tickets)),
	}
	for i, ss := range sessions {
		if _, dup := s.sessionIdx[ss.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate session id %d", ErrInvalidCatalog, ss.ID)
		}
		s.sessionIdx[ss.ID] = i
	}
	for i, sp := range speakers {
		if _, dup := s.speakerIdx[sp.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate speaker id %d", ErrInvalidCatalog, sp.ID)
		}
		s.speakerIdx[sp.ID] = i
	}
	for i, t := range tickets {
		if t.Tier == "" {
			return nil, fmt.Errorf("%w: ticket tier without a name", ErrInvalidCatalog)
		}
		if _, dup := s.tierIdx[t.Tier]; dup {
			return nil, fmt.Errorf("%w: duplicate ticket tier %q", ErrInvalidCatalog, t.Tier)
		}
		s.tierIdx[t.Tier] = i
	}
	s.Facets = schedule.ExtractFacets(sessions).WithSpeakerNames(speakers)
	return s, nil
}

// SessionByID returns the session with id.
func (s *Snapshot) SessionByID(id int) (models.Session, error) {
	i, ok := s.sessionIdx[id]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return s.Sessions[i], nil
}

// SpeakerByID returns the speaker with id.
func (s *Snapshot) SpeakerByID(id int) (models.Speaker, error) {
	i, ok := s.speakerIdx[id]
	if !ok {
		return models.Speaker{}, ErrSpeakerNotFound
	}
	return s.Speakers[i], nil
}

// Speaker resolves an optional speaker reference. A dangling id resolves to nil.
func (s *Snapshot) Speaker(id *int) *models.Speaker {
	if id == nil {
		return nil
	}
	sp, err := s.SpeakerByID(*id)
	if err != nil {
		return nil
	}
	return &sp
}

// SessionsByTrack returns the sessions of track in catalog order.
func (s *Snapshot) SessionsByTrack(track string) []models.Session {
	return schedule.FilterSessions(s.Sessions, schedule.Filters{Track: track})
}

// SessionsBySpeaker returns the sessions presented by speakerID in catalog order.
func (s *Snapshot) SessionsBySpeaker(speakerID int) []models.Session {
	return schedule.FilterSessions(s.Sessions, schedule.Filters{SpeakerID: &speakerID})
}

// TicketByTier returns the tier named tier.
func (s *Snapshot) TicketByTier(tier string) (models.TicketTier, error) {
	i, ok := s.tierIdx[tier]
	if !ok {
		return models.TicketTier{}, ErrTierNotFound
	}
	return s.Tickets[i], nil
}

// Store holds the current catalog snapshot and refreshes it from a Source.
type Store struct {
	source Source
	clock  clock.Clock
	logger *zap.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore creates a store with an empty snapshot. Call Reload before serving.
func NewStore(source Source, c clock.Clock, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		c = clock.NewSystem()
	}
	empty, _ := newSnapshot(nil, nil, nil, time.Time{})
	return &Store{source: source, clock: c, logger: logger, snap: empty}
}

// Snapshot returns the current catalog view.
func (st *Store) Snapshot() *Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap
}

// Reload fetches sessions, speakers and tickets concurrently and swaps the snapshot
// only when all three succeed. On error the previous snapshot stays in place.
func (st *Store) Reload(ctx context.Context) error {
	var (
		sessions []models.Session
		speakers []models.Speaker
		tickets  []models.TicketTier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if sessions, err = st.source.Sessions(gctx); err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if speakers, err = st.source.Speakers(gctx); err != nil {
			return fmt.Errorf("load speakers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if tickets, err = st.source.Tickets(gctx); err != nil {
			return fmt.Errorf("load tickets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		st.logger.Error("catalog reload failed, keeping previous snapshot", zap.Error(err))
		return err
	}

	snap, err := newSnapshot(sessions, speakers, tickets, st.clock.Now())
	if err != nil {
		st.logger.Error("catalog rejected, keeping previous snapshot", zap.Error(err))
		return err
	}

	st.mu.Lock()
	st.snap = snap
	st.mu.Unlock()

	st.logger.Info("catalog loaded",
		zap.Int("sessions", len(sessions)),
		zap.Int("speakers", len(speakers)),
		zap.Int("tickets", len(tickets)),
	)
	return nil
}

// Watch reloads the catalog every interval until ctx is done. Failed reloads are logged.
func (st *Store) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = st.Reload(ctx)
		}
	}
}

// SessionByID looks up a session in the current snapshot.
func (st *Store) SessionByID(id int) (models.Session, error) { return st.Snapshot().SessionByID(id) }

// SpeakerByID looks up a speaker in the current snapshot.
func (st *Store) SpeakerByID(id int) (models.Speaker, error) { return st.Snapshot().SpeakerByID(id) }

// SessionsByTrack lists the sessions of a track in the current snapshot.
func (st *Store) SessionsByTrack(track string) []models.Session {
	return st.Snapshot().SessionsByTrack(track)
}

// SessionsBySpeaker lists a speaker's sessions in the current snapshot.
func (st *Store) SessionsBySpeaker(speakerID int) []models.Session {
	return st.Snapshot().SessionsBySpeaker(speakerID)
}

// TicketByTier looks up a ticket tier in the current snapshot.
func (st *Store) TicketByTier(tier string) (models.TicketTier, error) {
	return st.Snapshot().TicketByTier(tier)
}

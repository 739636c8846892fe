package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techsummit/backend/internal/models"
)

// PostgresSource reads the catalog tables created by the embedded migrations.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a catalog source backed by pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Sessions returns all sessions in display order.
func (s *PostgresSource) Sessions(ctx context.Context) ([]models.Session, error) {
	const q = `SELECT id, title, description, track, start_time, end_time, room, speaker_id
		FROM sessions ORDER BY position, id`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSession)
}

// Speakers returns the speaker directory.
func (s *PostgresSource) Speakers(ctx context.Context) ([]models.Speaker, error) {
	const q = `SELECT id, name, title, company, bio, photo FROM speakers ORDER BY id`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSpeaker)
}

// Tickets returns the ticket tiers in display order.
func (s *PostgresSource) Tickets(ctx context.Context) ([]models.TicketTier, error) {
	const q = `SELECT tier, price::float8, description, perks, available
		FROM ticket_tiers ORDER BY position, tier`
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanTicketTier)
}

func scanSession(row pgx.CollectableRow) (models.Session, error) {
	var ss models.Session
	err := row.Scan(&ss.ID, &ss.Title, &ss.Description, &ss.Track, &ss.StartTime, &ss.EndTime, &ss.Room, &ss.SpeakerID)
	return ss, err
}

func scanSpeaker(row pgx.CollectableRow) (models.Speaker, error) {
	var sp models.Speaker
	err := row.Scan(&sp.ID, &sp.Name, &sp.Title, &sp.Company, &sp.Bio, &sp.Photo)
	return sp, err
}

func scanTicketTier(row pgx.CollectableRow) (models.TicketTier, error) {
	var t models.TicketTier
	err := row.Scan(&t.Tier, &t.Price, &t.Description, &t.Perks, &t.Available)
	return t, err
}

package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/techsummit/backend/internal/models"
)

// Object names shared by the file based sources.
const (
	SessionsObject = "sessions.json"
	SpeakersObject = "speakers.json"
	TicketsObject  = "tickets.json"
)

// Source loads the raw conference catalog.
type Source interface {
	Sessions(ctx context.Context) ([]models.Session, error)
	Speakers(ctx context.Context) ([]models.Speaker, error)
	Tickets(ctx context.Context) ([]models.TicketTier, error)
}

//go:embed data/*.json
var seedFS embed.FS

// EmbeddedSource serves the catalog compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the default catalog source.
func NewEmbeddedSource() EmbeddedSource { return EmbeddedSource{} }

func (EmbeddedSource) Sessions(ctx context.Context) ([]models.Session, error) {
	var out []models.Session
	return out, readEmbedded(SessionsObject, &out)
}

func (EmbeddedSource) Speakers(ctx context.Context) ([]models.Speaker, error) {
	var out []models.Speaker
	return out, readEmbedded(SpeakersObject, &out)
}

func (EmbeddedSource) Tickets(ctx context.Context) ([]models.TicketTier, error) {
	var out []models.TicketTier
	return out, readEmbedded(TicketsObject, &out)
}

func readEmbedded(name string, v any) error {
	data, err := seedFS.ReadFile("data/" + name)
	if err != nil {
		return fmt.Errorf("read embedded %s: %w", name, err)
	}
	return decode(name, data, v)
}

func decode(name string, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// ObjectReader fetches a named object, e.g. from a bucket.
type ObjectReader interface {
	ReadObject(ctx context.Context, name string) ([]byte, error)
}

// ObjectSource reads the catalog as three JSON documents from an ObjectReader (S3 in production).
type ObjectSource struct {
	reader ObjectReader
}

// NewObjectSource creates a source backed by r.
func NewObjectSource(r ObjectReader) *ObjectSource {
	return &ObjectSource{reader: r}
}

func (s *ObjectSource) Sessions(ctx context.Context) ([]models.Session, error) {
	var out []models.Session
	return out, s.read(ctx, SessionsObject, &out)
}

func (s *ObjectSource) Speakers(ctx context.Context) ([]models.Speaker, error) {
	var out []models.Speaker
	return out, s.read(ctx, SpeakersObject, &out)
}

func (s *ObjectSource) Tickets(ctx context.Context) ([]models.TicketTier, error) {
	var out []models.TicketTier
	return out, s.read(ctx, TicketsObject, &out)
}

func (s *ObjectSource) read(ctx context.Context, name string, v any) error {
	data, err := s.reader.ReadObject(ctx, name)
	if err != nil {
		return err
	}
	return decode(name, data, v)
}

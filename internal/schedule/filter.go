package schedule

import (
	"strings"

	"github.com/techsummit/backend/internal/models"
)

// Filters are the active facet selections. Zero values mean "not set".
type Filters struct {
	Track     string `json:"track,omitempty"`
	Topic     string `json:"topic,omitempty"`
	SpeakerID *int   `json:"speakerId,omitempty"`
}

// Active reports whether any filter field is set.
func (f Filters) Active() bool {
	return f.Track != "" || f.Topic != "" || f.SpeakerID != nil
}

// Match reports whether s satisfies every set field of f.
func (f Filters) Match(s models.Session) bool {
	if f.Track != "" && s.Track != f.Track {
		return false
	}
	if f.Topic != "" {
		text := strings.ToLower(s.Title + " " + s.Description + " " + s.Track)
		if !strings.Contains(text, strings.ToLower(f.Topic)) {
			return false
		}
	}
	if f.SpeakerID != nil && !s.HasSpeaker(*f.SpeakerID) {
		return false
	}
	return true
}

// FilterSessions returns the sessions matching all active filters, in input order.
// With no active filter the input is returned unchanged.
func FilterSessions(sessions []models.Session, f Filters) []models.Session {
	if !f.Active() {
		return sessions
	}
	return Select(sessions, f.Match)
}

// Select keeps the sessions for which keep returns true, preserving order.
func Select(sessions []models.Session, keep func(models.Session) bool) []models.Session {
	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

package models

import "fmt"

// Session is one scheduled conference talk or workshop.
type Session struct {
	ID          int    `json:"Id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Track       string `json:"track"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Room        string `json:"room"`
	SpeakerID   *int   `json:"speakerId,omitempty"`
}

// TimeSlot returns the "start - end" label sessions are grouped under.
func (s Session) TimeSlot() string {
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// HasSpeaker reports whether the session references speakerID.
func (s Session) HasSpeaker(speakerID int) bool {
	return s.SpeakerID != nil && *s.SpeakerID == speakerID
}

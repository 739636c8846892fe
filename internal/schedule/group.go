package schedule

import "github.com/techsummit/backend/internal/models"

// DayOneSize is how many sessions (by position) belong to the first day.
const DayOneSize = 6

// Days holds sessions split into the two conference days.
type Days struct {
	Day1 []models.Session `json:"day1"`
	Day2 []models.Session `json:"day2"`
}

// PartitionByDay splits sessions by position: the first DayOneSize go to Day1,
// the rest to Day2. No date information is consulted.
func PartitionByDay(sessions []models.Session) Days {
	cut := DayOneSize
	if len(sessions) < cut {
		cut = len(sessions)
	}
	return Days{
		Day1: append([]models.Session(nil), sessions[:cut]...),
		Day2: append([]models.Session(nil), sessions[cut:]...),
	}
}

// Day returns the sessions of day n (1 or 2). Any other n yields nil.
func (d Days) Day(n int) []models.Session {
	switch n {
	case 1:
		return d.Day1
	case 2:
		return d.Day2
	}
	return nil
}

// TimeSlot is a group of sessions sharing the same start and end time.
type TimeSlot struct {
	Key      string           `json:"timeSlot"`
	Sessions []models.Session `json:"sessions"`
}

// GroupByTimeSlot groups sessions by their "start - end" key. Groups appear in
// first-occurrence order and keep the input order of their members.
func GroupByTimeSlot(sessions []models.Session) []TimeSlot {
	index := make(map[string]int)
	var slots []TimeSlot
	for _, s := range sessions {
		key := s.TimeSlot()
		i, ok := index[key]
		if !ok {
			i = len(slots)
			index[key] = i
			slots = append(slots, TimeSlot{Key: key})
		}
		slots[i].Sessions = append(slots[i].Sessions, s)
	}
	return slots
}

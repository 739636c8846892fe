package schedule

import "github.com/techsummit/backend/internal/models"

// Options configures Build.
type Options struct {
	// Keep, when set, narrows the sessions before the day split.
	Keep func(models.Session) bool
	// Day selects which day to group (1 or 2). Zero defaults to day 1.
	Day int
}

// Schedule is the renderable structure for one conference day.
type Schedule struct {
	Day           int        `json:"day"`
	Total         int        `json:"total"`
	DayCount      int        `json:"dayCount"`
	OtherDayCount int        `json:"otherDayCount"`
	TimeSlots     []TimeSlot `json:"timeSlots"`
}

// Build filters sessions, splits them into days and groups the selected day by time slot.
// Without Keep it is the unfiltered schedule.
func Build(sessions []models.Session, opts Options) Schedule {
	selected := sessions
	if opts.Keep != nil {
		selected = Select(sessions, opts.Keep)
	}
	day := opts.Day
	if day != 2 {
		day = 1
	}
	days := PartitionByDay(selected)
	current := days.Day(day)
	other := days.Day(3 - day)
	slots := GroupByTimeSlot(current)
	if slots == nil {
		slots = []TimeSlot{}
	}
	return Schedule{
		Day:           day,
		Total:         len(selected),
		DayCount:      len(current),
		OtherDayCount: len(other),
		TimeSlots:     slots,
	}
}

// ForFilters builds the day schedule for the given facet selections.
func ForFilters(sessions []models.Session, f Filters, day int) Schedule {
	opts := Options{Day: day}
	if f.Active() {
		opts.Keep = f.Match
	}
	return Build(sessions, opts)
}

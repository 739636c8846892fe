package sessions

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techsummit/backend/internal/catalog"
	"github.com/techsummit/backend/internal/models"
	"github.com/techsummit/backend/internal/schedule"
	"github.com/techsummit/backend/pkg/response"
)

// Catalog provides the current catalog snapshot.
type Catalog interface {
	Snapshot() *catalog.Snapshot
}

// FilterQuery is the query string accepted by GET /sessions and GET /schedule.
type FilterQuery struct {
	Track     string `form:"track"`
	Topic     string `form:"topic"`
	SpeakerID *int   `form:"speaker_id" binding:"omitempty,min=1"`
	Day       int    `form:"day" binding:"omitempty,oneof=1 2"`
}

// Filters converts the query into schedule filters.
func (q FilterQuery) Filters() schedule.Filters {
	return schedule.Filters{Track: q.Track, Topic: q.Topic, SpeakerID: q.SpeakerID}
}

// SessionView is a session with its speaker resolved. Speaker is null when the
// session has no speaker or references one missing from the directory.
type SessionView struct {
	models.Session
	Speaker *models.Speaker `json:"speaker"`
}

// TimeSlotView is one time slot of the rendered schedule.
type TimeSlotView struct {
	Key      string        `json:"timeSlot"`
	Sessions []SessionView `json:"sessions"`
}

// ScheduleView is the response of GET /schedule.
type ScheduleView struct {
	Filters       schedule.Filters `json:"filters"`
	Facets        schedule.Facets  `json:"facets"`
	Day           int              `json:"day"`
	Total         int              `json:"total"`
	DayCount      int              `json:"dayCount"`
	OtherDayCount int              `json:"otherDayCount"`
	TimeSlots     []TimeSlotView   `json:"timeSlots"`
}

// Handler handles session and schedule HTTP endpoints.
type Handler struct {
	catalog Catalog
	logger  *zap.Logger
}

// NewHandler creates a sessions handler.
func NewHandler(c Catalog, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{catalog: c, logger: logger}
}

// List handles GET /sessions with optional track, topic and speaker_id filters.
func (h *Handler) List(c *gin.Context) {
	var q FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationFailed(c, "invalid query: "+err.Error())
		return
	}
	snap := h.catalog.Snapshot()
	response.OK(c, viewSessions(snap, schedule.FilterSessions(snap.Sessions, q.Filters())))
}

// GetByID handles GET /sessions/:id.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session id")
		return
	}
	snap := h.catalog.Snapshot()
	s, err := snap.SessionByID(id)
	if err != nil {
		response.NotFound(c, "session not found")
		return
	}
	response.OK(c, SessionView{Session: s, Speaker: snap.Speaker(s.SpeakerID)})
}

// Facets handles GET /sessions/facets.
func (h *Handler) Facets(c *gin.Context) {
	response.OK(c, h.catalog.Snapshot().Facets)
}

// ByTrack handles GET /tracks/:track/sessions.
func (h *Handler) ByTrack(c *gin.Context) {
	track := c.Param("track")
	if track == "" {
		response.BadRequest(c, "track is required")
		return
	}
	snap := h.catalog.Snapshot()
	response.OK(c, viewSessions(snap, snap.SessionsByTrack(track)))
}

// Schedule handles GET /schedule. Filters apply before the day split.
func (h *Handler) Schedule(c *gin.Context) {
	var q FilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationFailed(c, "invalid query: "+err.Error())
		return
	}
	snap := h.catalog.Snapshot()
	f := q.Filters()
	sch := schedule.ForFilters(snap.Sessions, f, q.Day)

	slots := make([]TimeSlotView, 0, len(sch.TimeSlots))
	for _, ts := range sch.TimeSlots {
		slots = append(slots, TimeSlotView{Key: ts.Key, Sessions: viewSessions(snap, ts.Sessions)})
	}
	response.OK(c, ScheduleView{
		Filters:       f,
		Facets:        snap.Facets,
		Day:           sch.Day,
		Total:         sch.Total,
		DayCount:      sch.DayCount,
		OtherDayCount: sch.OtherDayCount,
		TimeSlots:     slots,
	})
}

func viewSessions(snap *catalog.Snapshot, sessions []models.Session) []SessionView {
	out := make([]SessionView, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, SessionView{Session: s, Speaker: snap.Speaker(s.SpeakerID)})
	}
	return out
}

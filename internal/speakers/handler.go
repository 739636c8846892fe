package speakers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/techsummit/backend/internal/catalog"
	"github.com/techsummit/backend/internal/models"
	"github.com/techsummit/backend/pkg/response"
)

// Catalog provides the current catalog snapshot.
type Catalog interface {
	Snapshot() *catalog.Snapshot
}

// Profile is a speaker together with the sessions they present.
type Profile struct {
	models.Speaker
	Sessions []models.Session `json:"sessions"`
}

// Handler handles speaker directory endpoints.
type Handler struct {
	catalog Catalog
}

// NewHandler creates a speakers handler.
func NewHandler(c Catalog) *Handler {
	return &Handler{catalog: c}
}

// List handles GET /speakers.
func (h *Handler) List(c *gin.Context) {
	speakers := h.catalog.Snapshot().Speakers
	if speakers == nil {
		speakers = []models.Speaker{}
	}
	response.OK(c, speakers)
}

// GetByID handles GET /speakers/:id and includes the speaker's sessions.
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	snap := h.catalog.Snapshot()
	sp, err := snap.SpeakerByID(id)
	if err != nil {
		response.NotFound(c, "speaker not found")
		return
	}
	response.OK(c, Profile{Speaker: sp, Sessions: snap.SessionsBySpeaker(id)})
}

// Sessions handles GET /speakers/:id/sessions.
func (h *Handler) Sessions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	snap := h.catalog.Snapshot()
	if _, err := snap.SpeakerByID(id); err != nil {
		response.NotFound(c, "speaker not found")
		return
	}
	response.OK(c, snap.SessionsBySpeaker(id))
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid speaker id")
		return 0, false
	}
	return id, true
}

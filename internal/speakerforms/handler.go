package speakerforms

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techsummit/backend/internal/models"
	"github.com/techsummit/backend/internal/submissions"
	"github.com/techsummit/backend/internal/validation"
	"github.com/techsummit/backend/pkg/response"
)

// Submitter sends validated speaker forms.
type Submitter interface {
	SubmitApplication(ctx context.Context, app models.SpeakerApplication) (*submissions.Result, error)
	SubmitNomination(ctx context.Context, n models.SpeakerNomination) (*submissions.Result, error)
}

// ApplicationRequest is the body for POST /speaker-applications.
type ApplicationRequest struct {
	FirstName         string `json:"firstName" binding:"required,min=2"`
	LastName          string `json:"lastName" binding:"required,min=2"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"required,phone"`
	JobTitle          string `json:"jobTitle" binding:"required,min=2"`
	Company           string `json:"company" binding:"required,min=2"`
	LinkedIn          string `json:"linkedin" binding:"omitempty,linkedin"`
	PresentationTitle string `json:"presentationTitle" binding:"required,min=10"`
	Description       string `json:"description" binding:"required,min=100"`
	Experience        string `json:"experience" binding:"required,min=50"`
}

// NominationRequest is the body for POST /speaker-nominations.
type NominationRequest struct {
	NominatorName    string `json:"nominatorName" binding:"required,min=2"`
	NominatorEmail   string `json:"nominatorEmail" binding:"required,email"`
	Relationship     string `json:"relationship" binding:"required,min=3"`
	NomineeName      string `json:"nomineeName" binding:"required,min=2"`
	NomineeEmail     string `json:"nomineeEmail" binding:"required,email"`
	NomineeJobTitle  string `json:"nomineeJobTitle" binding:"required,min=2"`
	NomineeCompany   string `json:"nomineeCompany" binding:"required,min=2"`
	NomineeLinkedIn  string `json:"nomineeLinkedin" binding:"omitempty,linkedin"`
	SuggestedTopic   string `json:"suggestedTopic" binding:"required,min=5"`
	NominationReason string `json:"nominationReason" binding:"required,min=100"`
	AdditionalNotes  string `json:"additionalNotes" binding:"max=2000"`
}

// Handler handles the speaker application and nomination forms.
type Handler struct {
	submitter Submitter
	logger    *zap.Logger
}

// NewHandler creates a speaker forms handler.
func NewHandler(s Submitter, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{submitter: s, logger: logger}
}

// Apply handles POST /speaker-applications.
func (h *Handler) Apply(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.Summary(err))
		return
	}
	res, err := h.submitter.SubmitApplication(c.Request.Context(), models.SpeakerApplication(req))
	if err != nil {
		h.writeError(c, err, "Failed to submit application. Please try again.")
		return
	}
	response.Created(c, res)
}

// Nominate handles POST /speaker-nominations.
func (h *Handler) Nominate(c *gin.Context) {
	var req NominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.Summary(err))
		return
	}
	res, err := h.submitter.SubmitNomination(c.Request.Context(), models.SpeakerNomination(req))
	if err != nil {
		h.writeError(c, err, "Failed to submit nomination. Please try again.")
		return
	}
	response.Created(c, res)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	var subErr *submissions.SubmissionError
	switch {
	case errors.As(err, &subErr):
		response.ServiceUnavailable(c, response.CodeSubmissionFailed, subErr.Message)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		response.ServiceUnavailable(c, response.CodeSubmissionFailed, fallback)
	default:
		h.logger.Error("speaker form submission error", zap.Error(err))
		response.Internal(c, fallback)
	}
}

package tickets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techsummit/backend/internal/booking"
	"github.com/techsummit/backend/internal/catalog"
	"github.com/techsummit/backend/internal/models"
	"github.com/techsummit/backend/internal/submissions"
	"github.com/techsummit/backend/internal/validation"
	"github.com/techsummit/backend/pkg/response"
)

const (
	CodeInvalidQuantity = "invalid_quantity"
	CodeTierUnavailable = "tier_unavailable"
)

// Catalog provides the current catalog snapshot.
type Catalog interface {
	Snapshot() *catalog.Snapshot
}

// Booker submits confirmed booking requests.
type Booker interface {
	SubmitBooking(ctx context.Context, req models.BookingRequest) (*submissions.BookingConfirmation, error)
}

// QuoteRequest is the body for POST /tickets/quote.
type QuoteRequest struct {
	Tier     string `json:"tier" binding:"required"`
	Quantity int    `json:"quantity"`
}

// Quote is the price of a tier and quantity.
type Quote struct {
	Tier      string  `json:"tier"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// BookingRequest is the body for POST /bookings.
type BookingRequest struct {
	TicketTier      string `json:"ticketTier" binding:"required"`
	Quantity        int    `json:"quantity"`
	Name            string `json:"name" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Company         string `json:"company" binding:"max=200"`
	SpecialRequests string `json:"specialRequests" binding:"max=1000"`
}

// Handler handles ticket catalog and booking endpoints.
type Handler struct {
	catalog Catalog
	booker  Booker
	logger  *zap.Logger
}

// NewHandler creates a tickets handler.
func NewHandler(c Catalog, booker Booker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{catalog: c, booker: booker, logger: logger}
}

// List handles GET /tickets.
func (h *Handler) List(c *gin.Context) {
	tickets := h.catalog.Snapshot().Tickets
	if tickets == nil {
		tickets = []models.TicketTier{}
	}
	response.OK(c, tickets)
}

// Quote handles POST /tickets/quote.
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	tier, err := h.catalog.Snapshot().TicketByTier(req.Tier)
	if err != nil {
		writeError(c, err)
		return
	}
	d, err := open(tier, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, Quote{Tier: tier.Tier, Quantity: d.Quantity, UnitPrice: tier.Price, Total: d.Total()})
}

// Book handles POST /bookings. The request walks the booking draft from tier
// selection through submission; a failed submission is reported as retryable.
func (h *Handler) Book(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	tier, err := h.catalog.Snapshot().TicketByTier(req.TicketTier)
	if err != nil {
		writeError(c, err)
		return
	}
	d, err := open(tier, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	d, err = d.WithContact(booking.Contact{
		Name:            req.Name,
		Email:           req.Email,
		Company:         req.Company,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	d, bookingReq, err := d.BeginSubmit()
	if err != nil {
		writeError(c, err)
		return
	}

	conf, submitErr := h.booker.SubmitBooking(c.Request.Context(), bookingReq)
	number := ""
	if conf != nil {
		number = conf.ConfirmationNumber
	}
	d, err = d.Complete(number, submitErr)
	if err != nil {
		writeError(c, err)
		return
	}
	if d.State != booking.StateConfirmed {
		h.logger.Info("booking not confirmed", zap.String("tier", tier.Tier), zap.String("error", d.Err))
		writeError(c, submitErr)
		return
	}
	response.Created(c, conf)
}

// open selects tier and sets quantity. Out of range quantities are rejected rather than clamped.
func open(tier models.TicketTier, quantity int) (booking.Draft, error) {
	if _, err := booking.ComputeTotal(tier, quantity); err != nil {
		return booking.Draft{}, err
	}
	d, err := booking.NewDraft().Select(tier)
	if err != nil {
		return d, err
	}
	return d.SetQuantity(quantity)
}

// writeBindError reports a quantity that is not a whole number as an invalid quantity.
func writeBindError(c *gin.Context, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field == "quantity" {
		writeError(c, booking.ErrInvalidQuantity)
		return
	}
	response.ValidationFailed(c, validation.Summary(err))
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrTierNotFound):
		response.NotFound(c, "ticket tier not found")
	case errors.Is(err, booking.ErrInvalidQuantity):
		response.Fail(c, http.StatusBadRequest, CodeInvalidQuantity, "quantity must be between 1 and 10")
	case errors.Is(err, booking.ErrTierUnavailable):
		response.Conflict(c, CodeTierUnavailable, "this ticket tier is sold out")
	case errors.Is(err, submissions.ErrSubmissionFailed):
		response.ServiceUnavailable(c, response.CodeSubmissionFailed, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		response.ServiceUnavailable(c, response.CodeSubmissionFailed, "Booking failed. Please try again.")
	default:
		response.Internal(c, "booking failed")
	}
}

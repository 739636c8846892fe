package booking

import "github.com/techsummit/backend/internal/models"

// State is a step of the booking flow.
type State string

const (
	StateIdle       State = "idle"
	StateFormOpen   State = "form_open"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
)

// Contact is the attendee information collected by the booking form.
type Contact struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Company         string `json:"company,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Draft is the transient booking state. Transitions return a new Draft and never
// mutate the receiver, so callers own where the state lives between events.
type Draft struct {
	State        State              `json:"state"`
	Tier         *models.TicketTier `json:"tier,omitempty"`
	Quantity     int                `json:"quantity"`
	Contact      Contact            `json:"contact"`
	Confirmation string             `json:"confirmation,omitempty"`
	Err          string             `json:"error,omitempty"`
}

// NewDraft returns an idle draft.
func NewDraft() Draft {
	return Draft{State: StateIdle, Quantity: MinQuantity}
}

// Select toggles tier. Selecting the current tier returns to idle; selecting any other
// tier opens the form for it. Either way quantity resets to one. Contact details
// carry over between tiers but not past a confirmed booking.
func (d Draft) Select(tier models.TicketTier) (Draft, error) {
	if d.State == StateSubmitting {
		return d, ErrInvalidState
	}
	if d.Tier != nil && d.Tier.Tier == tier.Tier && d.State == StateFormOpen {
		return NewDraft(), nil
	}
	if !tier.Available {
		return d, ErrTierUnavailable
	}
	t := tier
	next := Draft{
		State:    StateFormOpen,
		Tier:     &t,
		Quantity: MinQuantity,
		Contact:  d.Contact,
	}
	if d.State == StateConfirmed {
		next.Contact = Contact{}
	}
	return next, nil
}

// SetQuantity sets the ticket count, clamped to the allowed range.
func (d Draft) SetQuantity(q int) (Draft, error) {
	if d.State != StateFormOpen {
		return d, ErrInvalidState
	}
	d.Quantity = ClampQuantity(q)
	return d, nil
}

// Increment adds one ticket, up to MaxQuantity.
func (d Draft) Increment() (Draft, error) { return d.SetQuantity(d.Quantity + 1) }

// Decrement removes one ticket, down to MinQuantity.
func (d Draft) Decrement() (Draft, error) { return d.SetQuantity(d.Quantity - 1) }

// WithContact records the attendee details.
func (d Draft) WithContact(c Contact) (Draft, error) {
	if d.State != StateFormOpen {
		return d, ErrInvalidState
	}
	d.Contact = c
	return d, nil
}

// Cancel discards the draft.
func (d Draft) Cancel() Draft {
	return NewDraft()
}

// Total is the price of the current selection, or zero when nothing is selected.
func (d Draft) Total() float64 {
	if d.Tier == nil {
		return 0
	}
	total, err := ComputeTotal(*d.Tier, d.Quantity)
	if err != nil {
		return 0
	}
	return total
}

// BeginSubmit moves an open form to submitting and returns the request to send.
func (d Draft) BeginSubmit() (Draft, models.BookingRequest, error) {
	if d.State != StateFormOpen {
		return d, models.BookingRequest{}, ErrInvalidState
	}
	if d.Tier == nil {
		return d, models.BookingRequest{}, ErrNoTierSelected
	}
	total, err := ComputeTotal(*d.Tier, d.Quantity)
	if err != nil {
		return d, models.BookingRequest{}, err
	}
	req := models.BookingRequest{
		TicketTier:      d.Tier.Tier,
		Quantity:        d.Quantity,
		Name:            d.Contact.Name,
		Email:           d.Contact.Email,
		Company:         d.Contact.Company,
		SpecialRequests: d.Contact.SpecialRequests,
		Total:           total,
	}
	d.State = StateSubmitting
	d.Err = ""
	return d, req, nil
}

// Complete applies the submission outcome. Success confirms the draft; failure
// reopens the form with the previous selection and the error message.
func (d Draft) Complete(confirmation string, submitErr error) (Draft, error) {
	if d.State != StateSubmitting {
		return d, ErrInvalidState
	}
	if submitErr != nil {
		d.State = StateFormOpen
		d.Err = submitErr.Error()
		return d, nil
	}
	d.State = StateConfirmed
	d.Confirmation = confirmation
	return d, nil
}

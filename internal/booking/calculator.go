package booking

import (
	"errors"

	"github.com/techsummit/backend/internal/models"
)

const (
	// MinQuantity is the smallest number of tickets in one booking.
	MinQuantity = 1
	// MaxQuantity is the largest number of tickets in one booking.
	MaxQuantity = 10
)

var (
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrTierUnavailable = errors.New("ticket tier sold out")
	ErrNoTierSelected  = errors.New("no ticket tier selected")
	ErrInvalidState    = errors.New("invalid booking state")
)

// ComputeTotal returns tier.Price * quantity. Quantities outside
// [MinQuantity, MaxQuantity] are rejected, not clamped.
func ComputeTotal(tier models.TicketTier, quantity int) (float64, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return 0, ErrInvalidQuantity
	}
	return tier.Price * float64(quantity), nil
}

// ClampQuantity bounds q to [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

package submissions

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/techsummit/backend/internal/models"
)

// Result is returned for an accepted speaker application or nomination.
type Result struct {
	Success      bool   `json:"success"`
	SubmissionID string `json:"submissionId"`
	Message      string `json:"message"`
	NextSteps    string `json:"nextSteps"`
}

// BookingConfirmation is returned for an accepted ticket booking.
type BookingConfirmation struct {
	Success            bool           `json:"success"`
	ConfirmationNumber string         `json:"confirmationNumber"`
	Booking            models.Booking `json:"booking"`
}

// Confirmation describes an accepted submission for downstream notification.
type Confirmation struct {
	Kind      Kind      `json:"kind"`
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier is told about accepted submissions. Failures never fail the submission.
type Notifier interface {
	Notify(ctx context.Context, c Confirmation) error
}

// Service submits the site's forms to a Backend.
type Service struct {
	backend   Backend
	notifiers []Notifier
	logger    *zap.Logger
}

// NewService creates a submission service.
func NewService(backend Backend, logger *zap.Logger, notifiers ...Notifier) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{backend: backend, notifiers: notifiers, logger: logger}
}

// SubmitApplication submits a speaker application. Fields are expected to be validated already.
func (s *Service) SubmitApplication(ctx context.Context, app models.SpeakerApplication) (*Result, error) {
	receipt, err := s.backend.Submit(ctx, KindApplication, app)
	if err != nil {
		s.logger.Warn("speaker application failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("speaker application submitted",
		zap.String("submission_id", receipt.Token),
		zap.Time("timestamp", receipt.AcceptedAt),
	)

	res := &Result{
		Success:      true,
		SubmissionID: receipt.Token,
		Message:      "Your speaker application has been submitted successfully!",
		NextSteps:    "Our team will review your application and contact you within 5-7 business days.",
	}
	s.notify(ctx, Confirmation{
		Kind:      KindApplication,
		Token:     receipt.Token,
		Name:      app.FirstName + " " + app.LastName,
		Email:     app.Email,
		Subject:   "Speaker application received (" + receipt.Token + ")",
		Body:      res.Message + " " + res.NextSteps,
		CreatedAt: receipt.AcceptedAt,
	})
	return res, nil
}

// SubmitNomination submits a speaker nomination. Fields are expected to be validated already.
func (s *Service) SubmitNomination(ctx context.Context, n models.SpeakerNomination) (*Result, error) {
	receipt, err := s.backend.Submit(ctx, KindNomination, n)
	if err != nil {
		s.logger.Warn("speaker nomination failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("speaker nomination submitted",
		zap.String("submission_id", receipt.Token),
		zap.Time("timestamp", receipt.AcceptedAt),
	)

	res := &Result{
		Success:      true,
		SubmissionID: receipt.Token,
		Message:      "Speaker nomination submitted successfully!",
		NextSteps:    "We will reach out to the nominated speaker and keep you updated on the process.",
	}
	s.notify(ctx, Confirmation{
		Kind:      KindNomination,
		Token:     receipt.Token,
		Name:      n.NominatorName,
		Email:     n.NominatorEmail,
		Subject:   "Nomination of " + n.NomineeName + " received (" + receipt.Token + ")",
		Body:      res.Message + " " + res.NextSteps,
		CreatedAt: receipt.AcceptedAt,
	})
	return res, nil
}

// SubmitBooking submits a ticket booking and returns the confirmed booking record.
func (s *Service) SubmitBooking(ctx context.Context, req models.BookingRequest) (*BookingConfirmation, error) {
	receipt, err := s.backend.Submit(ctx, KindBooking, req)
	if err != nil {
		s.logger.Warn("ticket booking failed", zap.Error(err), zap.String("tier", req.TicketTier))
		return nil, err
	}
	s.logger.Info("ticket booking confirmed",
		zap.String("confirmation_number", receipt.Token),
		zap.String("tier", req.TicketTier),
		zap.Int("quantity", req.Quantity),
	)

	conf := &BookingConfirmation{
		Success:            true,
		ConfirmationNumber: receipt.Token,
		Booking: models.Booking{
			BookingRequest: req,
			ID:             receipt.AcceptedAt.UnixMilli(),
			Status:         models.BookingStatusConfirmed,
			BookedAt:       receipt.AcceptedAt,
		},
	}
	s.notify(ctx, Confirmation{
		Kind:      KindBooking,
		Token:     receipt.Token,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   "Booking confirmed! Confirmation #" + receipt.Token,
		Body:      bookingBody(req),
		CreatedAt: receipt.AcceptedAt,
	})
	return conf, nil
}

func (s *Service) notify(ctx context.Context, c Confirmation) {
	for _, n := range s.notifiers {
		if err := n.Notify(ctx, c); err != nil {
			s.logger.Warn("confirmation notify failed", zap.Error(err), zap.String("kind", string(c.Kind)), zap.String("token", c.Token))
		}
	}
}

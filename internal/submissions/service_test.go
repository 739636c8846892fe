package submissions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/techsummit/backend/internal/models"
	"github.com/techsummit/backend/pkg/queue"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Submit(ctx context.Context, kind Kind, payload any) (Receipt, error) {
	args := m.Called(ctx, kind, payload)
	return args.Get(0).(Receipt), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, c Confirmation) error {
	return m.Called(ctx, c).Error(0)
}

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueConfirmation(ctx context.Context, p queue.ConfirmationPayload) error {
	return m.Called(ctx, p).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, key string, payload any) error {
	return m.Called(ctx, key, payload).Error(0)
}

var acceptedAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func TestService_SubmitApplication(t *testing.T) {
	app := models.SpeakerApplication{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}

	backend := &mockBackend{}
	backend.On("Submit", mock.Anything, KindApplication, app).
		Return(Receipt{Token: "ABC123XYZ", AcceptedAt: acceptedAt}, nil)
	notifier := &mockNotifier{}
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(c Confirmation) bool {
		return c.Kind == KindApplication && c.Token == "ABC123XYZ" && c.Email == "ada@example.com" && c.Name == "Ada Lovelace"
	})).Return(nil)

	svc := NewService(backend, nil, notifier)
	res, err := svc.SubmitApplication(context.Background(), app)

	require.NoError(t, err)
	assert.Equal(t, &Result{
		Success:      true,
		SubmissionID: "ABC123XYZ",
		Message:      "Your speaker application has been submitted successfully!",
		NextSteps:    "Our team will review your application and contact you within 5-7 business days.",
	}, res)
	backend.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_SubmitNomination(t *testing.T) {
	n := models.SpeakerNomination{NominatorName: "Grace", NominatorEmail: "grace@example.com", NomineeName: "Linus"}

	backend := &mockBackend{}
	backend.On("Submit", mock.Anything, KindNomination, n).
		Return(Receipt{Token: "NOM000001", AcceptedAt: acceptedAt}, nil)

	res, err := NewService(backend, nil).SubmitNomination(context.Background(), n)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "NOM000001", res.SubmissionID)
	assert.Equal(t, "Speaker nomination submitted successfully!", res.Message)
	assert.Equal(t, "We will reach out to the nominated speaker and keep you updated on the process.", res.NextSteps)
}

func TestService_SubmitBooking(t *testing.T) {
	req := models.BookingRequest{TicketTier: "Professional", Quantity: 3, Name: "Ada", Email: "ada@example.com", Total: 1497}

	backend := &mockBackend{}
	backend.On("Submit", mock.Anything, KindBooking, req).
		Return(Receipt{Token: "TP654321", AcceptedAt: acceptedAt}, nil)
	notifier := &mockNotifier{}
	var sent Confirmation
	notifier.On("Notify", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(Confirmation) }).
		Return(nil)

	conf, err := NewService(backend, nil, notifier).SubmitBooking(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, conf.Success)
	assert.Equal(t, "TP654321", conf.ConfirmationNumber)
	assert.Equal(t, req, conf.Booking.BookingRequest)
	assert.Equal(t, models.BookingStatusConfirmed, conf.Booking.Status)
	assert.Equal(t, acceptedAt.UnixMilli(), conf.Booking.ID)
	assert.Equal(t, acceptedAt, conf.Booking.BookedAt)

	assert.Equal(t, "Booking confirmed! Confirmation #TP654321", sent.Subject)
	assert.Equal(t, "Professional Ticket x 3 = $1,497", sent.Body)
}

func TestService_FailureIsReturnedNotRetried(t *testing.T) {
	subErr := &SubmissionError{Kind: KindBooking, Message: "Booking failed. Please try again."}
	backend := &mockBackend{}
	backend.On("Submit", mock.Anything, KindBooking, mock.Anything).Return(Receipt{}, subErr).Once()
	notifier := &mockNotifier{}

	conf, err := NewService(backend, nil, notifier).SubmitBooking(context.Background(), models.BookingRequest{})

	assert.Nil(t, conf)
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	backend.AssertNumberOfCalls(t, "Submit", 1)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestService_NotifierFailureDoesNotFailSubmission(t *testing.T) {
	backend := &mockBackend{}
	backend.On("Submit", mock.Anything, KindApplication, mock.Anything).
		Return(Receipt{Token: "ABC123XYZ", AcceptedAt: acceptedAt}, nil)
	broken := &mockNotifier{}
	broken.On("Notify", mock.Anything, mock.Anything).Return(errors.New("redis down"))
	healthy := &mockNotifier{}
	healthy.On("Notify", mock.Anything, mock.Anything).Return(nil)

	res, err := NewService(backend, nil, broken, healthy).SubmitApplication(context.Background(), models.SpeakerApplication{Email: "a@b.co"})

	require.NoError(t, err)
	assert.Equal(t, "ABC123XYZ", res.SubmissionID)
	healthy.AssertExpectations(t)
}

func TestQueueNotifier(t *testing.T) {
	q := &mockEnqueuer{}
	q.On("EnqueueConfirmation", mock.Anything, queue.ConfirmationPayload{
		Kind:           string(KindBooking),
		Token:          "TP000001",
		RecipientName:  "Ada",
		RecipientEmail: "ada@example.com",
		Subject:        "s",
		Body:           "b",
		SubmittedAt:    acceptedAt,
	}).Return(nil)

	err := NewQueueNotifier(q).Notify(context.Background(), Confirmation{
		Kind: KindBooking, Token: "TP000001", Name: "Ada", Email: "ada@example.com", Subject: "s", Body: "b", CreatedAt: acceptedAt,
	})

	require.NoError(t, err)
	q.AssertExpectations(t)
}

func TestQueueNotifier_SkipsWithoutEmail(t *testing.T) {
	q := &mockEnqueuer{}

	require.NoError(t, NewQueueNotifier(q).Notify(context.Background(), Confirmation{Token: "x"}))
	q.AssertNotCalled(t, "EnqueueConfirmation", mock.Anything, mock.Anything)
}

func TestEventNotifier(t *testing.T) {
	c := Confirmation{Kind: KindNomination, Token: "NOM000001"}
	p := &mockPublisher{}
	p.On("Publish", mock.Anything, "NOM000001", c).Return(nil)

	require.NoError(t, NewEventNotifier(p).Notify(context.Background(), c))
	p.AssertExpectations(t)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1,497", formatAmount(1497))
	assert.Equal(t, "299", formatAmount(299))
	assert.Equal(t, "12,345.5", formatAmount(12345.5))
}

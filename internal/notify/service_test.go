package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliqtrix/consulting-chatbot/internal/logging"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

// mockEmailSender records sent messages.
type mockEmailSender struct {
	sent    []EmailMessage
	callErr error
}

func (m *mockEmailSender) Send(_ context.Context, msg EmailMessage) error {
	if m.callErr != nil {
		return m.callErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func testAppointment() *models.Appointment {
	return &models.Appointment{
		ID:       "100",
		Name:     "Alex",
		Email:    "alex@example.com",
		Service:  "Medical Consultation",
		Date:     "2030-06-01",
		Time:     "10:00",
		Duration: 30,
	}
}

func TestBookingConfirmed(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, logging.New("error"))

	svc.BookingConfirmed(context.Background(), testAppointment())

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "alex@example.com", msg.To)
	assert.Equal(t, "Alex", msg.ToName)
	assert.Equal(t, "Appointment Confirmed", msg.Subject)
	assert.Contains(t, msg.Body, "Medical Consultation")
	assert.Contains(t, msg.Body, "2030-06-01 at 10:00")
	assert.Contains(t, msg.Body, "30 minutes")
}

func TestBookingRescheduled(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, logging.New("error"))

	svc.BookingRescheduled(context.Background(), testAppointment())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Appointment Rescheduled", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].Body, "2030-06-01 at 10:00")
}

func TestBookingCancelled(t *testing.T) {
	sender := &mockEmailSender{}
	svc := NewService(sender, logging.New("error"))

	svc.BookingCancelled(context.Background(), testAppointment())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Appointment Cancelled", sender.sent[0].Subject)
}

func TestSendFailureDoesNotPanic(t *testing.T) {
	sender := &mockEmailSender{callErr: errors.New("smtp down")}
	svc := NewService(sender, logging.New("error"))

	// Delivery failures are logged and swallowed.
	svc.BookingConfirmed(context.Background(), testAppointment())
	assert.Empty(t, sender.sent)
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(nil, nil)
	require.NotNil(t, svc)

	// Falls back to the stub sender; must not panic.
	svc.BookingConfirmed(context.Background(), testAppointment())
}

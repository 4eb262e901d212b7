package notify

import (
	"context"
	"fmt"

	"github.com/cliqtrix/consulting-chatbot/internal/logging"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

// Service formats and sends booking lifecycle emails. All sends are
// best-effort: a delivery failure never fails the booking operation.
type Service struct {
	email  EmailSender
	logger *logging.Logger
}

func NewService(email EmailSender, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if email == nil {
		email = NewStubEmailSender(logger)
	}
	return &Service{email: email, logger: logger}
}

// BookingConfirmed sends the confirmation email for a new appointment.
func (s *Service) BookingConfirmed(ctx context.Context, ap *models.Appointment) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment is confirmed.\n\nService: %s\nDate: %s at %s\nDuration: %d minutes\n\nSee you then!",
		ap.Name, ap.Service, ap.Date, ap.Time, ap.Duration,
	)
	s.send(ctx, ap, "Appointment Confirmed", body)
}

// BookingRescheduled sends the new date and time after a reschedule.
func (s *Service) BookingRescheduled(ctx context.Context, ap *models.Appointment) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment has been rescheduled.\n\nNew time: %s at %s\nService: %s",
		ap.Name, ap.Date, ap.Time, ap.Service,
	)
	s.send(ctx, ap, "Appointment Rescheduled", body)
}

// BookingCancelled confirms a cancellation.
func (s *Service) BookingCancelled(ctx context.Context, ap *models.Appointment) {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment on %s at %s has been cancelled.",
		ap.Name, ap.Date, ap.Time,
	)
	s.send(ctx, ap, "Appointment Cancelled", body)
}

func (s *Service) send(ctx context.Context, ap *models.Appointment, subject, body string) {
	msg := EmailMessage{
		To:      ap.Email,
		ToName:  ap.Name,
		Subject: subject,
		Body:    body,
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Error("notify: email send failed", "error", err, "to", ap.Email, "subject", subject)
	}
}

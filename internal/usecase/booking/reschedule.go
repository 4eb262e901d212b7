package booking

import (
	"context"
	"time"

	"github.com/cliqtrix/consulting-chatbot/internal/audit"
	domain "github.com/cliqtrix/consulting-chatbot/internal/domain/booking"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

type RescheduleInput struct {
	AppointmentID string
	Email         string
	NewDate       string
	NewTime       string
}

type Reschedule struct {
	repo   domain.Repository
	notify Notifier
	audit  *audit.Dispatcher
}

func NewReschedule(
	repo domain.Repository,
	notify Notifier,
	audit *audit.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, in.Email, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ap.Date = in.NewDate
	ap.Time = in.NewTime
	ap.UpdatedAt = &now

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.BookingRescheduled(ctx, ap)

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Email,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"date": in.NewDate, "time": in.NewTime},
	})

	return ap, nil
}

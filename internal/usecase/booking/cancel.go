package booking

import (
	"context"

	"github.com/cliqtrix/consulting-chatbot/internal/audit"
	domain "github.com/cliqtrix/consulting-chatbot/internal/domain/booking"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

type Cancel struct {
	repo   domain.Repository
	notify Notifier
	audit  *audit.Dispatcher
}

func NewCancel(
	repo domain.Repository,
	notify Notifier,
	audit *audit.Dispatcher,
) *Cancel {
	return &Cancel{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	appointmentID string,
	email string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, email, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Delete(ctx, email, appointmentID); err != nil {
		return nil, err
	}

	uc.notify.BookingCancelled(ctx, ap)

	uc.audit.Dispatch(audit.Event{
		Actor:    email,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"date": ap.Date, "time": ap.Time},
	})

	return ap, nil
}

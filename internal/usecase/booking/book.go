package booking

import (
	"context"
	"time"

	"github.com/cliqtrix/consulting-chatbot/internal/audit"
	"github.com/cliqtrix/consulting-chatbot/internal/catalog"
	domain "github.com/cliqtrix/consulting-chatbot/internal/domain/booking"
	"github.com/cliqtrix/consulting-chatbot/internal/httperr"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

type BookAppointmentInput struct {
	Name      string
	Email     string
	Phone     string
	ServiceID int
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
}

type BookAppointment struct {
	repo   domain.Repository
	notify Notifier
	audit  *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	notify Notifier,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		notify: notify,
		audit:  audit,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	service, ok := catalog.Find(in.ServiceID)
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	ap := &models.Appointment{
		ID:        newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Service:   service.Name,
		Date:      in.Date,
		Time:      in.Time,
		Duration:  service.Duration,
		Status:    "confirmed",
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.BookingConfirmed(ctx, ap)

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Email,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"service": service.Name, "date": in.Date, "time": in.Time},
	})

	return ap, nil
}

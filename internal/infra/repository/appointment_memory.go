package repository

import (
	"context"
	"sync"

	domain "github.com/cliqtrix/consulting-chatbot/internal/domain/booking"
	"github.com/cliqtrix/consulting-chatbot/internal/httperr"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

// AppointmentMemoryRepository is the default store: a mutex-guarded map of
// email to that visitor's appointments, in booking order. State does not
// survive a restart.
type AppointmentMemoryRepository struct {
	mu           sync.RWMutex
	appointments map[string][]*models.Appointment
}

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{
		appointments: make(map[string][]*models.Appointment),
	}
}

func (r *AppointmentMemoryRepository) Create(
	_ context.Context,
	ap *models.Appointment,
) error {
	cp := *ap

	r.mu.Lock()
	r.appointments[ap.Email] = append(r.appointments[ap.Email], &cp)
	r.mu.Unlock()

	return nil
}

func (r *AppointmentMemoryRepository) ListByEmail(
	_ context.Context,
	email string,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.appointments[email]
	out := make([]models.Appointment, 0, len(list))
	for _, ap := range list {
		out = append(out, *ap)
	}
	return out, nil
}

func (r *AppointmentMemoryRepository) GetByID(
	_ context.Context,
	email string,
	id string,
) (*models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ap := range r.appointments[email] {
		if ap.ID == id {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (r *AppointmentMemoryRepository) Update(
	_ context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.appointments[ap.Email] {
		if existing.ID == ap.ID {
			cp := *ap
			r.appointments[ap.Email][i] = &cp
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *AppointmentMemoryRepository) Delete(
	_ context.Context,
	email string,
	id string,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.appointments[email]
	for i, ap := range list {
		if ap.ID == id {
			r.appointments[email] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

// Compile-time check
var _ domain.Repository = (*AppointmentMemoryRepository)(nil)

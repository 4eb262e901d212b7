package booking

import (
	"context"

	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

// Repository stores appointments keyed by visitor email, preserving
// insertion order per email. Lookups within an email scan linearly by id.
// Implementations return httperr.ErrBusiness("appointment_not_found") when
// an id does not exist under the given email.
type Repository interface {
	Create(ctx context.Context, ap *models.Appointment) error

	ListByEmail(ctx context.Context, email string) ([]models.Appointment, error)

	GetByID(ctx context.Context, email, id string) (*models.Appointment, error)

	Update(ctx context.Context, ap *models.Appointment) error

	Delete(ctx context.Context, email, id string) error
}

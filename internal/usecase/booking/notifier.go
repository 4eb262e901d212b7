package booking

import (
	"context"

	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

// Notifier is the fire-and-forget notification capability injected into the
// use cases. Implementations must never fail the calling operation; tests
// substitute a recording stub.
type Notifier interface {
	BookingConfirmed(ctx context.Context, ap *models.Appointment)
	BookingRescheduled(ctx context.Context, ap *models.Appointment)
	BookingCancelled(ctx context.Context, ap *models.Appointment)
}

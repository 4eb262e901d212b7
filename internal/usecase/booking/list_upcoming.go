package booking

import (
	"context"
	"time"

	domain "github.com/cliqtrix/consulting-chatbot/internal/domain/booking"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

type ListUpcoming struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListUpcoming(repo domain.Repository) *ListUpcoming {
	return &ListUpcoming{
		repo: repo,
		now:  time.Now,
	}
}

// Execute returns the visitor's future appointments in booking order.
// The date is compared at midnight UTC against the current instant, so
// appointments for today (and any record whose date does not parse) are
// filtered out.
func (uc *ListUpcoming) Execute(
	ctx context.Context,
	email string,
) ([]models.Appointment, error) {

	all, err := uc.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	upcoming := make([]models.Appointment, 0, len(all))
	for _, ap := range all {
		date, err := time.Parse("2006-01-02", ap.Date)
		if err != nil {
			continue
		}
		if date.After(now) {
			upcoming = append(upcoming, ap)
		}
	}
	return upcoming, nil
}

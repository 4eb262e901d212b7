package booking

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliqtrix/consulting-chatbot/internal/audit"
	"github.com/cliqtrix/consulting-chatbot/internal/httperr"
	infraRepo "github.com/cliqtrix/consulting-chatbot/internal/infra/repository"
	"github.com/cliqtrix/consulting-chatbot/internal/logging"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

// recordingNotifier records which lifecycle notifications fired.
type recordingNotifier struct {
	confirmed   []*models.Appointment
	rescheduled []*models.Appointment
	cancelled   []*models.Appointment
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, ap *models.Appointment) {
	n.confirmed = append(n.confirmed, ap)
}

func (n *recordingNotifier) BookingRescheduled(_ context.Context, ap *models.Appointment) {
	n.rescheduled = append(n.rescheduled, ap)
}

func (n *recordingNotifier) BookingCancelled(_ context.Context, ap *models.Appointment) {
	n.cancelled = append(n.cancelled, ap)
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(logging.New("error")))
}

func TestBookAppointment(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	notifier := &recordingNotifier{}
	uc := NewBookAppointment(repo, notifier, testDispatcher())

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		Name:      "Alex",
		Email:     "alex@example.com",
		Phone:     "+15550001",
		ServiceID: 1,
		Date:      "2030-06-01",
		Time:      "10:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, "Medical Consultation", ap.Service)
	assert.Equal(t, 30, ap.Duration)
	assert.Equal(t, "confirmed", ap.Status)
	assert.False(t, ap.CreatedAt.IsZero())
	assert.Nil(t, ap.UpdatedAt)

	stored, err := repo.GetByID(context.Background(), "alex@example.com", ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, stored.ID)

	require.Len(t, notifier.confirmed, 1)
	assert.Equal(t, ap.ID, notifier.confirmed[0].ID)
}

func TestBookAppointment_UnknownService(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	notifier := &recordingNotifier{}
	uc := NewBookAppointment(repo, notifier, testDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		Name:      "Alex",
		Email:     "alex@example.com",
		Phone:     "+15550001",
		ServiceID: 99,
		Date:      "2030-06-01",
		Time:      "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	assert.Empty(t, notifier.confirmed)
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := newID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		// Ids stay numeric millisecond timestamps.
		_, err := strconv.ParseInt(id, 10, 64)
		require.NoError(t, err)
	}
}

func TestListUpcoming_FiltersPast(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	ctx := context.Background()

	for i, date := range []string{"2030-06-01", "2020-01-01", "2030-06-02", "not-a-date"} {
		require.NoError(t, repo.Create(ctx, &models.Appointment{
			ID:    strconv.Itoa(100 + i),
			Email: "alex@example.com",
			Date:  date,
			Time:  "10:00",
		}))
	}

	uc := NewListUpcoming(repo)
	uc.now = func() time.Time {
		return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	}

	got, err := uc.Execute(ctx, "alex@example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2030-06-01", got[0].Date)
	assert.Equal(t, "2030-06-02", got[1].Date)
}

func TestListUpcoming_TodayExcluded(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Appointment{
		ID:    "100",
		Email: "alex@example.com",
		Date:  "2025-01-01",
		Time:  "18:00",
	}))

	uc := NewListUpcoming(repo)
	uc.now = func() time.Time {
		return time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	}

	got, err := uc.Execute(ctx, "alex@example.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReschedule(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	notifier := &recordingNotifier{}
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Appointment{
		ID:    "100",
		Name:  "Alex",
		Email: "alex@example.com",
		Date:  "2030-06-01",
		Time:  "10:00",
	}))

	uc := NewReschedule(repo, notifier, testDispatcher())
	ap, err := uc.Execute(ctx, RescheduleInput{
		AppointmentID: "100",
		Email:         "alex@example.com",
		NewDate:       "2030-07-01",
		NewTime:       "14:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "2030-07-01", ap.Date)
	assert.Equal(t, "14:30", ap.Time)
	require.NotNil(t, ap.UpdatedAt)

	stored, err := repo.GetByID(ctx, "alex@example.com", "100")
	require.NoError(t, err)
	assert.Equal(t, "2030-07-01", stored.Date)

	require.Len(t, notifier.rescheduled, 1)
}

func TestReschedule_NotFound(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	notifier := &recordingNotifier{}

	uc := NewReschedule(repo, notifier, testDispatcher())
	_, err := uc.Execute(context.Background(), RescheduleInput{
		AppointmentID: "999",
		Email:         "alex@example.com",
		NewDate:       "2030-07-01",
		NewTime:       "14:30",
	})

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	assert.Empty(t, notifier.rescheduled)
}

func TestCancel(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	notifier := &recordingNotifier{}
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Appointment{
		ID:    "100",
		Name:  "Alex",
		Email: "alex@example.com",
		Date:  "2030-06-01",
		Time:  "10:00",
	}))

	uc := NewCancel(repo, notifier, testDispatcher())
	ap, err := uc.Execute(ctx, "100", "alex@example.com")
	require.NoError(t, err)
	assert.Equal(t, "100", ap.ID)

	_, err = repo.GetByID(ctx, "alex@example.com", "100")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	require.Len(t, notifier.cancelled, 1)
}

func TestCancel_NotFound(t *testing.T) {
	repo := infraRepo.NewAppointmentMemoryRepository()
	notifier := &recordingNotifier{}

	uc := NewCancel(repo, notifier, testDispatcher())
	_, err := uc.Execute(context.Background(), "999", "alex@example.com")

	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	assert.Empty(t, notifier.cancelled)
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/cliqtrix/consulting-chatbot/internal/domain/booking"
	"github.com/cliqtrix/consulting-chatbot/internal/httperr"
	"github.com/cliqtrix/consulting-chatbot/internal/models"
)

// AppointmentGormRepository backs the appointment store with Postgres.
// Selected with STORAGE_DRIVER=postgres; semantics match the memory store.
type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) ListByEmail(
	ctx context.Context,
	email string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) GetByID(
	ctx context.Context,
	email string,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND email = ?", id, email).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND email = ?", ap.ID, ap.Email).
		Updates(map[string]any{
			"date":       ap.Date,
			"time":       ap.Time,
			"updated_at": ap.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	email string,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND email = ?", id, email).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

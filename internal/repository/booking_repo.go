package repository

import (
	"context"

	"github.com/campusops/reservation-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	Delete(ctx context.Context, tx *gorm.DB, bookingID uint) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByRoom(ctx context.Context, tx *gorm.DB, roomID uint) ([]models.Booking, error)
	FindByPerson(ctx context.Context, personID uint) ([]models.Booking, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

// Delete removes the booking row, and with it both the room-side and the
// person-side ledger entry. Reports gorm.ErrRecordNotFound when the row
// was already gone.
func (r *bookingRepository) Delete(ctx context.Context, tx *gorm.DB, bookingID uint) error {
	result := tx.WithContext(ctx).Delete(&models.Booking{}, bookingID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByRoom runs inside the caller's transaction so the count it implies
// is the one the row lock protects.
func (r *bookingRepository) FindByRoom(ctx context.Context, tx *gorm.DB, roomID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := tx.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByPerson(ctx context.Context, personID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("person_id = ?", personID).
		Order("id ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

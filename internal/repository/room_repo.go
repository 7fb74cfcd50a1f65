package repository

import (
	"context"

	"github.com/campusops/reservation-service/internal/availability"
	"github.com/campusops/reservation-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	Upsert(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	FindByKind(ctx context.Context, kind models.RoomKind) ([]models.Room, error)
	ListAvailable(ctx context.Context, kind models.RoomKind) ([]models.Room, error)
	UpdateAvailability(ctx context.Context, tx *gorm.DB, roomID uint, available bool) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// Create upserts on (name, building) so administrative creation is
// idempotent: re-sending the same room updates capacity/kind instead of
// failing on the unique index.
func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "building"}},
			DoUpdates: clause.AssignmentColumns([]string{"capacity", "kind", "updated_at"}),
		}).Create(room).Error; err != nil {
			return err
		}
		return r.syncAvailability(ctx, tx, room)
	})
}

// Upsert mirrors a directory-owned room record by primary key. The
// available flag is never taken from the payload: it is derived from this
// service's ledger.
func (r *roomRepository) Upsert(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "building", "capacity", "kind", "updated_at"}),
		}).Create(room).Error; err != nil {
			return err
		}
		return r.syncAvailability(ctx, tx, room)
	})
}

// syncAvailability recomputes the cached flag from the booking count and
// the room's current limit, in the same transaction as the upsert. A
// capacity or kind change moves the limit, so the stored flag cannot be
// carried over from before the write.
func (r *roomRepository) syncAvailability(ctx context.Context, tx *gorm.DB, room *models.Room) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ?", room.ID).
		Count(&count).Error; err != nil {
		return err
	}
	room.Available = int(count) < availability.Limit(room)
	return tx.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", room.ID).
		Update("available", room.Available).Error
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction. Every booking/cancellation validates and writes under this
// lock, which is what keeps the capacity invariant true under concurrent
// sessions.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByKind returns all rooms of a kind with their bookings preloaded,
// the availability engine's input set.
func (r *roomRepository) FindByKind(ctx context.Context, kind models.RoomKind) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Preload("Bookings").
		Where("kind = ?", kind).
		Order("id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) ListAvailable(ctx context.Context, kind models.RoomKind) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("kind = ? AND available = ?", kind, true).
		Order("id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) UpdateAvailability(ctx context.Context, tx *gorm.DB, roomID uint, available bool) error {
	return tx.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", roomID).
		Update("available", available).Error
}

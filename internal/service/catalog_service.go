package service

import (
	"context"
	"errors"

	"github.com/campusops/reservation-service/internal/models"
	"github.com/campusops/reservation-service/internal/repository"
	"gorm.io/gorm"
)

type CatalogService interface {
	CreateRoom(ctx context.Context, room *models.Room) error
	SyncRoom(ctx context.Context, room *models.Room) error
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	ListAvailable(ctx context.Context, kind models.RoomKind) ([]models.Room, error)
}

type catalogService struct {
	roomRepo repository.RoomRepository
}

func NewCatalogService(roomRepo repository.RoomRepository) CatalogService {
	return &catalogService{roomRepo: roomRepo}
}

func (s *catalogService) CreateRoom(ctx context.Context, room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	room.Available = true
	return s.roomRepo.Create(ctx, room)
}

// SyncRoom mirrors a directory-owned room record by its id, applying the
// same attribute checks as administrative creation.
func (s *catalogService) SyncRoom(ctx context.Context, room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}
	return s.roomRepo.Upsert(ctx, room)
}

func (s *catalogService) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *catalogService) ListAvailable(ctx context.Context, kind models.RoomKind) ([]models.Room, error) {
	return s.roomRepo.ListAvailable(ctx, kind)
}

func validateRoom(room *models.Room) error {
	if room.Capacity < 1 {
		return ErrInvalidRequest
	}
	if _, ok := models.ParseRoomKind(string(room.Kind)); !ok {
		return ErrInvalidRequest
	}
	return nil
}

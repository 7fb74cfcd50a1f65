package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/campusops/reservation-service/internal/availability"
	"github.com/campusops/reservation-service/internal/models"
	"github.com/campusops/reservation-service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPersonNotFound  = errors.New("person not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrForbidden       = errors.New("booking belongs to another person")
	ErrRoomUnavailable = errors.New("room is no longer available for this request")
	ErrInvalidRequest  = errors.New("invalid role/slot combination for this room")
	ErrStorage         = errors.New("storage failure")
)

type ReservationService interface {
	ListAvailableRooms(ctx context.Context, personID uint, slot *models.Slot) ([]models.Room, error)
	BookRoom(ctx context.Context, personID, roomID uint, slot *models.Slot) (*models.Booking, error)
	CancelBooking(ctx context.Context, personID, bookingID uint) (*models.Booking, error)
	ListBookings(ctx context.Context, personID uint) ([]models.Booking, error)
}

type reservationService struct {
	roomRepo    repository.RoomRepository
	bookingRepo repository.BookingRepository
	personRepo  repository.PersonRepository
}

func NewReservationService(roomRepo repository.RoomRepository, bookingRepo repository.BookingRepository, personRepo repository.PersonRepository) ReservationService {
	return &reservationService{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		personRepo:  personRepo,
	}
}

// ListAvailableRooms returns the rooms the person may book right now.
// Teachers see classrooms offerable for the requested slot, students see
// laboratories with a free place they have not already booked.
func (s *reservationService) ListAvailableRooms(ctx context.Context, personID uint, slot *models.Slot) ([]models.Room, error) {
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return nil, s.classify(err, ErrPersonNotFound)
	}

	var kind models.RoomKind
	switch person.Role {
	case models.RoleTeacher:
		kind = models.KindClassroom
	case models.RoleStudent:
		kind = models.KindLaboratory
	default:
		return nil, ErrInvalidRequest
	}
	if !availability.RequestValid(person.Role, kind, slot) {
		return nil, ErrInvalidRequest
	}

	rooms, err := s.roomRepo.FindByKind(ctx, kind)
	if err != nil {
		return nil, s.classify(err, nil)
	}
	return availability.FilterAvailable(rooms, person.ID, slot), nil
}

// BookRoom creates a booking as one atomic unit: lock the room row,
// re-validate availability under the lock, insert the booking, recompute
// and persist the available flag. The re-validation is mandatory — the
// listing the caller chose from may be stale by the time they commit.
func (s *reservationService) BookRoom(ctx context.Context, personID, roomID uint, slot *models.Slot) (*models.Booking, error) {
	person, err := s.personRepo.FindByID(ctx, personID)
	if err != nil {
		return nil, s.classify(err, ErrPersonNotFound)
	}

	var result *models.Booking
	err = s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, roomID)
		if err != nil {
			return s.classify(err, ErrRoomNotFound)
		}

		if !availability.RequestValid(person.Role, room.Kind, slot) {
			return ErrInvalidRequest
		}

		bookings, err := s.bookingRepo.FindByRoom(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		if !availability.CanBook(room, bookings, person.ID, slot) {
			return ErrRoomUnavailable
		}

		booking := &models.Booking{
			Reference: uuid.NewString(),
			RoomID:    room.ID,
			PersonID:  person.ID,
			Slot:      slot,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}

		nowAvailable := availability.NextAvailable(room, len(bookings), availability.Insert)
		if err := s.roomRepo.UpdateAvailability(ctx, tx, room.ID, nowAvailable); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, s.classify(err, nil)
	}
	return result, nil
}

// CancelBooking deletes the person's booking and restores the room's
// availability in the same transaction. Only the booking's owner may
// cancel it.
func (s *reservationService) CancelBooking(ctx context.Context, personID, bookingID uint) (*models.Booking, error) {
	var result *models.Booking
	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return s.classify(err, ErrBookingNotFound)
		}
		if booking.PersonID != personID {
			return ErrForbidden
		}

		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, booking.RoomID)
		if err != nil {
			return s.classify(err, ErrRoomNotFound)
		}

		if err := s.bookingRepo.Delete(ctx, tx, booking.ID); err != nil {
			return s.classify(err, ErrBookingNotFound)
		}

		bookings, err := s.bookingRepo.FindByRoom(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		nowAvailable := availability.NextAvailable(room, len(bookings), availability.Remove)
		if err := s.roomRepo.UpdateAvailability(ctx, tx, room.ID, nowAvailable); err != nil {
			return err
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, s.classify(err, nil)
	}
	return result, nil
}

func (s *reservationService) ListBookings(ctx context.Context, personID uint) ([]models.Booking, error) {
	if _, err := s.personRepo.FindByID(ctx, personID); err != nil {
		return nil, s.classify(err, ErrPersonNotFound)
	}
	bookings, err := s.bookingRepo.FindByPerson(ctx, personID)
	if err != nil {
		return nil, s.classify(err, nil)
	}
	return bookings, nil
}

// classify maps storage errors onto the service taxonomy: a missing row
// becomes notFound (when given), already-classified errors pass through,
// and everything else is wrapped as ErrStorage so no raw driver error
// escapes to the handler.
func (s *reservationService) classify(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, ErrPersonNotFound),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrForbidden),
		errors.Is(err, ErrRoomUnavailable),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrStorage):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
}

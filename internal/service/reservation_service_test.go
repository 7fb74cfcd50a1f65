package service

import (
	"context"
	"testing"

	"github.com/campusops/reservation-service/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock RoomRepository ---

type mockRoomRepo struct {
	createFn        func(ctx context.Context, room *models.Room) error
	upsertFn        func(ctx context.Context, room *models.Room) error
	findByKindFn    func(ctx context.Context, kind models.RoomKind) ([]models.Room, error)
	listAvailableFn func(ctx context.Context, kind models.RoomKind) ([]models.Room, error)
}

func (m *mockRoomRepo) Create(ctx context.Context, room *models.Room) error {
	if m.createFn != nil {
		return m.createFn(ctx, room)
	}
	return nil
}
func (m *mockRoomRepo) Upsert(ctx context.Context, room *models.Room) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, room)
	}
	return nil
}
func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindByKind(ctx context.Context, kind models.RoomKind) ([]models.Room, error) {
	return m.findByKindFn(ctx, kind)
}
func (m *mockRoomRepo) ListAvailable(ctx context.Context, kind models.RoomKind) ([]models.Room, error) {
	if m.listAvailableFn != nil {
		return m.listAvailableFn(ctx, kind)
	}
	return nil, nil
}
func (m *mockRoomRepo) UpdateAvailability(ctx context.Context, tx *gorm.DB, roomID uint, available bool) error {
	return nil
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	findByPersonFn func(ctx context.Context, personID uint) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, b *models.Booking) error {
	return nil
}
func (m *mockBookingRepo) Delete(ctx context.Context, tx *gorm.DB, bookingID uint) error {
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockBookingRepo) FindByRoom(ctx context.Context, tx *gorm.DB, roomID uint) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) FindByPerson(ctx context.Context, personID uint) ([]models.Booking, error) {
	if m.findByPersonFn != nil {
		return m.findByPersonFn(ctx, personID)
	}
	return nil, nil
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Mock PersonRepository ---

type mockPersonRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.Person, error)
}

func (m *mockPersonRepo) FindByID(ctx context.Context, id uint) (*models.Person, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockPersonRepo) FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.Person, error) {
	return nil, gorm.ErrRecordNotFound
}

// --- Tests ---

func teacher() *models.Person {
	return &models.Person{ID: 1, Name: "Ada", Email: "ada@campus.edu", Role: models.RoleTeacher}
}

func student() *models.Person {
	return &models.Person{ID: 2, Name: "Tim", Email: "tim@campus.edu", Role: models.RoleStudent}
}

func slotPtr(s models.Slot) *models.Slot {
	return &s
}

func TestListAvailableRooms_TeacherSeesClassrooms(t *testing.T) {
	morning := slotPtr(models.SlotMorning)

	roomRepo := &mockRoomRepo{
		findByKindFn: func(ctx context.Context, kind models.RoomKind) ([]models.Room, error) {
			assert.Equal(t, models.KindClassroom, kind)
			return []models.Room{
				{ID: 1, Kind: models.KindClassroom, Available: true},
				{ID: 2, Kind: models.KindClassroom, Available: true, Bookings: []models.Booking{
					{ID: 1, RoomID: 2, PersonID: 9, Slot: morning},
				}},
			}, nil
		},
	}
	personRepo := &mockPersonRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Person, error) {
			return teacher(), nil
		},
	}

	svc := NewReservationService(roomRepo, &mockBookingRepo{}, personRepo)
	rooms, err := svc.ListAvailableRooms(context.Background(), 1, morning)

	assert.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.Equal(t, uint(1), rooms[0].ID)
}

func TestListAvailableRooms_TeacherWithoutSlot(t *testing.T) {
	personRepo := &mockPersonRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Person, error) {
			return teacher(), nil
		},
	}

	svc := NewReservationService(&mockRoomRepo{}, &mockBookingRepo{}, personRepo)
	rooms, err := svc.ListAvailableRooms(context.Background(), 1, nil)

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, rooms)
}

func TestListAvailableRooms_StudentWithSlot(t *testing.T) {
	personRepo := &mockPersonRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Person, error) {
			return student(), nil
		},
	}

	svc := NewReservationService(&mockRoomRepo{}, &mockBookingRepo{}, personRepo)
	rooms, err := svc.ListAvailableRooms(context.Background(), 2, slotPtr(models.SlotAfternoon))

	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, rooms)
}

func TestListAvailableRooms_UnknownPerson(t *testing.T) {
	personRepo := &mockPersonRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Person, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewReservationService(&mockRoomRepo{}, &mockBookingRepo{}, personRepo)
	_, err := svc.ListAvailableRooms(context.Background(), 99, nil)

	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestBookRoom_UnknownPerson(t *testing.T) {
	personRepo := &mockPersonRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Person, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewReservationService(&mockRoomRepo{}, &mockBookingRepo{}, personRepo)
	booking, err := svc.BookRoom(context.Background(), 99, 1, slotPtr(models.SlotMorning))

	assert.ErrorIs(t, err, ErrPersonNotFound)
	assert.Nil(t, booking)
}

func TestListBookings_ReturnsPersonLedger(t *testing.T) {
	personRepo := &mockPersonRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Person, error) {
			return student(), nil
		},
	}
	bookingRepo := &mockBookingRepo{
		findByPersonFn: func(ctx context.Context, personID uint) ([]models.Booking, error) {
			return []models.Booking{
				{ID: 7, RoomID: 3, PersonID: personID},
			}, nil
		},
	}

	svc := NewReservationService(&mockRoomRepo{}, bookingRepo, personRepo)
	bookings, err := svc.ListBookings(context.Background(), 2)

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, uint(7), bookings[0].ID)
}

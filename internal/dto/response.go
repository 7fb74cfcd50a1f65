package dto

import (
	"time"

	"github.com/campusops/reservation-service/internal/models"
)

type PersonResponse struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

type RoomResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Building  string          `json:"building"`
	Capacity  int             `json:"capacity"`
	Kind      models.RoomKind `json:"kind"`
	Available bool            `json:"available"`
}

type BookingResponse struct {
	ID        uint         `json:"id"`
	Reference string       `json:"reference"`
	RoomID    uint         `json:"room_id"`
	RoomName  string       `json:"room_name,omitempty"`
	PersonID  uint         `json:"person_id"`
	Slot      *models.Slot `json:"slot,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToPersonResponse(p *models.Person) PersonResponse {
	return PersonResponse{
		ID:    p.ID,
		Name:  p.Name,
		Email: p.Email,
		Role:  p.Role,
	}
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Building:  r.Building,
		Capacity:  r.Capacity,
		Kind:      r.Kind,
		Available: r.Available,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		Reference: b.Reference,
		RoomID:    b.RoomID,
		PersonID:  b.PersonID,
		Slot:      b.Slot,
		CreatedAt: b.CreatedAt,
	}
	if b.Room != nil {
		resp.RoomName = b.Room.Name
	}
	return resp
}

package dto

type LoginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type CreateBookingRequest struct {
	PersonID uint   `json:"person_id"`
	Slot     string `json:"slot,omitempty"`
}

type CreateRoomRequest struct {
	Name     string `json:"name"`
	Building string `json:"building"`
	Capacity int    `json:"capacity"`
	Kind     string `json:"kind"`
}

package models

import "time"

type RoomKind string

const (
	KindClassroom  RoomKind = "classroom"
	KindLaboratory RoomKind = "laboratory"
)

// ClassroomBookingLimit caps classroom bookings at one per half-day slot.
const ClassroomBookingLimit = 2

func ParseRoomKind(s string) (RoomKind, bool) {
	switch RoomKind(s) {
	case KindClassroom, KindLaboratory:
		return RoomKind(s), true
	}
	return "", false
}

type Room struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Name      string   `gorm:"not null;uniqueIndex:idx_room_name_building" json:"name"`
	Building  string   `gorm:"not null;uniqueIndex:idx_room_name_building" json:"building"`
	Capacity  int      `gorm:"not null" json:"capacity"`
	Kind      RoomKind `gorm:"type:varchar(20);not null" json:"kind"`
	Available bool     `gorm:"not null;default:true" json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
}

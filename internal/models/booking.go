package models

import "time"

type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
)

// ParseSlot accepts the full tag or the single-letter form used by the
// terminal clients ("m"/"a"). An empty string means no slot requested.
func ParseSlot(s string) (*Slot, bool) {
	switch s {
	case "":
		return nil, true
	case "m", string(SlotMorning):
		slot := SlotMorning
		return &slot, true
	case "a", string(SlotAfternoon):
		slot := SlotAfternoon
		return &slot, true
	}
	return nil, false
}

// Booking links a person to a room. Slot is set for classroom bookings
// only; laboratory bookings carry no schedule. The single row serves both
// the room-side and the person-side ledger view, so deleting it removes
// the booking from both atomically.
type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"type:varchar(36);not null;uniqueIndex" json:"reference"`
	RoomID    uint   `gorm:"not null" json:"room_id"`
	PersonID  uint   `gorm:"not null" json:"person_id"`
	Slot      *Slot  `gorm:"type:varchar(10)" json:"slot,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room   *Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Person *Person `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

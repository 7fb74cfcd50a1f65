// Package availability holds the pure booking-decision rules. It never
// touches storage; callers load rooms with their current bookings and the
// engine decides what is offerable and how the cached available flag must
// change after a mutation.
package availability

import "github.com/campusops/reservation-service/internal/models"

// Change describes a ledger mutation the engine recomputes availability for.
type Change int

const (
	Insert Change = iota
	Remove
)

// Limit returns the maximum number of concurrent bookings a room admits:
// one per half-day slot for classrooms, one per seat for laboratories.
func Limit(room *models.Room) int {
	if room.Kind == models.KindClassroom {
		return models.ClassroomBookingLimit
	}
	return room.Capacity
}

// RequestValid reports whether the role/kind/slot combination is a
// well-formed request. Classrooms are booked by teachers for a slot;
// laboratories are booked by students with no slot. Anything else is a
// caller contract violation, not a conflict.
func RequestValid(role models.Role, kind models.RoomKind, slot *models.Slot) bool {
	switch kind {
	case models.KindClassroom:
		return role == models.RoleTeacher && slot != nil
	case models.KindLaboratory:
		return role == models.RoleStudent && slot == nil
	}
	return false
}

// CanBook decides, against the room's current bookings, whether a booking
// for person/slot may be created. This is the predicate the coordinator
// re-runs under the row lock before inserting.
func CanBook(room *models.Room, bookings []models.Booking, personID uint, slot *models.Slot) bool {
	if len(bookings) >= Limit(room) {
		return false
	}
	switch room.Kind {
	case models.KindClassroom:
		if slot == nil {
			return false
		}
		for _, b := range bookings {
			if b.Slot != nil && *b.Slot == *slot {
				return false
			}
		}
		return true
	case models.KindLaboratory:
		for _, b := range bookings {
			if b.PersonID == personID {
				return false
			}
		}
		return true
	}
	return false
}

// FilterAvailable returns the rooms offerable for the request. Each room
// must carry its bookings preloaded.
//
// A classroom is offerable for a slot when it has fewer than two bookings
// and no existing booking holds that slot, so a room booked for the
// morning is still offered for the afternoon. A laboratory is offerable
// when its available flag is set and the requesting student does not
// already hold a booking on it.
func FilterAvailable(rooms []models.Room, personID uint, slot *models.Slot) []models.Room {
	available := make([]models.Room, 0, len(rooms))
	for i := range rooms {
		room := &rooms[i]
		switch room.Kind {
		case models.KindClassroom:
			if CanBook(room, room.Bookings, personID, slot) {
				available = append(available, *room)
			}
		case models.KindLaboratory:
			if room.Available && holdsNoBooking(room.Bookings, personID) {
				available = append(available, *room)
			}
		}
	}
	return available
}

func holdsNoBooking(bookings []models.Booking, personID uint) bool {
	for _, b := range bookings {
		if b.PersonID == personID {
			return false
		}
	}
	return true
}

// NextAvailable recomputes the cached available flag after a ledger
// change. countBefore is the room's booking count before the change.
// An insert flips the flag to false exactly when it fills the last place;
// a removal always drops the count below the limit, so the room becomes
// available again.
func NextAvailable(room *models.Room, countBefore int, change Change) bool {
	if change == Insert {
		return countBefore+1 < Limit(room)
	}
	return true
}

package database

import (
	"log"

	"github.com/campusops/reservation-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Person{}, &models.Room{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique indexes back up the coordinator's checks at the
	// storage level: one classroom booking per slot, one lab booking per
	// student.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_room_slot
		ON bookings (room_id, slot)
		WHERE slot IS NOT NULL
	`)
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_room_person
		ON bookings (room_id, person_id)
		WHERE slot IS NULL
	`)

	return db
}

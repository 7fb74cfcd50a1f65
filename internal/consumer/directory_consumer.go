package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/campusops/reservation-service/internal/models"
	"github.com/campusops/reservation-service/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DirectoryConsumer mirrors room and person records published by the
// campus directory into the local database. Rooms and persons are owned
// there; this service only keeps a queryable copy.
type DirectoryConsumer struct {
	db      *gorm.DB
	catalog service.CatalogService
}

func NewDirectoryConsumer(db *gorm.DB, catalog service.CatalogService) *DirectoryConsumer {
	return &DirectoryConsumer{db: db, catalog: catalog}
}

func (dc *DirectoryConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			dc.handleMessage(msg)
		}
		log.Println("[DirectoryConsumer] channel closed, stopping consumer")
	}()
}

func (dc *DirectoryConsumer) handleMessage(msg amqp.Delivery) {
	switch msg.RoutingKey {
	case "directory.room":
		dc.upsertRoom(msg)
	case "directory.person":
		dc.upsertPerson(msg)
	default:
		log.Printf("[DirectoryConsumer] ignoring routing key %s", msg.RoutingKey)
		msg.Ack(false)
	}
}

// upsertRoom goes through the catalog service so directory payloads get
// the same attribute checks as administrative creation, and the cached
// available flag is resynced against the ledger rather than taken from
// the message.
func (dc *DirectoryConsumer) upsertRoom(msg amqp.Delivery) {
	var room models.Room
	if err := json.Unmarshal(msg.Body, &room); err != nil {
		log.Printf("[DirectoryConsumer] failed to unmarshal room: %v", err)
		msg.Nack(false, false)
		return
	}

	if err := dc.catalog.SyncRoom(context.Background(), &room); err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			log.Printf("[DirectoryConsumer] dropping invalid room %d: %v", room.ID, err)
			msg.Nack(false, false)
			return
		}
		log.Printf("[DirectoryConsumer] failed to upsert room %d: %v", room.ID, err)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[DirectoryConsumer] synced room %d: %s (%s)", room.ID, room.Name, room.Building)
	msg.Ack(false)
}

func (dc *DirectoryConsumer) upsertPerson(msg amqp.Delivery) {
	var person models.Person
	if err := json.Unmarshal(msg.Body, &person); err != nil {
		log.Printf("[DirectoryConsumer] failed to unmarshal person: %v", err)
		msg.Nack(false, false)
		return
	}

	result := dc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role", "updated_at"}),
	}).Create(&person)

	if result.Error != nil {
		log.Printf("[DirectoryConsumer] failed to upsert person %d: %v", person.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[DirectoryConsumer] synced person %d: %s", person.ID, person.Email)
	msg.Ack(false)
}

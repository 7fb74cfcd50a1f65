package main

import (
	"log"

	"github.com/campusops/reservation-service/config"
	"github.com/campusops/reservation-service/internal/consumer"
	"github.com/campusops/reservation-service/internal/handler"
	"github.com/campusops/reservation-service/internal/middleware"
	"github.com/campusops/reservation-service/internal/repository"
	"github.com/campusops/reservation-service/internal/service"
	"github.com/campusops/reservation-service/pkg/database"
	"github.com/campusops/reservation-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	personRepo := repository.NewPersonRepository(db)

	// Services
	reservationSvc := service.NewReservationService(roomRepo, bookingRepo, personRepo)
	authSvc := service.NewAuthService(personRepo)
	catalogSvc := service.NewCatalogService(roomRepo)

	// RabbitMQ consumer: mirror rooms and persons from the campus directory
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	directoryConsumer := consumer.NewDirectoryConsumer(db, catalogSvc)
	directoryConsumer.Start(msgs)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewAuthHandler(authSvc).RegisterRoutes(e)
	handler.NewRoomHandler(catalogSvc).RegisterRoutes(e)
	handler.NewReservationHandler(reservationSvc).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

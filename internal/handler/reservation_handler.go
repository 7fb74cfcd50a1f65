package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/campusops/reservation-service/internal/dto"
	"github.com/campusops/reservation-service/internal/models"
	"github.com/campusops/reservation-service/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/rooms")
	rooms.GET("/available", h.ListAvailableRooms)
	rooms.POST("/:id/bookings", h.CreateBooking)

	e.DELETE("/api/v1/bookings/:id", h.CancelBooking)
	e.GET("/api/v1/persons/:id/bookings", h.ListBookings)
}

func (h *ReservationHandler) ListAvailableRooms(c echo.Context) error {
	personID, err := strconv.ParseUint(c.QueryParam("person_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "person_id is required")
	}
	slot, ok := models.ParseSlot(c.QueryParam("slot"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "slot must be morning or afternoon")
	}

	rooms, err := h.svc.ListAvailableRooms(c.Request().Context(), uint(personID), slot)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		resp[i] = dto.ToRoomResponse(&rooms[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) CreateBooking(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.PersonID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "person_id is required")
	}
	slot, ok := models.ParseSlot(req.Slot)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "slot must be morning or afternoon")
	}

	booking, err := h.svc.BookRoom(c.Request().Context(), req.PersonID, uint(roomID), slot)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *ReservationHandler) CancelBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	personID, err := strconv.ParseUint(c.QueryParam("person_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "person_id is required")
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), uint(personID), uint(bookingID))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *ReservationHandler) ListBookings(c echo.Context) error {
	personID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid person id")
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), uint(personID))
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// toHTTPError maps the service taxonomy onto HTTP status codes.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrPersonNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrRoomUnavailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidRequest):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/campusops/reservation-service/internal/dto"
	"github.com/campusops/reservation-service/internal/models"
	"github.com/campusops/reservation-service/internal/service"
	"github.com/labstack/echo/v4"
)

type RoomHandler struct {
	svc service.CatalogService
}

func NewRoomHandler(svc service.CatalogService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

func (h *RoomHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/rooms")
	rooms.POST("", h.CreateRoom)
	rooms.GET("", h.ListRooms)
	rooms.GET("/:id", h.GetRoom)
}

// ListRooms returns the rooms of a kind whose available flag is set — the
// raw catalog view, as opposed to the per-person filtering under
// /rooms/available.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	kind, ok := models.ParseRoomKind(c.QueryParam("kind"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "kind must be classroom or laboratory")
	}

	rooms, err := h.svc.ListAvailable(c.Request().Context(), kind)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		resp[i] = dto.ToRoomResponse(&rooms[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateRoom is the administrative path for seeding the catalog directly,
// idempotent per (name, building) like the directory sync.
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Building == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and building are required")
	}
	if req.Capacity < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "capacity must be at least 1")
	}

	room := &models.Room{
		Name:     req.Name,
		Building: req.Building,
		Capacity: req.Capacity,
		Kind:     models.RoomKind(req.Kind),
	}
	if err := h.svc.CreateRoom(c.Request().Context(), room); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *RoomHandler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	room, err := h.svc.GetRoom(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

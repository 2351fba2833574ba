package room

import (
	"net/http"

	"bookify/internal/pkg/applog"
	"bookify/internal/pkg/hateoas"
	"bookify/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	links   *hateoas.Table
}

func NewHandler(service *Service, links *hateoas.Table) *Handler {
	return &Handler{service: service, links: links}
}

// GetAll godoc
// @Summary List all rooms
// @Tags Rooms
// @Produce json
// @Router /rooms [get]
func (h *Handler) GetAll(c *gin.Context) {
	rooms, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Custom("Retrieve list of rooms. Size : %d", len(rooms))

	items := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		id := rooms[i].ID.String()
		links := h.links.Builder(c.Request).
			Add(hateoas.ResourceRoom, hateoas.GetRoom, id).
			Add(hateoas.ResourceRoom, hateoas.UpdateRoom, id).
			Add(hateoas.ResourceReservation, hateoas.CreateReservation, id).
			Build()
		items = append(items, toResponse(&rooms[i], links))
	}

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceRoom, hateoas.CreateRoom, "").
		Add(hateoas.ResourceRoom, hateoas.SearchRooms, "").
		Self(hateoas.ResourceRoom, hateoas.GetAllRooms, "").
		Build()
	response.HAL(c, http.StatusOK, hateoas.NewCollection("rooms", items, links))
}

// GetByID godoc
// @Summary Get a room
// @Tags Rooms
// @Produce json
// @Param id path string true "Room ID"
// @Router /rooms/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}

	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Get("room", room.ID)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceRoom, hateoas.UpdateRoom, id.String()).
		Add(hateoas.ResourceReservation, hateoas.CreateReservation, id.String()).
		Self(hateoas.ResourceRoom, hateoas.GetRoom, id.String()).
		Build()
	response.HAL(c, http.StatusOK, toResponse(room, links))
}

// Create godoc
// @Summary Add a new room
// @Tags Rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body RoomRequest true "Room"
// @Router /rooms [post]
func (h *Handler) Create(c *gin.Context) {
	var req RoomRequest
	if !response.BindJSON(c, &req) {
		return
	}

	room, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Create("room", room.ID)

	id := room.ID.String()
	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceRoom, hateoas.GetRoom, id).
		Add(hateoas.ResourceRoom, hateoas.UpdateRoom, id).
		Self(hateoas.ResourceRoom, hateoas.GetRoom, id).
		Build()
	response.HAL(c, http.StatusCreated, toResponse(room, links))
}

// Update godoc
// @Summary Update a room
// @Tags Rooms
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param body body RoomRequest true "Room"
// @Router /rooms/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req RoomRequest
	if !response.BindJSON(c, &req) {
		return
	}

	room, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Update("room", room.ID)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceRoom, hateoas.GetRoom, id.String()).
		Self(hateoas.ResourceRoom, hateoas.UpdateRoom, id.String()).
		Build()
	response.HAL(c, http.StatusOK, toResponse(room, links))
}

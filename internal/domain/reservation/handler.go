package reservation

import (
	"log"
	"net/http"

	"bookify/internal/pkg/applog"
	"bookify/internal/pkg/hateoas"
	"bookify/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// roomIDPlaceholder fills the room id of collection-level create links.
const roomIDPlaceholder = "{roomId}"

type Handler struct {
	service *Service
	hub     *Hub
	links   *hateoas.Table
}

func NewHandler(service *Service, hub *Hub, links *hateoas.Table) *Handler {
	return &Handler{service: service, hub: hub, links: links}
}

func (h *Handler) itemLinks(c *gin.Context, r *Reservation) hateoas.Links {
	id := r.ID.String()
	return h.links.Builder(c.Request).
		Add(hateoas.ResourceReservation, hateoas.GetReservation, id).
		Add(hateoas.ResourceReservation, hateoas.UpdateReservation, id).
		Add(hateoas.ResourceRoom, hateoas.GetRoom, r.RoomID.String()).
		Build()
}

// GetAll godoc
// @Summary List all reservations
// @Tags Reservations
// @Security BearerAuth
// @Produce json
// @Router /reservations [get]
func (h *Handler) GetAll(c *gin.Context) {
	reservations, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Custom("Retrieve list of reservations. Size : %d", len(reservations))

	items := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		items = append(items, toResponse(&reservations[i], h.itemLinks(c, &reservations[i])))
	}

	links := h.links.Builder(c.Request).
		AddTemplate(hateoas.ResourceReservation, hateoas.CreateReservation, roomIDPlaceholder).
		Add(hateoas.ResourceReservation, hateoas.RoomsOccupation, "").
		Self(hateoas.ResourceReservation, hateoas.GetAllReservations, "").
		Build()
	response.HAL(c, http.StatusOK, hateoas.NewCollection("reservations", items, links))
}

// GetOccupation godoc
// @Summary Reservations of every room in start order
// @Tags Reservations
// @Security BearerAuth
// @Produce json
// @Router /reservations/occupation [get]
func (h *Handler) GetOccupation(c *gin.Context) {
	occ, err := h.service.GetOccupation(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Custom("Retrieve list of rooms occupation. Size : %d", len(occ))

	body := OccupationResponse{Occupation: make(map[string][]ReservationResponse, len(occ))}
	for roomID, reservations := range occ {
		items := make([]ReservationResponse, 0, len(reservations))
		for i := range reservations {
			items = append(items, toResponse(&reservations[i], h.itemLinks(c, &reservations[i])))
		}
		body.Occupation[roomID.String()] = items
	}
	body.Links = h.links.Builder(c.Request).
		Add(hateoas.ResourceReservation, hateoas.GetAllReservations, "").
		Add(hateoas.ResourceRoom, hateoas.SearchRooms, "").
		Self(hateoas.ResourceReservation, hateoas.RoomsOccupation, "").
		Build()
	response.HAL(c, http.StatusOK, body)
}

// Live godoc
// @Summary Stream reservation changes over a websocket
// @Description Optional room_id query parameters pre-subscribe to rooms;
// @Description clients send {"type":"subscribe","room_id":"..."} to add more.
// @Tags Reservations
// @Security BearerAuth
// @Param token query string false "Access token when headers cannot be set"
// @Param room_id query []string false "Room IDs"
// @Router /reservations/occupation/live [get]
func (h *Handler) Live(c *gin.Context) {
	if err := h.hub.ServeWS(c.Writer, c.Request, c.QueryArray("room_id")); err != nil {
		log.Printf("ws_upgrade_failed error=%v", err)
	}
}

// GetByID godoc
// @Summary Get a reservation
// @Tags Reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Router /reservations/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Get("reservation", r.ID)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceReservation, hateoas.UpdateReservation, id.String()).
		Add(hateoas.ResourceRoom, hateoas.GetRoom, r.RoomID.String()).
		Self(hateoas.ResourceReservation, hateoas.GetReservation, id.String()).
		Build()
	response.HAL(c, http.StatusOK, toResponse(r, links))
}

// Create godoc
// @Summary Reserve a room
// @Tags Reservations
// @Accept json
// @Produce json
// @Param roomId path string true "Room ID"
// @Param body body ReservationRequest true "Reservation"
// @Router /reservations/{roomId} [post]
func (h *Handler) Create(c *gin.Context) {
	roomID, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req ReservationRequest
	if !response.BindJSON(c, &req) {
		return
	}

	r, err := h.service.Create(c.Request.Context(), roomID, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Create("reservation", r.ID)

	id := r.ID.String()
	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceReservation, hateoas.GetReservation, id).
		Add(hateoas.ResourceReservation, hateoas.UpdateReservation, id).
		Self(hateoas.ResourceReservation, hateoas.CreateReservation, roomID.String()).
		Build()
	response.HAL(c, http.StatusCreated, toResponse(r, links))
}

// Update godoc
// @Summary Move or edit a reservation
// @Tags Reservations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param reservationId path string true "Reservation ID"
// @Param body body ReservationRequest true "Reservation"
// @Router /reservations/{reservationId} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req ReservationRequest
	if !response.BindJSON(c, &req) {
		return
	}

	r, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Update("reservation", r.ID)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceReservation, hateoas.GetReservation, id.String()).
		Self(hateoas.ResourceReservation, hateoas.UpdateReservation, id.String()).
		Build()
	response.HAL(c, http.StatusOK, toResponse(r, links))
}

// SearchRooms godoc
// @Summary Rooms free for a period
// @Tags Rooms
// @Produce json
// @Param from query string true "Start (RFC 3339)"
// @Param to query string true "End (RFC 3339)"
// @Param capacity query int false "Minimum capacity"
// @Router /rooms/search [get]
func (h *Handler) SearchRooms(c *gin.Context) {
	var q SearchQuery
	if !response.BindQuery(c, &q) {
		return
	}
	period, err := NewInterval(q.From, q.To)
	if err != nil {
		response.FromError(c, err)
		return
	}

	rooms, err := h.service.SearchRooms(c.Request.Context(), period, q.Capacity)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Custom("Search free rooms. Size : %d", len(rooms))

	items := make([]AvailableRoomResponse, 0, len(rooms))
	for _, r := range rooms {
		id := r.ID.String()
		items = append(items, AvailableRoomResponse{
			ID:       r.ID,
			Number:   r.Number,
			Name:     r.Name,
			Floor:    r.Floor,
			Capacity: r.Capacity,
			Links: h.links.Builder(c.Request).
				Add(hateoas.ResourceRoom, hateoas.GetRoom, id).
				Add(hateoas.ResourceReservation, hateoas.CreateReservation, id).
				Build(),
		})
	}

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceRoom, hateoas.GetAllRooms, "").
		Self(hateoas.ResourceRoom, hateoas.SearchRooms, "").
		Build()
	response.HAL(c, http.StatusOK, hateoas.NewCollection("rooms", items, links))
}

package offer

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
// @Summary List all offers
// @Tags Offers
// @Produce json
// @Router /offers [get]
func (h *Handler) GetAll(c *gin.Context) {
	offers, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Custom("Retrieve list of offers. Size : %d", len(offers))

	items := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		id := offers[i].ID.String()
		links := h.links.Builder(c.Request).
			Add(hateoas.ResourceOffer, hateoas.GetOffer, id).
			Add(hateoas.ResourceOffer, hateoas.UpdateOffer, id).
			Build()
		items = append(items, toResponse(&offers[i], links))
	}

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceOffer, hateoas.CreateOffer, "").
		Add(hateoas.ResourceOffer, hateoas.GetActiveOffers, "").
		Self(hateoas.ResourceOffer, hateoas.GetAllOffers, "").
		Build()
	response.HAL(c, http.StatusOK, hateoas.NewCollection("offers", items, links))
}

// GetActive godoc
// @Summary List offers valid right now
// @Tags Offers
// @Produce json
// @Router /offers/active [get]
func (h *Handler) GetActive(c *gin.Context) {
	offers, err := h.service.GetActive(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Custom("Retrieve list of active offers. Size : %d", len(offers))

	items := make([]OfferResponse, 0, len(offers))
	for i := range offers {
		links := h.links.Builder(c.Request).
			Add(hateoas.ResourceOffer, hateoas.GetOffer, offers[i].ID.String()).
			Build()
		items = append(items, toResponse(&offers[i], links))
	}

	links := h.links.Builder(c.Request).
		Self(hateoas.ResourceOffer, hateoas.GetActiveOffers, "").
		Build()
	response.HAL(c, http.StatusOK, hateoas.NewCollection("offers", items, links))
}

// GetByID godoc
// @Summary Get an offer
// @Tags Offers
// @Produce json
// @Param id path string true "Offer ID"
// @Router /offers/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}

	o, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Get("offer", o.ID)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceOffer, hateoas.UpdateOffer, id.String()).
		Self(hateoas.ResourceOffer, hateoas.GetOffer, id.String()).
		Build()
	response.HAL(c, http.StatusOK, toResponse(o, links))
}

// Create godoc
// @Summary Add an offer
// @Tags Offers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body OfferRequest true "Offer"
// @Router /offers [post]
func (h *Handler) Create(c *gin.Context) {
	var req OfferRequest
	if !response.BindJSON(c, &req) {
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Create("offer", o.ID)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceOffer, hateoas.GetOffer, o.ID.String()).
		Self(hateoas.ResourceOffer, hateoas.CreateOffer, "").
		Build()
	response.HAL(c, http.StatusCreated, toResponse(o, links))
}

// Update godoc
// @Summary Update an offer
// @Tags Offers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Offer ID"
// @Param body body OfferRequest true "Offer"
// @Router /offers/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := response.UUIDParam(c, "id")
	if !ok {
		return
	}
	var req OfferRequest
	if !response.BindJSON(c, &req) {
		return
	}

	o, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	applog.Update("offer", o.ID)

	links := h.links.Builder(c.Request).
		Add(hateoas.ResourceOffer, hateoas.GetOffer, id.String()).
		Self(hateoas.ResourceOffer, hateoas.UpdateOffer, id.String()).
		Build()
	response.HAL(c, http.StatusOK, toResponse(o, links))
}

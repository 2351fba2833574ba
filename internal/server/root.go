package server

import (
	"context"
	"net/http"
	"time"

	"bookify/internal/pkg/hateoas"
	"bookify/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type mainLinks struct {
	Links hateoas.Links `json:"_links"`
}

// mainLinksHandler lists the entry points of the API.
func mainLinksHandler(links *hateoas.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := mainLinks{
			Links: links.Builder(c.Request).
				Add(hateoas.ResourceAuth, hateoas.Login, "").
				Add(hateoas.ResourceAuth, hateoas.Logout, "").
				Add(hateoas.ResourceRoom, hateoas.GetAllRooms, "").
				Add(hateoas.ResourceRoom, hateoas.SearchRooms, "").
				Add(hateoas.ResourceEmployee, hateoas.GetAllEmployees, "").
				Add(hateoas.ResourceEmployee, hateoas.CheckEmail, "").
				Add(hateoas.ResourceOffer, hateoas.GetAllOffers, "").
				Add(hateoas.ResourceOffer, hateoas.GetActiveOffers, "").
				Add(hateoas.ResourceReservation, hateoas.GetAllReservations, "").
				Add(hateoas.ResourceReservation, hateoas.RoomsOccupation, "").
				Add(hateoas.ResourceReservation, hateoas.CreateReservation, "{roomId}").
				Self(hateoas.ResourceRoot, hateoas.GetMainLinks, "").
				Build(),
		}
		response.HAL(c, http.StatusOK, body)
	}
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database is unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}

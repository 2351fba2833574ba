// Package server assembles the HTTP API from the domain packages.
package server

import (
	"bookify/internal/config"
	"bookify/internal/database"
	"bookify/internal/domain/employee"
	"bookify/internal/domain/offer"
	"bookify/internal/domain/reservation"
	"bookify/internal/domain/room"
	"bookify/internal/middleware"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/hateoas"
	"bookify/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Server holds the router and the long-lived pieces main has to shut down.
type Server struct {
	Engine *gin.Engine
	Hub    *reservation.Hub
}

// Migrate creates every table. Rooms go first so reservation constraints
// can reference them.
func Migrate(db *gorm.DB) error {
	if err := database.Migrate(db, &room.Room{}, &employee.Employee{}, &offer.Offer{}); err != nil {
		return err
	}
	return reservation.Migrate(db)
}

func New(cfg *config.Config, db *gorm.DB, clk clock.Clock) *Server {
	if clk == nil {
		clk = clock.NewSystem()
	}

	links := hateoas.Default(cfg.PublicBaseURL)
	tokens := jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	hub := reservation.NewHub(cfg.CORSOrigins)

	roomService := room.NewService(room.NewRepository(db), clk)
	employeeService := employee.NewService(employee.NewRepository(db), tokens, clk)
	offerService := offer.NewService(offer.NewRepository(db), clk)
	reservationService := reservation.NewService(reservation.Deps{
		Repo:      reservation.NewRepository(db),
		Rooms:     roomService,
		Offers:    offerService,
		Employees: employeeService,
		Tx:        database.NewTransactor(db),
		Events:    hub,
		Clock:     clk,
	})

	roomHandler := room.NewHandler(roomService, links)
	employeeHandler := employee.NewHandler(employeeService, links, int64(tokens.TTL().Seconds()))
	offerHandler := offer.NewHandler(offerService, links)
	reservationHandler := reservation.NewHandler(reservationService, hub, links)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", healthHandler(db))

	api := r.Group("/api")
	{
		api.GET("", mainLinksHandler(links))

		room.RegisterPublicRoutes(api, roomHandler)
		employee.RegisterPublicRoutes(api, employeeHandler)
		offer.RegisterPublicRoutes(api, offerHandler)
		reservation.RegisterPublicRoutes(api, reservationHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(tokens))
		{
			employee.RegisterProtectedRoutes(protected, employeeHandler)
			reservation.RegisterProtectedRoutes(protected, reservationHandler)
		}

		admin := api.Group("")
		admin.Use(middleware.JWTAuth(tokens), middleware.AdminOnly())
		{
			room.RegisterAdminRoutes(admin, roomHandler)
			employee.RegisterAdminRoutes(admin, employeeHandler)
			offer.RegisterAdminRoutes(admin, offerHandler)
		}
	}

	return &Server{Engine: r, Hub: hub}
}

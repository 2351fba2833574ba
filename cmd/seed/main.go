package main

import (
	"context"
	"errors"
	"log"
	"time"

	"bookify/internal/config"
	"bookify/internal/database"
	"bookify/internal/domain/employee"
	"bookify/internal/domain/offer"
	"bookify/internal/domain/room"
	"bookify/internal/pkg/apperr"
	"bookify/internal/pkg/clock"
	"bookify/internal/pkg/jwt"
	"bookify/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := server.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	ctx := context.Background()
	clk := clock.NewSystem()

	// ================== EMPLOYEES ==================
	log.Println("Creating employees...")
	employees := employee.NewService(employee.NewRepository(db), jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL), clk)
	staff := []employee.CreateEmployeeRequest{
		{FirstName: "Anna", LastName: "Admin", Email: "admin@bookify.local", Password: "admin1234", Role: employee.RoleAdmin},
		{FirstName: "Piotr", LastName: "Recepcja", Email: "desk@bookify.local", Password: "desk12345", Role: employee.RoleEmployee},
	}
	for _, req := range staff {
		if _, err := employees.Create(ctx, req); err != nil {
			skipExisting("employee "+req.Email, err)
			continue
		}
		log.Printf("Employee created: %s / %s", req.Email, req.Password)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")
	rooms := room.NewService(room.NewRepository(db), clk)
	for _, req := range []room.RoomRequest{
		{Number: 101, Name: "Aquarium", Floor: 1, Capacity: 4, Description: "Small meeting room with a screen"},
		{Number: 102, Name: "Library", Floor: 1, Capacity: 8, Description: "Quiet room with a whiteboard"},
		{Number: 201, Name: "Conference Hall", Floor: 2, Capacity: 30, Description: "Projector and sound system"},
	} {
		if _, err := rooms.Create(ctx, req); err != nil {
			skipExisting("room "+req.Name, err)
			continue
		}
		log.Printf("Room created: %d %s", req.Number, req.Name)
	}

	// ================== OFFERS ==================
	log.Println("Creating offers...")
	offers := offer.NewService(offer.NewRepository(db), clk)
	existing, err := offers.GetAll(ctx)
	if err != nil {
		log.Fatalf("list offers: %v", err)
	}
	seeded := make(map[string]bool, len(existing))
	for _, o := range existing {
		seeded[o.Title] = true
	}
	now := clk.Now()
	inactive := false
	for _, req := range []offer.OfferRequest{
		{Title: "Hourly rate", Description: "Standard hourly booking", Price: 50, ValidFrom: now, ValidTo: now.AddDate(1, 0, 0)},
		{Title: "Full day", Description: "Eight hours with coffee", Price: 320, ValidFrom: now, ValidTo: now.AddDate(0, 3, 0)},
		{Title: "Launch promo", Description: "Expired launch discount", Price: 30, Active: &inactive, ValidFrom: now.AddDate(0, -2, 0), ValidTo: now.Add(-24 * time.Hour)},
	} {
		if seeded[req.Title] {
			log.Printf("offer %s already exists, skipping", req.Title)
			continue
		}
		if _, err := offers.Create(ctx, req); err != nil {
			log.Fatalf("offer %s: %v", req.Title, err)
		}
		log.Printf("Offer created: %s", req.Title)
	}

	log.Println("Seed completed")
}

func skipExisting(what string, err error) {
	if errors.Is(err, apperr.ErrConflict) {
		log.Printf("%s already exists, skipping", what)
		return
	}
	log.Fatalf("%s: %v", what, err)
}

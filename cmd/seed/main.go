// Command seed loads development fixtures: a host with two listings and
// offerings, a guest, and ready-to-use JWTs for both printed to stdout.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"homestay/internal/config"
	"homestay/internal/database"
	"homestay/internal/domain"
	jwtsvc "homestay/internal/pkg/jwt"
	"homestay/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := database.EnsureBookingConstraints(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	listings := repository.NewListingRepository(db)
	offerings := repository.NewServiceOfferingRepository(db)

	host := &domain.User{Name: "Maja Novak", Email: "maja@example.com", Role: domain.RoleHost}
	guest := &domain.User{Name: "Tom Rivera", Email: "tom@example.com", Role: domain.RoleGuest}
	for _, u := range []*domain.User{host, guest} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
	}

	seaside := &domain.Listing{
		OwnerID:      host.ID,
		Title:        "Seaside apartment with balcony",
		Description:  "Two-bedroom flat a short walk from the beach.",
		City:         "Split",
		Address:      "Obala 12",
		NightlyPrice: decimal.NewFromInt(120),
		Currency:     "EUR",
		MaxGuests:    4,
		Bedrooms:     2,
		InstantBook:  true,
		Amenities:    []string{"wifi", "kitchen", "air_conditioning"},
		IsActive:     true,
	}
	cabin := &domain.Listing{
		OwnerID:      host.ID,
		Title:        "Forest cabin",
		Description:  "Quiet cabin with a wood stove.",
		City:         "Bled",
		Address:      "Gozdna pot 3",
		NightlyPrice: decimal.NewFromInt(85),
		MaxGuests:    2,
		Bedrooms:     1,
		Amenities:    []string{"wifi", "parking"},
		IsActive:     true,
	}
	for _, l := range []*domain.Listing{seaside, cabin} {
		if err := listings.Create(ctx, l); err != nil {
			log.Fatalf("seed listing %q: %v", l.Title, err)
		}
	}

	extras := []*domain.ServiceOffering{
		{ListingID: seaside.ID, Name: "Cleaning", Price: decimal.NewFromInt(30), IsActive: true},
		{ListingID: seaside.ID, Name: "Airport pickup", Price: decimal.NewFromInt(45), IsActive: true},
		{ListingID: cabin.ID, Name: "Firewood bundle", Price: decimal.NewFromInt(15), IsActive: true},
	}
	for _, o := range extras {
		if err := offerings.Create(ctx, o); err != nil {
			log.Fatalf("seed offering %q: %v", o.Name, err)
		}
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hostToken, err := j.GenerateToken(host.ID, string(host.Role))
	if err != nil {
		log.Fatal(err)
	}
	guestToken, err := j.GenerateToken(guest.ID, string(guest.Role))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Seeded 2 users, 2 listings, 3 offerings.")
	fmt.Printf("host  (id=%d):  %s\n", host.ID, hostToken)
	fmt.Printf("guest (id=%d):  %s\n", guest.ID, guestToken)
}

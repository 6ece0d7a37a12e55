package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"guesthouse/internal/config"
	"guesthouse/internal/database"
	"guesthouse/internal/domain"
	"guesthouse/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found; continuing with environment variables")
	}

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

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)

	seedAdmin(ctx, userRepo)
	seedRooms(ctx, roomRepo)
}

func seedAdmin(ctx context.Context, users *repository.UserRepository) {
	email := envOrDefault("SEED_ADMIN_EMAIL", "admin@101guesthouse.com")
	exists, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		log.Fatal(err)
	}
	if exists {
		log.Println("Admin already seeded")
		return
	}

	password := envOrDefault("SEED_ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	admin := &domain.User{
		Username:     envOrDefault("SEED_ADMIN_USERNAME", "admin"),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal(err)
	}
	log.Println("Default admin seeded")
}

func seedRooms(ctx context.Context, rooms *repository.RoomRepository) {
	existing, err := rooms.GetAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(existing) > 0 {
		log.Println("Rooms already seeded")
		return
	}

	discounted := 450.0
	samples := []*domain.Room{
		{
			Name:         "Executive Suite",
			Description:  "Spacious suite with a king size bed, air conditioning and a private lounge area.",
			RegularPrice: 550,
			BedType:      domain.BedKing,
			WaterHeater:  true, TV: true, DSTV: true, AC: true, Fridge: true, Sofa: true,
			Offer:           true,
			DiscountedPrice: &discounted,
			ImageURLs:       []string{},
			IsAvailable:     true,
		},
		{
			Name:         "Standard Double",
			Description:  "Comfortable double room with a water heater and television.",
			RegularPrice: 200,
			BedType:      domain.BedDouble,
			WaterHeater:  true, TV: true,
			ImageURLs:   []string{},
			IsAvailable: true,
		},
	}

	for _, r := range samples {
		if err := rooms.Create(ctx, r); err != nil {
			log.Fatal(err)
		}
	}
	log.Println("Sample rooms seeded")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"yelloride/internal/fares"
	"yelloride/internal/shared/config"
	"yelloride/internal/shared/database"
	"yelloride/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting YelloRide Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"booking_trips",
		"bookings",
		"route_fares",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedRouteFares(); err != nil {
		return fmt.Errorf("failed to seed route fares: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates the bootstrap admin plus a regular operator account
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"Admin", "User", "admin@yelloride.com", users.RoleAdmin},
		{"Dispatch", "Operator", "dispatch@yelloride.com", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}

// SeedRouteFares loads the serviced route table. Every serviced pair appears
// twice, once per direction.
func (s *Seeder) SeedRouteFares() error {
	fmt.Println("  🚕 Seeding route fares...")

	faresData := []struct {
		region           string
		departure        string
		arrival          string
		reservationFee   int
		localPaymentFee  int
		departureAirport bool
		arrivalAirport   bool
		priority         int
	}{
		// New York
		{"NYC", "Manhattan", "JFK Airport", 50, 80, false, true, 1},
		{"NYC", "JFK Airport", "Manhattan", 50, 80, true, false, 1},
		{"NYC", "Manhattan", "Newark Airport", 60, 90, false, true, 2},
		{"NYC", "Newark Airport", "Manhattan", 60, 90, true, false, 2},
		{"NYC", "Manhattan", "LaGuardia Airport", 40, 60, false, true, 3},
		{"NYC", "LaGuardia Airport", "Manhattan", 40, 60, true, false, 3},

		// Los Angeles
		{"LA", "Downtown", "LAX Airport", 45, 70, false, true, 1},
		{"LA", "LAX Airport", "Downtown", 45, 70, true, false, 1},
		{"LA", "Beverly Hills", "LAX Airport", 40, 60, false, true, 2},
		{"LA", "LAX Airport", "Beverly Hills", 40, 60, true, false, 2},
	}

	for _, fareData := range faresData {
		fare := fares.RouteFare{
			ID:                 uuid.New(),
			Region:             fareData.region,
			Departure:          fareData.departure,
			Arrival:            fareData.arrival,
			ReservationFee:     fareData.reservationFee,
			LocalPaymentFee:    fareData.localPaymentFee,
			DepartureIsAirport: fareData.departureAirport,
			ArrivalIsAirport:   fareData.arrivalAirport,
			Priority:           fareData.priority,
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&fare).Error; err != nil {
			return fmt.Errorf("failed to create fare %s → %s: %w", fare.Departure, fare.Arrival, err)
		}

		fmt.Printf("    ✅ Created fare: [%s] %s → %s ($%d + $%d on site)\n",
			fare.Region, fare.Departure, fare.Arrival, fare.ReservationFee, fare.LocalPaymentFee)
	}

	return nil
}

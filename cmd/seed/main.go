package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"roombook/internal/database"
	"roombook/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "roombook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Booking{},
		&domain.BookingUser{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (join rows first to avoid FK errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_users")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		FirstName:    "Ada",
		LastName:     "Admin",
		Position:     "Office Manager",
		Email:        "admin@roombook.local",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("failed to create admin:", err)
	}

	userHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	users := []domain.User{
		{FirstName: "Grace", LastName: "Hopper", Position: "Engineer", Email: "grace@roombook.local", PasswordHash: string(userHash), Role: domain.RoleUser},
		{FirstName: "Alan", LastName: "Turing", Position: "Researcher", Email: "alan@roombook.local", PasswordHash: string(userHash), Role: domain.RoleUser},
		{FirstName: "Katherine", LastName: "Johnson", Position: "Analyst", Email: "katherine@roombook.local", PasswordHash: string(userHash), Role: domain.RoleUser},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatal("failed to create user:", err)
		}
	}

	log.Println("Creating bookings...")

	now := time.Now().Truncate(time.Hour)
	bookings := []domain.Booking{
		{StartDate: now.Add(24 * time.Hour), EndDate: now.Add(25 * time.Hour), Purpose: "Sprint planning", RoomID: 101},
		{StartDate: now.Add(48 * time.Hour), EndDate: now.Add(50 * time.Hour), Purpose: "Design review", RoomID: 102, IsModerator: true},
		{StartDate: now.Add(72 * time.Hour), EndDate: now.Add(73 * time.Hour), Purpose: "1:1", RoomID: 101},
	}
	for i := range bookings {
		if err := db.Create(&bookings[i]).Error; err != nil {
			log.Fatal("failed to create booking:", err)
		}
	}

	joins := []domain.BookingUser{
		{BookingID: bookings[0].ID, UserID: users[0].ID},
		{BookingID: bookings[0].ID, UserID: users[1].ID},
		{BookingID: bookings[1].ID, UserID: users[1].ID},
		{BookingID: bookings[1].ID, UserID: users[2].ID},
		{BookingID: bookings[2].ID, UserID: users[0].ID},
	}
	for i := range joins {
		if err := db.Create(&joins[i]).Error; err != nil {
			log.Fatal("failed to associate user:", err)
		}
	}

	log.Println("Seed complete:",
		len(users)+1, "users,",
		len(bookings), "bookings,",
		len(joins), "associations")
}

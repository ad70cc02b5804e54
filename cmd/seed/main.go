package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alled0/databaseProject/internal/database"
	"github.com/alled0/databaseProject/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "railway.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Wipe in dependency order so foreign references never dangle.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reminder_logs")
	db.Exec("DELETE FROM waiting_list")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM staff_assignments")
	db.Exec("DELETE FROM schedule_stops")
	db.Exec("DELETE FROM dependents")
	db.Exec("DELETE FROM staff")
	db.Exec("DELETE FROM passengers")
	db.Exec("DELETE FROM stations")
	db.Exec("DELETE FROM trains")

	log.Println("Creating trains and stations...")
	db.Exec("INSERT INTO trains (id, english_name, arabic_name) VALUES (1, 'HHR100', 'قطار الحرمين 100')")
	db.Exec("INSERT INTO trains (id, english_name, arabic_name) VALUES (2, 'HHR200', 'قطار الحرمين 200')")
	db.Exec("INSERT INTO trains (id, english_name, arabic_name) VALUES (3, 'East50', 'قطار الشرق 50')")

	db.Exec("INSERT INTO stations (id, name) VALUES (1, 'Riyadh')")
	db.Exec("INSERT INTO stations (id, name) VALUES (2, 'Jeddah')")
	db.Exec("INSERT INTO stations (id, name) VALUES (3, 'Makkah')")
	db.Exec("INSERT INTO stations (id, name) VALUES (4, 'Madinah')")
	db.Exec("INSERT INTO stations (id, name) VALUES (5, 'Dammam')")

	log.Println("Creating schedules...")
	insertStop(db, 1, 1, 1, "08:00:00")
	insertStop(db, 1, 2, 2, "12:30:00")
	insertStop(db, 1, 3, 3, "14:00:00")
	insertStop(db, 2, 2, 1, "09:15:00")
	insertStop(db, 2, 4, 2, "13:45:00")
	insertStop(db, 3, 1, 1, "06:30:00")
	insertStop(db, 3, 5, 2, "11:00:00")

	log.Println("Creating passengers and staff...")
	db.Exec(
		"INSERT INTO passengers (id, name, email, password_hash, loyalty_stat) VALUES (1, 'Ahmed Ali', 'ahmed@example.com', ?, 'Gold')",
		hash("passenger123"),
	)
	db.Exec(
		"INSERT INTO passengers (id, name, email, password_hash, loyalty_stat) VALUES (2, 'Sara Khan', 'sara@example.com', ?, 'Silver')",
		hash("passenger123"),
	)
	db.Exec(
		"INSERT INTO passengers (id, name, email, password_hash, loyalty_stat) VALUES (3, 'Omar Said', 'omar@example.com', ?, 'None')",
		hash("passenger123"),
	)

	db.Exec("INSERT INTO dependents (id, name, passenger_id) VALUES (1, 'Lina Ali', 1)")

	db.Exec(
		"INSERT INTO staff (id, email, password_hash) VALUES (1, 'admin@railway.sa', ?)",
		hash("admin123"),
	)
	db.Exec(
		"INSERT INTO staff (id, email, password_hash) VALUES (2, 'driver@railway.sa', ?)",
		hash("staff123"),
	)

	log.Println("Creating reservations...")
	db.Exec(
		"INSERT INTO reservations (id, train_id, date, from_station, to_station, coach_type, seat_number, passenger_id, paid) VALUES (1, 1, '2026-09-15', 1, 3, 'Economy', '12A', 1, ?)",
		false,
	)
	db.Exec(
		"INSERT INTO reservations (id, train_id, date, from_station, to_station, coach_type, seat_number, passenger_id, paid) VALUES (2, 1, '2026-09-15', 1, 3, 'Business', '3C', 2, ?)",
		false,
	)

	// Sara sits on the waitlist so promotion has something to promote.
	db.Exec("INSERT INTO waiting_list (reservation_id) VALUES (2)")

	db.Exec("INSERT INTO staff_assignments (train_id, staff_id, role_code) VALUES (1, 2, 1)")

	log.Println("Seed complete.")
}

func insertStop(db *gorm.DB, trainID, stationID, seq int, departure string) {
	db.Exec(
		"INSERT INTO schedule_stops (train_id, station_id, stop_sequence, departure_time) VALUES (?, ?, ?, ?)",
		trainID, stationID, seq, departure,
	)
}

func hash(pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	return string(h)
}

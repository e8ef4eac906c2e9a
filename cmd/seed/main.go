package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"

	"go4rent-backend/internal/config"
	"go4rent-backend/internal/domain"
	"go4rent-backend/internal/logger"
)

type SeedUser struct {
	Email       string        `yaml:"email"`
	PhoneNumber string        `yaml:"phone_number"`
	Name        string        `yaml:"name"`
	Roles       []domain.Role `yaml:"roles"`
}

type SeedEquipment struct {
	CategoryID              int32                  `yaml:"category_id"`
	OwnerEmail              string                 `yaml:"owner_email"` // empty for company stock
	BarcodeValue            string                 `yaml:"barcode_value"`
	Status                  domain.EquipmentStatus `yaml:"status"`
	MinRentalPeriodHours    int                    `yaml:"min_rental_period_hours"`
	MaxRentalPeriodHours    int                    `yaml:"max_rental_period_hours"`
	RewardsPointsAcceptable bool                   `yaml:"rewards_points_acceptable"`
}

type SeedData struct {
	Users     []SeedUser      `yaml:"users"`
	Equipment []SeedEquipment `yaml:"equipment"`
}

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	seedPath := flag.String("data", "db/seed.example.yaml", "Path to seed data file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	data, err := readSeedFile(*seedPath)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Connected to database", "host", cfg.Database.Host, "database", cfg.Database.Database)

	if err := populateData(db, data); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}
	logger.Info("Seed data populated", "users", len(data.Users), "equipment", len(data.Equipment))
}

func readSeedFile(filename string) (*SeedData, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return parseSeedData(raw)
}

func parseSeedData(raw []byte) (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	for i := range data.Equipment {
		eq := &data.Equipment[i]
		if eq.Status == "" {
			eq.Status = domain.EquipmentStatusAvailable
		}
		if eq.MinRentalPeriodHours == 0 {
			eq.MinRentalPeriodHours = 1
		}
		if eq.MaxRentalPeriodHours == 0 {
			eq.MaxRentalPeriodHours = 720
		}
		if eq.BarcodeValue == "" {
			return nil, fmt.Errorf("equipment %d: barcode_value is required", i)
		}
		if eq.MinRentalPeriodHours > eq.MaxRentalPeriodHours {
			return nil, fmt.Errorf("equipment %s: min_rental_period_hours exceeds max_rental_period_hours", eq.BarcodeValue)
		}
	}
	return &data, nil
}

// populateData inserts users, their role grants and equipment in one
// transaction. Roles must already exist; schema.sql seeds the defaults.
func populateData(db *sql.DB, data *SeedData) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	userIDs := make(map[string]int32, len(data.Users))
	for i, u := range data.Users {
		logger.Info("Creating user", "index", i+1, "total", len(data.Users), "email", u.Email)

		var userID int32
		err = tx.QueryRow(`
			INSERT INTO users (email, phone_number, name)
			VALUES ($1, $2, $3)
			RETURNING id
		`, u.Email, u.PhoneNumber, u.Name).Scan(&userID)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		userIDs[u.Email] = userID

		for _, role := range u.Roles {
			res, err := tx.Exec(`
				INSERT INTO user_roles (user_id, role_id)
				SELECT $1, id FROM roles WHERE name = $2
			`, userID, role)
			if err != nil {
				return fmt.Errorf("failed to grant role %s to %s: %w", role, u.Email, err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return fmt.Errorf("unknown role %s for %s", role, u.Email)
			}
		}
	}

	for _, eq := range data.Equipment {
		var ownerID sql.NullInt32
		if eq.OwnerEmail != "" {
			id, ok := userIDs[eq.OwnerEmail]
			if !ok {
				return fmt.Errorf("equipment %s: owner %s is not in the seed file", eq.BarcodeValue, eq.OwnerEmail)
			}
			ownerID = sql.NullInt32{Int32: id, Valid: true}
		}

		var equipmentID int32
		err = tx.QueryRow(`
			INSERT INTO equipment (category_id, owner_id, barcode_value, status, min_rental_period_hours,
			                       max_rental_period_hours, rewards_points_acceptable)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, eq.CategoryID, ownerID, eq.BarcodeValue, eq.Status, eq.MinRentalPeriodHours,
			eq.MaxRentalPeriodHours, eq.RewardsPointsAcceptable).Scan(&equipmentID)
		if err != nil {
			return fmt.Errorf("failed to create equipment %s: %w", eq.BarcodeValue, err)
		}
		logger.Info("Created equipment", "equipmentID", equipmentID, "barcode", eq.BarcodeValue, "status", eq.Status)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

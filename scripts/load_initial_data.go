package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sms-assistant-backend/internal/config"
	"sms-assistant-backend/internal/database"
	"sms-assistant-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Password    string   `yaml:"password"`
	Address     string   `yaml:"address,omitempty"`
	Description string   `yaml:"description,omitempty"`
	ShortCodes  []string `yaml:"short_codes,omitempty"`
}

type AreaData struct {
	Name    string   `yaml:"name"`
	Numbers []string `yaml:"numbers,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type AreasFile struct {
	Areas []AreaData `yaml:"areas"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	areas, err := loadAreas(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load areas: %w", err)
	}
	for _, a := range areas {
		if err := upsertArea(db, &a); err != nil {
			return fmt.Errorf("failed to seed area %q: %w", a.Name, err)
		}
	}
	log.Printf("Seeded %d areas", len(areas))

	orgs, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}
	for _, o := range orgs {
		if err := upsertOrganization(db, &o); err != nil {
			return fmt.Errorf("failed to seed organization %q: %w", o.Name, err)
		}
	}
	log.Printf("Seeded %d organizations", len(orgs))

	return nil
}

func loadAreas(dataDir string) ([]AreaData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "areas.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file AreasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Areas, nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "organizations.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file OrganizationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Organizations, nil
}

func upsertArea(db *gorm.DB, data *AreaData) error {
	var existing models.Area
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		// Keep the existing roster; seeds never overwrite registrations.
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(&models.Area{
		Name:    data.Name,
		Numbers: strings.Join(data.Numbers, ","),
	}).Error
}

func upsertOrganization(db *gorm.DB, data *OrganizationData) error {
	var org models.Organization
	err := db.Where("name = ?", data.Name).First(&org).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return hashErr
		}
		org = models.Organization{
			Name:         data.Name,
			Email:        data.Email,
			PasswordHash: string(hash),
			Address:      data.Address,
			Description:  data.Description,
		}
		if err := db.Create(&org).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	for _, code := range data.ShortCodes {
		if err := upsertShortCode(db, org.ID, code); err != nil {
			return err
		}
	}
	return nil
}

func upsertShortCode(db *gorm.DB, orgID uuid.UUID, code string) error {
	var existing models.ShortCode
	err := db.Where("code = ?", code).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return db.Create(&models.ShortCode{
		Code:           code,
		OrganizationID: orgID,
	}).Error
}

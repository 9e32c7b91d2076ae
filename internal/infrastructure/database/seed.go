package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/itsmenoahpoli/capstone-dentalease-api-app/domain"
)

// Seed provisions the default users (one per role) and the dental service
// catalogue. It is idempotent: existing rows are left untouched.
func Seed(db *gorm.DB, passwordSvc domain.PasswordService) error {
	if err := seedUsers(db, passwordSvc); err != nil {
		return err
	}
	return seedServices(db)
}

func seedUsers(db *gorm.DB, passwordSvc domain.PasswordService) error {
	roles := []domain.Role{domain.RoleAdministrator, domain.RoleStaff, domain.RolePatient}

	for _, role := range roles {
		email := fmt.Sprintf("%s@dentalease.com", role)

		var count int64
		if err := db.Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check seed user %s: %w", email, err)
		}
		if count > 0 {
			continue
		}

		hash, err := passwordSvc.Hash("password")
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		user := &domain.User{
			Name:         string(role),
			Email:        email,
			PasswordHash: hash,
			Role:         role,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", email, err)
		}
		log.Printf("seeded user %s", email)
	}

	return nil
}

func seedServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.ClinicService{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	services := []domain.ClinicService{
		{Category: "Preventive Care", Name: "Dental Cleaning", Price: 150.00, Status: "offered"},
		{Category: "Preventive Care", Name: "Dental Examination", Price: 100.00, Status: "offered"},
		{Category: "Preventive Care", Name: "X-Ray (Single Tooth)", Price: 50.00, Status: "offered"},
		{Category: "Preventive Care", Name: "Full Mouth X-Ray", Price: 200.00, Status: "offered"},
		{Category: "Restorative Dentistry", Name: "Dental Filling", Price: 200.00, Status: "offered"},
		{Category: "Restorative Dentistry", Name: "Root Canal Treatment", Price: 800.00, Status: "offered"},
		{Category: "Restorative Dentistry", Name: "Dental Crown", Price: 1200.00, Status: "offered"},
		{Category: "Restorative Dentistry", Name: "Dental Bridge", Price: 2500.00, Status: "offered"},
		{Category: "Cosmetic Dentistry", Name: "Teeth Whitening", Price: 300.00, Status: "offered"},
		{Category: "Cosmetic Dentistry", Name: "Dental Veneers", Price: 1500.00, Status: "offered"},
		{Category: "Cosmetic Dentistry", Name: "Invisible Braces", Price: 3500.00, Status: "offered"},
		{Category: "Oral Surgery", Name: "Tooth Extraction", Price: 250.00, Status: "offered"},
		{Category: "Oral Surgery", Name: "Wisdom Tooth Removal", Price: 400.00, Status: "offered"},
		{Category: "Oral Surgery", Name: "Dental Implant", Price: 3000.00, Status: "offered"},
		{Category: "Emergency Care", Name: "Emergency Dental Visit", Price: 200.00, Status: "offered"},
		{Category: "Emergency Care", Name: "Toothache Treatment", Price: 150.00, Status: "offered"},
		{Category: "Pediatric Dentistry", Name: "Child Dental Cleaning", Price: 120.00, Status: "offered"},
		{Category: "Pediatric Dentistry", Name: "Child Dental Examination", Price: 80.00, Status: "offered"},
		{Category: "Orthodontics", Name: "Traditional Braces", Price: 5000.00, Status: "offered"},
		{Category: "Orthodontics", Name: "Retainer", Price: 300.00, Status: "offered"},
	}

	if err := db.Create(&services).Error; err != nil {
		return fmt.Errorf("failed to seed services: %w", err)
	}
	log.Printf("seeded %d services", len(services))

	return nil
}

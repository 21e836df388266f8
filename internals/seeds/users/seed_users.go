package users

import (
	"log"
	"time"

	"gorm.io/gorm"

	"admissions_backend/internals/configs"
	"admissions_backend/internals/constants"
	programModel "admissions_backend/internals/features/admissions/programs/model"
	authHelper "admissions_backend/internals/features/users/auth/helper"
	userModel "admissions_backend/internals/features/users/user/model"
)

// Seed bootstraps an admin account (ADMIN_EMAIL / ADMIN_PASSWORD) and a few
// sample programs. Idempotent: existing rows are left alone.
func Seed(db *gorm.DB) {
	adminEmail := configs.GetEnv("ADMIN_EMAIL", "admin@admissions.local")
	adminPassword := configs.GetEnv("ADMIN_PASSWORD")
	if adminPassword == "" {
		log.Println("[WARN] ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	admin := seedAdmin(db, adminEmail, adminPassword)
	if admin == nil {
		return
	}
	seedPrograms(db, admin)
}

func seedAdmin(db *gorm.DB, email, password string) *userModel.UserModel {
	var existing userModel.UserModel
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("[INFO] admin '%s' already exists, skipped", email)
		return &existing
	}

	hashed, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("[ERROR] seed admin hash: %v", err)
		return nil
	}

	admin := userModel.UserModel{
		Name:     "Admissions Admin",
		Email:    email,
		Password: hashed,
		Role:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] seed admin insert: %v", err)
		return nil
	}
	log.Printf("[INFO] seeded admin '%s'", email)
	return &admin
}

func seedPrograms(db *gorm.DB, admin *userModel.UserModel) {
	samples := []programModel.ProgramModel{
		{
			Title:          "Computer Science BSc",
			Description:    "Four-year undergraduate degree covering algorithms, systems and software engineering.",
			Eligibility:    "High school diploma with mathematics.",
			Duration:       "4 years",
			Fees:           12000,
			Deadline:       time.Now().AddDate(0, 6, 0),
			IsActive:       true,
			TotalSeats:     120,
			AvailableSeats: 120,
			CreatedBy:      admin.ID,
		},
		{
			Title:          "Business Administration MBA",
			Description:    "Two-year graduate program in management and strategy.",
			Eligibility:    "Bachelor degree and two years of work experience.",
			Duration:       "2 years",
			Fees:           18000,
			Deadline:       time.Now().AddDate(0, 4, 0),
			IsActive:       true,
			TotalSeats:     60,
			AvailableSeats: 60,
			CreatedBy:      admin.ID,
		},
	}

	for _, p := range samples {
		var existing programModel.ProgramModel
		if err := db.Where("title = ?", p.Title).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Printf("[ERROR] seed program '%s': %v", p.Title, err)
			continue
		}
		log.Printf("[INFO] seeded program '%s'", p.Title)
	}
}

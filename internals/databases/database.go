package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"admissions_backend/internals/configs"
	applicationModel "admissions_backend/internals/features/admissions/applications/model"
	programModel "admissions_backend/internals/features/admissions/programs/model"
	userModel "admissions_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "disable")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=admissions",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // safe behind PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the three admissions tables in sync with the models.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&programModel.ProgramModel{},
		&applicationModel.ApplicationModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] Migration done.")
}

func WarmUp() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("[WARN] warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Ujama-Surur/SmartStay/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "smartstay_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, migrates the schema and
// seeds sample data. Returns the handle for explicit injection into the
// services; no package-level DB global.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return nil, err
	}

	SeedDatabase(db)
	return db, nil
}

// SeedDatabase inserts the sample rooms and accounts on first start.
// Idempotent: it skips any table that already has rows.
func SeedDatabase(db *gorm.DB) {
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", RoomType: models.RoomTypeSingle, PricePerNight: 50000, Capacity: 1, IsAvailable: true},
			{RoomNumber: "102", RoomType: models.RoomTypeSingle, PricePerNight: 50000, Capacity: 1, IsAvailable: true},
			{RoomNumber: "201", RoomType: models.RoomTypeDouble, PricePerNight: 80000, Capacity: 2, IsAvailable: true},
			{RoomNumber: "202", RoomType: models.RoomTypeDouble, PricePerNight: 80000, Capacity: 2, IsAvailable: true},
			{RoomNumber: "301", RoomType: models.RoomTypeSuite, PricePerNight: 150000, Capacity: 4, IsAvailable: true},
			{RoomNumber: "302", RoomType: models.RoomTypeSuite, PricePerNight: 150000, Capacity: 4, IsAvailable: true},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		return
	}

	type seedUser struct {
		username string
		email    string
		password string
		role     string
		phone    string
		position string
		salary   float64
		hireDate string
	}
	seeds := []seedUser{
		{"admin", "admin@smartstay.com", "admin123", models.RoleAdmin, "", "", 0, ""},
		{"reception", "reception@smartstay.com", "recep123", models.RoleReceptionist, "", "Receptionist", 2500000, "2024-01-01"},
		{"housekeeping", "housekeeping@smartstay.com", "staff123", models.RoleStaff, "", "Housekeeping", 1800000, "2024-01-01"},
		{"john_guest", "john@email.com", "guest123", models.RoleGuest, "+1234567890", "", 0, ""},
	}

	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash password for %s: %v", s.username, err)
			continue
		}
		user := models.User{
			Username: s.username,
			Email:    s.email,
			Password: string(hash),
			Role:     s.role,
			Phone:    s.phone,
			Position: s.position,
			Salary:   s.salary,
			HireDate: s.hireDate,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("warning: failed to seed user %s: %v", s.username, err)
		}
	}
	log.Println("Sample users seeded")
}

package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ujama-Surur/SmartStay/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Authenticate checks a username/password pair against the stored
// bcrypt hash. Unknown usernames and bad passwords are indistinguishable
// to the caller.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// RegisterGuest creates a guest account with a hashed password.
func (s *UserService) RegisterGuest(username, email, password, phone string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: string(hash),
		Role:     models.RoleGuest,
		Phone:    strings.TrimSpace(phone),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return &user, nil
}

// AddStaff creates a staff or receptionist account. Hire date is set to
// today; other roles are rejected.
func (s *UserService) AddStaff(username, email, password, role, position string, salary float64) (*models.User, error) {
	if role != models.RoleStaff && role != models.RoleReceptionist {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: string(hash),
		Role:     role,
		Position: strings.TrimSpace(position),
		Salary:   salary,
		HireDate: time.Now().Format(dateLayout),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &user, nil
}

// ListStaff returns all staff and receptionist accounts.
func (s *UserService) ListStaff() ([]models.User, error) {
	var users []models.User
	if err := s.DB.
		Where("role IN ?", []string{models.RoleStaff, models.RoleReceptionist}).
		Order("id").
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return users, nil
}

// DeleteStaff removes a staff or receptionist account. Admins and
// guests cannot be deleted through this path.
func (s *UserService) DeleteStaff(userID uint) error {
	res := s.DB.
		Where("id = ? AND role IN ?", userID, []string{models.RoleStaff, models.RoleReceptionist}).
		Delete(&models.User{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

package services

import (
	"errors"
	"time"

	"faculty-portal/app/errs"
	"faculty-portal/app/models"
	"faculty-portal/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username   string
	Password   string
	Email      string
	FullName   string
	Role       string
	Department string
}

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

// Register creates an active account. Passwords are stored only as a
// bcrypt hash.
func (s *UserService) Register(req RegisterRequest) (uint, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" || req.FullName == "" {
		return 0, errs.ErrInvalidInput
	}
	if req.Role == "" {
		req.Role = models.RoleFaculty
	}

	count, err := s.users.CountByUsernameOrEmail(req.Username, req.Email)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, errs.ErrDuplicateIdentity
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	u := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		FullName:     req.FullName,
		Role:         req.Role,
		Department:   req.Department,
		IsActive:     true,
	}
	if err := s.users.Create(&u); err != nil {
		// Two concurrent registrations can both pass the pre-check; the
		// unique constraint decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, errs.ErrDuplicateIdentity
		}
		return 0, err
	}
	return u.ID, nil
}

// Authenticate verifies credentials against active accounts only and
// stamps the last login. Unknown user, wrong password and disabled
// account all come back as the same ErrAuthFailed.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	u, err := s.users.FindActiveByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrAuthFailed
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, errs.ErrAuthFailed
	}
	now := time.Now()
	if err := s.users.TouchLastLogin(u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = &now
	return u, nil
}

// EnsureAdmin seeds the default administrator on first boot.
func (s *UserService) EnsureAdmin(username, password, email string) error {
	count, err := s.users.CountByUsernameOrEmail(username, email)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		FullName:     "System Administrator",
		Role:         models.RoleAdmin,
		Department:   "IT Department",
		IsActive:     true,
	})
}

func (s *UserService) Deactivate(id uint) error { return s.users.SetActive(id, false) }

package repo

import (
	"time"

	"faculty-portal/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) CountByUsernameOrEmail(username, email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("username = ? OR email = ?", username, email).Count(&count).Error
}

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

// FindActiveByUsername ignores deactivated accounts so a disabled
// login looks identical to an unknown one.
func (r *UserRepository) FindActiveByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ? AND is_active = ?", username, true).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) TouchLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *UserRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", active).Error
}

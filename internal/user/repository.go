package user

import (
	"errors"

	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(u *User) error
	FindByID(id uuid.UUID) (*User, error)
	FindByEmail(email string) (*User, error)
	FindAll() ([]User, error)
	Update(u *User) error
	SaveRefreshToken(id uuid.UUID, plaintext string) error
	RefreshToken(id uuid.UUID) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) UserRepository {
	return &repository{db: db}
}

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repository) FindByID(id uuid.UUID) (*User, error) {
	var u User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAll() ([]User, error) {
	var users []User
	if err := r.db.Order("name ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) Update(u *User) error {
	return r.db.Save(u).Error
}

// SaveRefreshToken stores the Google refresh token encrypted at rest.
func (r *repository) SaveRefreshToken(id uuid.UUID, plaintext string) error {
	encrypted, err := config.Encrypt(plaintext)
	if err != nil {
		return err
	}
	return r.db.Model(&User{}).Where("id = ?", id).
		Update("google_refresh_token", encrypted).Error
}

func (r *repository) RefreshToken(id uuid.UUID) (string, error) {
	u, err := r.FindByID(id)
	if err != nil {
		return "", err
	}
	if u.GoogleRefreshToken == "" {
		return "", nil
	}
	return config.Decrypt(u.GoogleRefreshToken)
}

package unit

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUnitNotFound = errors.New("unit not found")

type Repository interface {
	Create(u *Unit) error
	FindAll() ([]Unit, error)
	FindByID(id uuid.UUID) (*Unit, error)
	Update(u *Unit) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *Unit) error {
	return r.db.Create(u).Error
}

func (r *repository) FindAll() ([]Unit, error) {
	var units []Unit
	if err := r.db.Order("name ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Unit, error) {
	var u Unit
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) Update(u *Unit) error {
	return r.db.Save(u).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Unit{}, "id = ?", id).Error
}

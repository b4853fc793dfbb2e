package department

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrConfigNotFound     = errors.New("performance config not found")
)

type Repository interface {
	Create(d *Department) error
	FindAll() ([]Department, error)
	FindByID(id uuid.UUID) (*Department, error)
	Update(d *Department) error
	Delete(id uuid.UUID) error

	FindConfigByDepartment(departmentID uuid.UUID) (*PerformanceConfig, error)
	UpsertConfig(c *PerformanceConfig) error
	DeleteConfig(departmentID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(d *Department) error {
	return r.db.Create(d).Error
}

func (r *repository) FindAll() ([]Department, error) {
	var departments []Department
	if err := r.db.Order("name ASC").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Department, error) {
	var d Department
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) Update(d *Department) error {
	return r.db.Save(d).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Department{}, "id = ?", id).Error
}

func (r *repository) FindConfigByDepartment(departmentID uuid.UUID) (*PerformanceConfig, error) {
	var c PerformanceConfig
	if err := r.db.First(&c, "department_id = ?", departmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) UpsertConfig(c *PerformanceConfig) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "department_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"thresholds", "updated_at"}),
	}).Create(c).Error
}

func (r *repository) DeleteConfig(departmentID uuid.UUID) error {
	return r.db.Delete(&PerformanceConfig{}, "department_id = ?", departmentID).Error
}

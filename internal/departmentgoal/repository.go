package departmentgoal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("department monthly goal not found")

type Repository interface {
	Create(d *DepartmentMonthlyGoal) error
	FindAll() ([]DepartmentMonthlyGoal, error)
	FindByDepartment(departmentID uuid.UUID) ([]DepartmentMonthlyGoal, error)
	FindByID(id uuid.UUID) (*DepartmentMonthlyGoal, error)
	UnitIDByID(id uuid.UUID) (uuid.UUID, error)
	Update(d *DepartmentMonthlyGoal) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(d *DepartmentMonthlyGoal) error {
	return r.db.Create(d).Error
}

func (r *repository) FindAll() ([]DepartmentMonthlyGoal, error) {
	var goals []DepartmentMonthlyGoal
	if err := r.db.
		Preload("PersonalGoals.DailyReports").
		Order("year DESC, month DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByDepartment(departmentID uuid.UUID) ([]DepartmentMonthlyGoal, error) {
	var goals []DepartmentMonthlyGoal
	if err := r.db.
		Preload("PersonalGoals.DailyReports").
		Where("department_id = ?", departmentID).
		Order("year DESC, month DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// FindByID reads unscoped so a soft-deleted goal still renders in a detail
// view; every list query keeps the default scope and excludes it.
func (r *repository) FindByID(id uuid.UUID) (*DepartmentMonthlyGoal, error) {
	var d DepartmentMonthlyGoal
	if err := r.db.Unscoped().
		Preload("PersonalGoals.DailyReports").
		First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &d, nil
}

// UnitIDByID resolves the unit of a live department goal for inheritance by
// linked personal goals. Soft-deleted goals are not linkable.
func (r *repository) UnitIDByID(id uuid.UUID) (uuid.UUID, error) {
	var d DepartmentMonthlyGoal
	if err := r.db.Select("id", "unit_id").First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrGoalNotFound
		}
		return uuid.Nil, err
	}
	return d.UnitID, nil
}

func (r *repository) Update(d *DepartmentMonthlyGoal) error {
	return r.db.Save(d).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&DepartmentMonthlyGoal{}, "id = ?", id).Error
}

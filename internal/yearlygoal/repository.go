package yearlygoal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("yearly goal not found")

type Repository interface {
	Create(y *YearlyGoal) error
	FindAll() ([]YearlyGoal, error)
	FindByYear(year int) ([]YearlyGoal, error)
	FindByID(id uuid.UUID) (*YearlyGoal, error)
	Update(y *YearlyGoal) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(y *YearlyGoal) error {
	return r.db.Create(y).Error
}

// Reads descend three levels so rollups always see the daily reports that
// carry the actuals.
func (r *repository) FindAll() ([]YearlyGoal, error) {
	var goals []YearlyGoal
	if err := r.db.
		Preload("QuarterlySplits").
		Preload("DepartmentGoals.PersonalGoals.DailyReports").
		Order("year DESC, created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByYear(year int) ([]YearlyGoal, error) {
	var goals []YearlyGoal
	if err := r.db.
		Preload("QuarterlySplits").
		Preload("DepartmentGoals.PersonalGoals.DailyReports").
		Where("year = ?", year).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByID(id uuid.UUID) (*YearlyGoal, error) {
	var y YearlyGoal
	if err := r.db.
		Preload("QuarterlySplits").
		Preload("DepartmentGoals.PersonalGoals.DailyReports").
		First(&y, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &y, nil
}

func (r *repository) Update(y *YearlyGoal) error {
	return r.db.Save(y).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&YearlyGoal{}, "id = ?", id).Error
}

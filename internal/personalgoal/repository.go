package personalgoal

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("personal monthly goal not found")

type Repository interface {
	Create(g *PersonalMonthlyGoal) error
	FindAll() ([]PersonalMonthlyGoal, error)
	FindByMonth(year, month int) ([]PersonalMonthlyGoal, error)
	FindByUser(userID uuid.UUID) ([]PersonalMonthlyGoal, error)
	FindByID(id uuid.UUID) (*PersonalMonthlyGoal, error)
	Exists(id uuid.UUID) (bool, error)
	Update(g *PersonalMonthlyGoal) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(g *PersonalMonthlyGoal) error {
	return r.db.Create(g).Error
}

func (r *repository) FindAll() ([]PersonalMonthlyGoal, error) {
	var goals []PersonalMonthlyGoal
	if err := r.db.
		Preload("DailyReports").
		Order("year DESC, month DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByMonth(year, month int) ([]PersonalMonthlyGoal, error) {
	var goals []PersonalMonthlyGoal
	if err := r.db.
		Preload("DailyReports").
		Where("year = ? AND month = ?", year, month).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *repository) FindByUser(userID uuid.UUID) ([]PersonalMonthlyGoal, error) {
	var goals []PersonalMonthlyGoal
	if err := r.db.
		Preload("DailyReports").
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// FindByID reads unscoped so a soft-deleted goal is still viewable in a
// detail screen; list queries keep the default scope and exclude it.
func (r *repository) FindByID(id uuid.UUID) (*PersonalMonthlyGoal, error) {
	var g PersonalMonthlyGoal
	if err := r.db.Unscoped().
		Preload("DailyReports").
		First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.Model(&PersonalMonthlyGoal{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) Update(g *PersonalMonthlyGoal) error {
	return r.db.Save(g).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&PersonalMonthlyGoal{}, "id = ?", id).Error
}

package dailyreport

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("daily report not found")

type Repository interface {
	Create(dr *DailyReport) error
	FindByID(id uuid.UUID) (*DailyReport, error)
	ListByGoal(goalID uuid.UUID) ([]DailyReport, error)
	Update(dr *DailyReport) error
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(dr *DailyReport) error {
	return r.db.Create(dr).Error
}

func (r *repository) FindByID(id uuid.UUID) (*DailyReport, error) {
	var dr DailyReport
	if err := r.db.First(&dr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &dr, nil
}

func (r *repository) ListByGoal(goalID uuid.UUID) ([]DailyReport, error) {
	var reports []DailyReport
	if err := r.db.
		Where("personal_monthly_goal_id = ?", goalID).
		Order("report_date ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *repository) Update(dr *DailyReport) error {
	return r.db.Save(dr).Error
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&DailyReport{}, "id = ?", id).Error
}

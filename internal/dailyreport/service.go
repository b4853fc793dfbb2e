package dailyreport

import (
	"context"
	"errors"

	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/google/uuid"
)

var ErrGoalNotFound = errors.New("personal monthly goal not found")

// GoalSource answers whether a personal monthly goal exists. Implemented by
// the personalgoal repository and wired in the container.
type GoalSource interface {
	Exists(id uuid.UUID) (bool, error)
}

type Service interface {
	Create(ctx context.Context, dto CreateDailyReportDTO) (*DailyReport, error)
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]DailyReport, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateDailyReportDTO) (*DailyReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	goals GoalSource
}

func NewService(repo Repository, goals GoalSource) Service {
	return &service{repo: repo, goals: goals}
}

// Create appends one report. Multiple reports on the same date for the same
// goal are allowed; rollups sum them all.
func (s *service) Create(ctx context.Context, dto CreateDailyReportDTO) (*DailyReport, error) {
	log := config.WithContext(ctx)

	ok, err := s.goals.Exists(dto.PersonalMonthlyGoalID)
	if err != nil {
		log.WithError(err).Error("Failed to check personal monthly goal")
		return nil, err
	}
	if !ok {
		log.WithField("goal_id", dto.PersonalMonthlyGoalID).Warn("Daily report for unknown goal")
		return nil, ErrGoalNotFound
	}

	dr := DailyReport{
		PersonalMonthlyGoalID: dto.PersonalMonthlyGoalID,
		ReportDate:            dto.ReportDate,
		PerformanceValue:      *dto.PerformanceValue,
		WorkContent:           dto.WorkContent,
		Status:                ReportStatusSubmitted,
	}
	if err := s.repo.Create(&dr); err != nil {
		log.WithError(err).Error("Failed to create daily report")
		return nil, err
	}

	log.WithField("report_id", dr.ID).Info("Daily report created successfully")
	return &dr, nil
}

func (s *service) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]DailyReport, error) {
	return s.repo.ListByGoal(goalID)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateDailyReportDTO) (*DailyReport, error) {
	log := config.WithContext(ctx)

	dr, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.ReportDate != nil {
		dr.ReportDate = *dto.ReportDate
	}
	if dto.PerformanceValue != nil {
		dr.PerformanceValue = *dto.PerformanceValue
	}
	if dto.WorkContent != nil {
		dr.WorkContent = *dto.WorkContent
	}
	if dto.Status != nil {
		dr.Status = *dto.Status
	}

	if err := s.repo.Update(dr); err != nil {
		log.WithError(err).Error("Failed to update daily report")
		return nil, err
	}
	return dr, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete daily report")
		return err
	}

	log.WithField("report_id", id).Info("Daily report deleted successfully")
	return nil
}

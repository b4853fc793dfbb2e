package departmentgoal

import (
	"context"
	"errors"

	"github.com/gabriel-moura/kpiflow-lambda/internal/auth"
	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/google/uuid"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidTarget = errors.New("target value must be greater than zero")
)

type Service interface {
	Create(ctx context.Context, dto CreateDepartmentGoalDTO) (*DepartmentGoalResponse, error)
	List(ctx context.Context) ([]DepartmentGoalResponse, error)
	ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]DepartmentGoalResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*DepartmentGoalResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateDepartmentGoalDTO) (*DepartmentGoalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateDepartmentGoalDTO) (*DepartmentGoalResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Warn("Attempt to create department goal without authentication")
		return nil, ErrUnauthorized
	}

	if dto.TargetValue == nil || *dto.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	d := DepartmentMonthlyGoal{
		YearlyGoalID: dto.YearlyGoalID,
		DepartmentID: dto.DepartmentID,
		Year:         dto.Year,
		Month:        dto.Month,
		TargetValue:  *dto.TargetValue,
		UnitID:       dto.UnitID,
		CreatedBy:    uuid.MustParse(claims.UserID),
		Status:       GoalStatusActive,
	}
	if err := s.repo.Create(&d); err != nil {
		log.WithError(err).Error("Failed to create department monthly goal")
		return nil, err
	}

	log.WithField("goal_id", d.ID).Info("Department monthly goal created successfully")
	return ToResponse(&d), nil
}

func (s *service) List(ctx context.Context) ([]DepartmentGoalResponse, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list department monthly goals")
		return nil, err
	}
	return toResponses(goals), nil
}

func (s *service) ListByDepartment(ctx context.Context, departmentID uuid.UUID) ([]DepartmentGoalResponse, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.FindByDepartment(departmentID)
	if err != nil {
		log.WithError(err).Error("Failed to list department monthly goals by department")
		return nil, err
	}
	return toResponses(goals), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*DepartmentGoalResponse, error) {
	d, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return ToResponse(d), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateDepartmentGoalDTO) (*DepartmentGoalResponse, error) {
	log := config.WithContext(ctx)

	d, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.TargetValue != nil {
		if *dto.TargetValue <= 0 {
			return nil, ErrInvalidTarget
		}
		d.TargetValue = *dto.TargetValue
	}
	if dto.UnitID != nil {
		d.UnitID = *dto.UnitID
	}
	if dto.Status != nil {
		d.Status = *dto.Status
	}

	if err := s.repo.Update(d); err != nil {
		log.WithError(err).Error("Failed to update department monthly goal")
		return nil, err
	}

	log.WithField("goal_id", d.ID).Info("Department monthly goal updated successfully")
	return ToResponse(d), nil
}

// Delete is a soft delete; the goal drops out of rollups and selection lists
// but remains viewable in a detail screen.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete department monthly goal")
		return err
	}

	log.WithField("goal_id", id).Info("Department monthly goal deleted successfully")
	return nil
}

func toResponses(goals []DepartmentMonthlyGoal) []DepartmentGoalResponse {
	responses := make([]DepartmentGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *ToResponse(&goals[i]))
	}
	return responses
}

package yearlygoal

import (
	"context"
	"errors"

	"github.com/gabriel-moura/kpiflow-lambda/internal/auth"
	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidTarget = errors.New("target value must be greater than zero")
)

type Service interface {
	Create(ctx context.Context, dto CreateYearlyGoalDTO) (*YearlyGoalResponse, error)
	List(ctx context.Context) ([]YearlyGoalResponse, error)
	ListByYear(ctx context.Context, year int) ([]YearlyGoalResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*YearlyGoalResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateYearlyGoalDTO) (*YearlyGoalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SplitToDepartment(ctx context.Context, id uuid.UUID, dto SplitToDepartmentDTO) (*departmentgoal.DepartmentGoalResponse, error)
}

type service struct {
	repo         Repository
	deptGoalRepo departmentgoal.Repository
	db           *gorm.DB
}

func NewService(db *gorm.DB, repo Repository, deptGoalRepo departmentgoal.Repository) Service {
	return &service{
		repo:         repo,
		deptGoalRepo: deptGoalRepo,
		db:           db,
	}
}

// Create persists the goal and its quarterly splits in one transaction, so a
// mid-loop split failure cannot leave a goal without its plan. Each split's
// percentage is fixed at creation from the yearly target.
func (s *service) Create(ctx context.Context, dto CreateYearlyGoalDTO) (*YearlyGoalResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Warn("Attempt to create yearly goal without authentication")
		return nil, ErrUnauthorized
	}

	if dto.TargetValue == nil || *dto.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	y := YearlyGoal{
		Title:       dto.Title,
		Year:        dto.Year,
		TargetValue: *dto.TargetValue,
		UnitID:      dto.UnitID,
		Description: dto.Description,
		CreatedBy:   uuid.MustParse(claims.UserID),
		Status:      GoalStatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&y).Error; err != nil {
			return err
		}

		for _, in := range dto.Splits {
			split := QuarterlySplit{
				YearlyGoalID: y.ID,
				Quarter:      in.Quarter,
				TargetValue:  in.TargetValue,
				Percentage:   in.TargetValue / y.TargetValue * 100,
				Basis:        in.Basis,
			}
			if err := tx.Create(&split).Error; err != nil {
				return err
			}
			y.QuarterlySplits = append(y.QuarterlySplits, split)
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to create yearly goal")
		return nil, err
	}

	log.WithField("goal_id", y.ID).Info("Yearly goal created successfully")
	return ToResponse(&y), nil
}

func (s *service) List(ctx context.Context) ([]YearlyGoalResponse, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list yearly goals")
		return nil, err
	}
	return toResponses(goals), nil
}

func (s *service) ListByYear(ctx context.Context, year int) ([]YearlyGoalResponse, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.FindByYear(year)
	if err != nil {
		log.WithError(err).Error("Failed to list yearly goals by year")
		return nil, err
	}
	return toResponses(goals), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*YearlyGoalResponse, error) {
	y, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return ToResponse(y), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateYearlyGoalDTO) (*YearlyGoalResponse, error) {
	log := config.WithContext(ctx)

	y, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		y.Title = *dto.Title
	}
	if dto.TargetValue != nil {
		if *dto.TargetValue <= 0 {
			return nil, ErrInvalidTarget
		}
		y.TargetValue = *dto.TargetValue
	}
	if dto.Description != nil {
		y.Description = *dto.Description
	}
	if dto.Status != nil {
		y.Status = *dto.Status
	}

	if err := s.repo.Update(y); err != nil {
		log.WithError(err).Error("Failed to update yearly goal")
		return nil, err
	}

	log.WithField("goal_id", y.ID).Info("Yearly goal updated successfully")
	return ToResponse(y), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete yearly goal")
		return err
	}

	log.WithField("goal_id", id).Info("Yearly goal deleted successfully")
	return nil
}

// SplitToDepartment creates one department monthly goal linked to this
// yearly goal. The unit is inherited from the yearly goal, never chosen
// independently.
func (s *service) SplitToDepartment(ctx context.Context, id uuid.UUID, dto SplitToDepartmentDTO) (*departmentgoal.DepartmentGoalResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Warn("Attempt to split yearly goal without authentication")
		return nil, ErrUnauthorized
	}

	if dto.TargetValue == nil || *dto.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	y, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	d := departmentgoal.DepartmentMonthlyGoal{
		YearlyGoalID: &y.ID,
		DepartmentID: dto.DepartmentID,
		Year:         dto.Year,
		Month:        dto.Month,
		TargetValue:  *dto.TargetValue,
		UnitID:       y.UnitID,
		CreatedBy:    uuid.MustParse(claims.UserID),
		Status:       departmentgoal.GoalStatusActive,
	}
	if err := s.deptGoalRepo.Create(&d); err != nil {
		log.WithError(err).Error("Failed to split yearly goal to department")
		return nil, err
	}

	log.WithField("goal_id", y.ID).WithField("department_goal_id", d.ID).
		Info("Yearly goal split to department successfully")
	return departmentgoal.ToResponse(&d), nil
}

func toResponses(goals []YearlyGoal) []YearlyGoalResponse {
	responses := make([]YearlyGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *ToResponse(&goals[i]))
	}
	return responses
}

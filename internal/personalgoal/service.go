package personalgoal

import (
	"context"
	"errors"

	"github.com/gabriel-moura/kpiflow-lambda/internal/auth"
	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/google/uuid"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidTarget    = errors.New("target value must be greater than zero")
	ErrUnitRequired     = errors.New("unit is required when the goal has no department linkage")
	ErrDeptGoalNotFound = errors.New("department monthly goal not found")
)

// DepartmentGoalSource resolves the unit of a department monthly goal so a
// linked personal goal can inherit it. Implemented by the departmentgoal
// repository and wired in the container.
type DepartmentGoalSource interface {
	UnitIDByID(id uuid.UUID) (uuid.UUID, error)
}

type Service interface {
	Create(ctx context.Context, dto CreatePersonalGoalDTO) (*PersonalGoalResponse, error)
	List(ctx context.Context) ([]PersonalGoalResponse, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]PersonalGoalResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PersonalGoalResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdatePersonalGoalDTO) (*PersonalGoalResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo      Repository
	deptGoals DepartmentGoalSource
}

func NewService(repo Repository, deptGoals DepartmentGoalSource) Service {
	return &service{repo: repo, deptGoals: deptGoals}
}

// Create enforces the unit-inheritance contract: with a department linkage
// the unit comes from the linked goal and any submitted unit is ignored;
// without one the caller must choose a unit.
func (s *service) Create(ctx context.Context, dto CreatePersonalGoalDTO) (*PersonalGoalResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Warn("Attempt to create personal goal without authentication")
		return nil, ErrUnauthorized
	}

	if dto.TargetValue == nil || *dto.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	var unitID uuid.UUID
	if dto.DepartmentMonthlyGoalID != nil {
		inherited, err := s.deptGoals.UnitIDByID(*dto.DepartmentMonthlyGoalID)
		if err != nil {
			log.WithError(err).WithField("department_goal_id", *dto.DepartmentMonthlyGoalID).
				Warn("Linked department monthly goal not found")
			return nil, ErrDeptGoalNotFound
		}
		unitID = inherited
	} else {
		if dto.UnitID == nil {
			return nil, ErrUnitRequired
		}
		unitID = *dto.UnitID
	}

	g := PersonalMonthlyGoal{
		DepartmentMonthlyGoalID: dto.DepartmentMonthlyGoalID,
		UserID:                  dto.UserID,
		Year:                    dto.Year,
		Month:                   dto.Month,
		TargetValue:             *dto.TargetValue,
		UnitID:                  unitID,
		Remark:                  dto.Remark,
		CreatedBy:               uuid.MustParse(claims.UserID),
		Status:                  GoalStatusActive,
	}
	if err := s.repo.Create(&g); err != nil {
		log.WithError(err).Error("Failed to create personal monthly goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Personal monthly goal created successfully")
	return ToResponse(&g), nil
}

func (s *service) List(ctx context.Context) ([]PersonalGoalResponse, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.FindAll()
	if err != nil {
		log.WithError(err).Error("Failed to list personal monthly goals")
		return nil, err
	}
	return toResponses(goals), nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]PersonalGoalResponse, error) {
	log := config.WithContext(ctx)

	goals, err := s.repo.FindByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list personal monthly goals by user")
		return nil, err
	}
	return toResponses(goals), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*PersonalGoalResponse, error) {
	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return ToResponse(g), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdatePersonalGoalDTO) (*PersonalGoalResponse, error) {
	log := config.WithContext(ctx)

	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.TargetValue != nil {
		if *dto.TargetValue <= 0 {
			return nil, ErrInvalidTarget
		}
		g.TargetValue = *dto.TargetValue
	}
	if dto.UnitID != nil && g.DepartmentMonthlyGoalID == nil {
		g.UnitID = *dto.UnitID
	}
	if dto.Remark != nil {
		g.Remark = *dto.Remark
	}
	if dto.Status != nil {
		g.Status = *dto.Status
	}

	if err := s.repo.Update(g); err != nil {
		log.WithError(err).Error("Failed to update personal monthly goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Personal monthly goal updated successfully")
	return ToResponse(g), nil
}

// Delete is a soft delete; the row keeps its daily reports but drops out of
// rollups and selection lists.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := config.WithContext(ctx)

	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		log.WithError(err).Error("Failed to delete personal monthly goal")
		return err
	}

	log.WithField("goal_id", id).Info("Personal monthly goal deleted successfully")
	return nil
}

func toResponses(goals []PersonalMonthlyGoal) []PersonalGoalResponse {
	responses := make([]PersonalGoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, *ToResponse(&goals[i]))
	}
	return responses
}

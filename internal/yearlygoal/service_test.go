package yearlygoal

import (
	"context"
	"errors"
	"testing"

	"github.com/gabriel-moura/kpiflow-lambda/internal/auth"
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/google/uuid"
)

type fakeRepository struct {
	goals map[uuid.UUID]*YearlyGoal
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{goals: make(map[uuid.UUID]*YearlyGoal)}
}

func (f *fakeRepository) Create(y *YearlyGoal) error {
	y.ID = uuid.New()
	f.goals[y.ID] = y
	return nil
}

func (f *fakeRepository) FindAll() ([]YearlyGoal, error) {
	var out []YearlyGoal
	for _, y := range f.goals {
		out = append(out, *y)
	}
	return out, nil
}

func (f *fakeRepository) FindByYear(int) ([]YearlyGoal, error) {
	return nil, nil
}

func (f *fakeRepository) FindByID(id uuid.UUID) (*YearlyGoal, error) {
	y, ok := f.goals[id]
	if !ok {
		return nil, ErrGoalNotFound
	}
	return y, nil
}

func (f *fakeRepository) Update(y *YearlyGoal) error {
	f.goals[y.ID] = y
	return nil
}

func (f *fakeRepository) Delete(id uuid.UUID) error {
	delete(f.goals, id)
	return nil
}

type fakeDeptGoalRepository struct {
	created []departmentgoal.DepartmentMonthlyGoal
}

func (f *fakeDeptGoalRepository) Create(d *departmentgoal.DepartmentMonthlyGoal) error {
	d.ID = uuid.New()
	f.created = append(f.created, *d)
	return nil
}

func (f *fakeDeptGoalRepository) FindAll() ([]departmentgoal.DepartmentMonthlyGoal, error) {
	return f.created, nil
}

func (f *fakeDeptGoalRepository) FindByDepartment(uuid.UUID) ([]departmentgoal.DepartmentMonthlyGoal, error) {
	return nil, nil
}

func (f *fakeDeptGoalRepository) FindByID(uuid.UUID) (*departmentgoal.DepartmentMonthlyGoal, error) {
	return nil, departmentgoal.ErrGoalNotFound
}

func (f *fakeDeptGoalRepository) UnitIDByID(uuid.UUID) (uuid.UUID, error) {
	return uuid.Nil, departmentgoal.ErrGoalNotFound
}

func (f *fakeDeptGoalRepository) Update(*departmentgoal.DepartmentMonthlyGoal) error {
	return nil
}

func (f *fakeDeptGoalRepository) Delete(uuid.UUID) error {
	return nil
}

func authedContext(t *testing.T) (context.Context, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	claims := &auth.UserClaims{UserID: userID.String(), Role: "ADMIN"}
	return auth.ContextWithClaims(context.Background(), claims), userID
}

func floatPtr(v float64) *float64 { return &v }

func TestSplitToDepartment(t *testing.T) {
	seed := func(repo *fakeRepository, unitID uuid.UUID) uuid.UUID {
		y := &YearlyGoal{
			Title:       "Annual revenue",
			Year:        2025,
			TargetValue: 1200000,
			UnitID:      unitID,
		}
		if err := repo.Create(y); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		return y.ID
	}

	t.Run("InheritsYearlyGoalUnit", func(t *testing.T) {
		ctx, userID := authedContext(t)
		unitID := uuid.New()
		repo := newFakeRepository()
		deptRepo := &fakeDeptGoalRepository{}
		svc := NewService(nil, repo, deptRepo)
		goalID := seed(repo, unitID)

		resp, err := svc.SplitToDepartment(ctx, goalID, SplitToDepartmentDTO{
			DepartmentID: uuid.New(),
			Year:         2025,
			Month:        7,
			TargetValue:  floatPtr(100000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.UnitID != unitID {
			t.Errorf("expected inherited unit %s, got %s", unitID, resp.UnitID)
		}
		if resp.YearlyGoalID == nil || *resp.YearlyGoalID != goalID {
			t.Errorf("expected linkage to yearly goal %s, got %v", goalID, resp.YearlyGoalID)
		}
		if resp.CreatedBy != userID {
			t.Errorf("expected created_by %s, got %s", userID, resp.CreatedBy)
		}
	})

	t.Run("UnknownYearlyGoal", func(t *testing.T) {
		ctx, _ := authedContext(t)
		svc := NewService(nil, newFakeRepository(), &fakeDeptGoalRepository{})

		_, err := svc.SplitToDepartment(ctx, uuid.New(), SplitToDepartmentDTO{
			DepartmentID: uuid.New(),
			Year:         2025,
			Month:        7,
			TargetValue:  floatPtr(100000),
		})
		if !errors.Is(err, ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("NonPositiveTarget", func(t *testing.T) {
		ctx, _ := authedContext(t)
		repo := newFakeRepository()
		svc := NewService(nil, repo, &fakeDeptGoalRepository{})
		goalID := seed(repo, uuid.New())

		_, err := svc.SplitToDepartment(ctx, goalID, SplitToDepartmentDTO{
			DepartmentID: uuid.New(),
			Year:         2025,
			Month:        7,
			TargetValue:  floatPtr(0),
		})
		if !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("expected ErrInvalidTarget, got %v", err)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(nil, repo, &fakeDeptGoalRepository{})
		goalID := seed(repo, uuid.New())

		_, err := svc.SplitToDepartment(context.Background(), goalID, SplitToDepartmentDTO{
			DepartmentID: uuid.New(),
			Year:         2025,
			Month:        7,
			TargetValue:  floatPtr(100000),
		})
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestToResponseQuarterViews(t *testing.T) {
	y := &YearlyGoal{
		TargetValue: 1200,
		QuarterlySplits: []QuarterlySplit{
			{Quarter: 1, TargetValue: 300, Percentage: 25, Basis: "seasonal ramp"},
			{Quarter: 2, TargetValue: 300, Percentage: 25},
		},
		DepartmentGoals: []departmentgoal.DepartmentMonthlyGoal{
			departmentGoal(2, 120),
			departmentGoal(5, 80),
		},
	}

	resp := ToResponse(y)
	if len(resp.Quarters) != 4 {
		t.Fatalf("expected 4 quarter views, got %d", len(resp.Quarters))
	}

	q1 := resp.Quarters[0]
	if q1.PlannedTarget == nil || *q1.PlannedTarget != 300 {
		t.Errorf("expected Q1 planned target 300, got %v", q1.PlannedTarget)
	}
	if q1.Basis != "seasonal ramp" {
		t.Errorf("expected Q1 basis to carry over, got %q", q1.Basis)
	}
	if q1.ActualValue != 120 {
		t.Errorf("expected Q1 actual 120, got %v", q1.ActualValue)
	}

	q3 := resp.Quarters[2]
	if q3.PlannedTarget != nil {
		t.Errorf("expected no plan for Q3, got %v", *q3.PlannedTarget)
	}
	if q3.ActualValue != 0 {
		t.Errorf("expected Q3 actual 0, got %v", q3.ActualValue)
	}
}

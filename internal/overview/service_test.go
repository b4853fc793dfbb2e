package overview

import (
	"context"
	"errors"
	"testing"

	"github.com/gabriel-moura/kpiflow-lambda/internal/dailyreport"
	"github.com/gabriel-moura/kpiflow-lambda/internal/department"
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/unit"
	"github.com/gabriel-moura/kpiflow-lambda/internal/yearlygoal"
	"github.com/google/uuid"
)

type fakeYearlyGoals struct {
	rows []yearlygoal.YearlyGoal
	err  error
}

func (f *fakeYearlyGoals) Create(*yearlygoal.YearlyGoal) error { return nil }
func (f *fakeYearlyGoals) FindAll() ([]yearlygoal.YearlyGoal, error) { return f.rows, f.err }
func (f *fakeYearlyGoals) FindByYear(int) ([]yearlygoal.YearlyGoal, error) { return nil, nil }
func (f *fakeYearlyGoals) FindByID(uuid.UUID) (*yearlygoal.YearlyGoal, error) {
	return nil, yearlygoal.ErrGoalNotFound
}
func (f *fakeYearlyGoals) Update(*yearlygoal.YearlyGoal) error { return nil }
func (f *fakeYearlyGoals) Delete(uuid.UUID) error { return nil }

type fakeDeptGoals struct {
	rows []departmentgoal.DepartmentMonthlyGoal
	err  error
}

func (f *fakeDeptGoals) Create(*departmentgoal.DepartmentMonthlyGoal) error { return nil }
func (f *fakeDeptGoals) FindAll() ([]departmentgoal.DepartmentMonthlyGoal, error) {
	return f.rows, f.err
}
func (f *fakeDeptGoals) FindByDepartment(uuid.UUID) ([]departmentgoal.DepartmentMonthlyGoal, error) {
	return nil, nil
}
func (f *fakeDeptGoals) FindByID(uuid.UUID) (*departmentgoal.DepartmentMonthlyGoal, error) {
	return nil, departmentgoal.ErrGoalNotFound
}
func (f *fakeDeptGoals) UnitIDByID(uuid.UUID) (uuid.UUID, error) {
	return uuid.Nil, departmentgoal.ErrGoalNotFound
}
func (f *fakeDeptGoals) Update(*departmentgoal.DepartmentMonthlyGoal) error { return nil }
func (f *fakeDeptGoals) Delete(uuid.UUID) error { return nil }

type fakePersonalGoals struct {
	rows []personalgoal.PersonalMonthlyGoal
	err  error
}

func (f *fakePersonalGoals) Create(*personalgoal.PersonalMonthlyGoal) error { return nil }
func (f *fakePersonalGoals) FindAll() ([]personalgoal.PersonalMonthlyGoal, error) {
	return f.rows, f.err
}
func (f *fakePersonalGoals) FindByMonth(int, int) ([]personalgoal.PersonalMonthlyGoal, error) {
	return nil, nil
}
func (f *fakePersonalGoals) FindByUser(uuid.UUID) ([]personalgoal.PersonalMonthlyGoal, error) {
	return nil, nil
}
func (f *fakePersonalGoals) FindByID(uuid.UUID) (*personalgoal.PersonalMonthlyGoal, error) {
	return nil, personalgoal.ErrGoalNotFound
}
func (f *fakePersonalGoals) Exists(uuid.UUID) (bool, error) { return false, nil }
func (f *fakePersonalGoals) Update(*personalgoal.PersonalMonthlyGoal) error { return nil }
func (f *fakePersonalGoals) Delete(uuid.UUID) error { return nil }

type fakeUnits struct {
	rows []unit.Unit
	err  error
}

func (f *fakeUnits) Create(*unit.Unit) error { return nil }
func (f *fakeUnits) FindAll() ([]unit.Unit, error) { return f.rows, f.err }
func (f *fakeUnits) FindByID(uuid.UUID) (*unit.Unit, error) { return nil, unit.ErrUnitNotFound }
func (f *fakeUnits) Update(*unit.Unit) error { return nil }
func (f *fakeUnits) Delete(uuid.UUID) error { return nil }

type fakeDepartments struct {
	rows      []department.Department
	err       error
	configs   map[uuid.UUID]*department.PerformanceConfig
	configErr error
}

func (f *fakeDepartments) Create(*department.Department) error { return nil }
func (f *fakeDepartments) FindAll() ([]department.Department, error) { return f.rows, f.err }
func (f *fakeDepartments) FindByID(uuid.UUID) (*department.Department, error) {
	return nil, department.ErrDepartmentNotFound
}
func (f *fakeDepartments) Update(*department.Department) error { return nil }
func (f *fakeDepartments) Delete(uuid.UUID) error { return nil }

func (f *fakeDepartments) FindConfigByDepartment(departmentID uuid.UUID) (*department.PerformanceConfig, error) {
	if f.configErr != nil {
		return nil, f.configErr
	}
	cfg, ok := f.configs[departmentID]
	if !ok {
		return nil, department.ErrConfigNotFound
	}
	return cfg, nil
}

func (f *fakeDepartments) UpsertConfig(*department.PerformanceConfig) error { return nil }
func (f *fakeDepartments) DeleteConfig(uuid.UUID) error { return nil }

func TestLoadAll(t *testing.T) {
	t.Run("AssemblesFullPayload", func(t *testing.T) {
		deptA := department.Department{ID: uuid.New(), Name: "Sales"}
		deptB := department.Department{ID: uuid.New(), Name: "Support"}

		yearly := yearlygoal.YearlyGoal{ID: uuid.New(), TargetValue: 1000}
		personal := personalgoal.PersonalMonthlyGoal{
			ID:          uuid.New(),
			TargetValue: 500,
			DailyReports: []dailyreport.DailyReport{
				{PerformanceValue: 300},
				{PerformanceValue: 250},
			},
		}

		svc := NewService(
			&fakeYearlyGoals{rows: []yearlygoal.YearlyGoal{yearly}},
			&fakeDeptGoals{},
			&fakePersonalGoals{rows: []personalgoal.PersonalMonthlyGoal{personal}},
			&fakeUnits{rows: []unit.Unit{{ID: uuid.New(), Name: "Revenue", Symbol: "$"}}},
			&fakeDepartments{
				rows: []department.Department{deptA, deptB},
				configs: map[uuid.UUID]*department.PerformanceConfig{
					deptA.ID: {DepartmentID: deptA.ID},
				},
			},
		)

		ov, err := svc.LoadAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ov.YearlyGoals) != 1 || len(ov.PersonalGoals) != 1 {
			t.Fatalf("unexpected payload sizes: %d yearly, %d personal", len(ov.YearlyGoals), len(ov.PersonalGoals))
		}
		if ov.PersonalGoals[0].ActualValue != 550 {
			t.Errorf("expected derived actual 550, got %v", ov.PersonalGoals[0].ActualValue)
		}
		if len(ov.Units) != 1 || len(ov.Departments) != 2 {
			t.Errorf("unexpected lookup sizes: %d units, %d departments", len(ov.Units), len(ov.Departments))
		}
		if _, ok := ov.PerformanceConfigs[deptA.ID]; !ok {
			t.Error("expected performance config for first department")
		}
		if _, ok := ov.PerformanceConfigs[deptB.ID]; ok {
			t.Error("expected no performance config entry for department without one")
		}
	})

	t.Run("FailsWhenAnyReadFails", func(t *testing.T) {
		readErr := errors.New("connection reset")
		svc := NewService(
			&fakeYearlyGoals{},
			&fakeDeptGoals{},
			&fakePersonalGoals{err: readErr},
			&fakeUnits{},
			&fakeDepartments{},
		)

		if _, err := svc.LoadAll(context.Background()); !errors.Is(err, readErr) {
			t.Errorf("expected the read error to fail the whole load, got %v", err)
		}
	})

	t.Run("ConfigFailureDoesNotFailLoad", func(t *testing.T) {
		dept := department.Department{ID: uuid.New(), Name: "Sales"}
		svc := NewService(
			&fakeYearlyGoals{},
			&fakeDeptGoals{},
			&fakePersonalGoals{},
			&fakeUnits{},
			&fakeDepartments{
				rows:      []department.Department{dept},
				configErr: errors.New("connection reset"),
			},
		)

		ov, err := svc.LoadAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(ov.PerformanceConfigs) != 0 {
			t.Errorf("expected no configs after lookup failure, got %d", len(ov.PerformanceConfigs))
		}
	})
}

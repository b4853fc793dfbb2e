package overview

import (
	"context"
	"errors"

	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/gabriel-moura/kpiflow-lambda/internal/department"
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/unit"
	"github.com/gabriel-moura/kpiflow-lambda/internal/yearlygoal"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Overview is the full page state in one payload: the goal tree with derived
// rollups plus the reference lookups the forms need. Clients replace it
// wholesale after every mutation instead of patching aggregates in place.
type Overview struct {
	YearlyGoals        []yearlygoal.YearlyGoalResponse             `json:"yearly_goals"`
	DepartmentGoals    []departmentgoal.DepartmentGoalResponse     `json:"department_goals"`
	PersonalGoals      []personalgoal.PersonalGoalResponse         `json:"personal_goals"`
	Units              []unit.Unit                                 `json:"units"`
	Departments        []department.Department                     `json:"departments"`
	PerformanceConfigs map[uuid.UUID]*department.PerformanceConfig `json:"performance_configs"`
}

type Service interface {
	LoadAll(ctx context.Context) (*Overview, error)
}

type service struct {
	yearlyGoals   yearlygoal.Repository
	deptGoals     departmentgoal.Repository
	personalGoals personalgoal.Repository
	units         unit.Repository
	departments   department.Repository
}

func NewService(
	yearlyGoals yearlygoal.Repository,
	deptGoals departmentgoal.Repository,
	personalGoals personalgoal.Repository,
	units unit.Repository,
	departments department.Repository,
) Service {
	return &service{
		yearlyGoals:   yearlyGoals,
		deptGoals:     deptGoals,
		personalGoals: personalGoals,
		units:         units,
		departments:   departments,
	}
}

// LoadAll fetches the five independent reads concurrently and fails the
// whole load on the first error, so the page never renders partial state.
// The per-department performance-config lookups that follow are best
// effort: a failed row is logged and left absent, and the rest of the page
// still loads.
func (s *service) LoadAll(ctx context.Context) (*Overview, error) {
	log := config.WithContext(ctx)

	var (
		yearlyRows   []yearlygoal.YearlyGoal
		deptRows     []departmentgoal.DepartmentMonthlyGoal
		personalRows []personalgoal.PersonalMonthlyGoal
		units        []unit.Unit
		departments  []department.Department
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		yearlyRows, err = s.yearlyGoals.FindAll()
		return err
	})
	g.Go(func() error {
		var err error
		deptRows, err = s.deptGoals.FindAll()
		return err
	})
	g.Go(func() error {
		var err error
		personalRows, err = s.personalGoals.FindAll()
		return err
	})
	g.Go(func() error {
		var err error
		units, err = s.units.FindAll()
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = s.departments.FindAll()
		return err
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to load overview")
		return nil, err
	}

	configs := make(map[uuid.UUID]*department.PerformanceConfig, len(departments))
	for i := range departments {
		d := &departments[i]
		cfg, err := s.departments.FindConfigByDepartment(d.ID)
		if err != nil {
			if !errors.Is(err, department.ErrConfigNotFound) {
				log.WithError(err).Warnf("Failed to load performance config for department %s", d.ID)
			}
			continue
		}
		configs[d.ID] = cfg
	}

	ov := &Overview{
		YearlyGoals:        make([]yearlygoal.YearlyGoalResponse, 0, len(yearlyRows)),
		DepartmentGoals:    make([]departmentgoal.DepartmentGoalResponse, 0, len(deptRows)),
		PersonalGoals:      make([]personalgoal.PersonalGoalResponse, 0, len(personalRows)),
		Units:              units,
		Departments:        departments,
		PerformanceConfigs: configs,
	}
	for i := range yearlyRows {
		ov.YearlyGoals = append(ov.YearlyGoals, *yearlygoal.ToResponse(&yearlyRows[i]))
	}
	for i := range deptRows {
		ov.DepartmentGoals = append(ov.DepartmentGoals, *departmentgoal.ToResponse(&deptRows[i]))
	}
	for i := range personalRows {
		ov.PersonalGoals = append(ov.PersonalGoals, *personalgoal.ToResponse(&personalRows[i]))
	}

	return ov, nil
}

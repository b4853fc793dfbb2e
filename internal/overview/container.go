package overview

import (
	"github.com/gabriel-moura/kpiflow-lambda/internal/department"
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/unit"
	"github.com/gabriel-moura/kpiflow-lambda/internal/yearlygoal"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(
	yearlyGoals yearlygoal.Repository,
	deptGoals departmentgoal.Repository,
	personalGoals personalgoal.Repository,
	units unit.Repository,
	departments department.Repository,
) *Container {
	service := NewService(yearlyGoals, deptGoals, personalGoals, units, departments)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}

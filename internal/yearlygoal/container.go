package yearlygoal

import (
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, deptGoalRepo departmentgoal.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(db, repo, deptGoalRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}

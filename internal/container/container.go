package container

import (
	"context"
	"log"
	"os"

	"github.com/gabriel-moura/kpiflow-lambda/internal/auth"
	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/gabriel-moura/kpiflow-lambda/internal/dailyreport"
	"github.com/gabriel-moura/kpiflow-lambda/internal/department"
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/overview"
	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/unit"
	"github.com/gabriel-moura/kpiflow-lambda/internal/user"
	"github.com/gabriel-moura/kpiflow-lambda/internal/yearlygoal"
)

type Container struct {
	UserContainer           *user.UserContainer
	UnitContainer           *unit.Container
	DepartmentContainer     *department.Container
	YearlyGoalContainer     *yearlygoal.Container
	DepartmentGoalContainer *departmentgoal.Container
	PersonalGoalContainer   *personalgoal.Container
	DailyReportContainer    *dailyreport.Container
	OverviewContainer       *overview.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	unitContainer := unit.NewContainer(config.DB)
	departmentContainer := department.NewContainer(config.DB)

	// Goal hierarchy bottom-up: personal goals inherit units from department
	// goals, daily reports validate against personal goals.
	departmentGoalContainer := departmentgoal.NewContainer(config.DB)
	personalGoalContainer := personalgoal.NewContainer(config.DB, departmentGoalContainer.Repo)
	dailyReportContainer := dailyreport.NewContainer(config.DB, personalGoalContainer.Repo)
	yearlyGoalContainer := yearlygoal.NewContainer(config.DB, departmentGoalContainer.Repo)

	overviewContainer := overview.NewContainer(
		yearlyGoalContainer.Repo,
		departmentGoalContainer.Repo,
		personalGoalContainer.Repo,
		unitContainer.Repo,
		departmentContainer.Repo,
	)

	return &Container{
		UserContainer:           userContainer,
		UnitContainer:           unitContainer,
		DepartmentContainer:     departmentContainer,
		YearlyGoalContainer:     yearlyGoalContainer,
		DepartmentGoalContainer: departmentGoalContainer,
		PersonalGoalContainer:   personalGoalContainer,
		DailyReportContainer:    dailyReportContainer,
		OverviewContainer:       overviewContainer,
	}
}

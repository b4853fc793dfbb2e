package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gabriel-moura/kpiflow-lambda/internal/auth"
	"github.com/gabriel-moura/kpiflow-lambda/internal/dailyreport"
	"github.com/gabriel-moura/kpiflow-lambda/internal/department"
	"github.com/gabriel-moura/kpiflow-lambda/internal/departmentgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/middlewares"
	"github.com/gabriel-moura/kpiflow-lambda/internal/overview"
	"github.com/gabriel-moura/kpiflow-lambda/internal/personalgoal"
	"github.com/gabriel-moura/kpiflow-lambda/internal/unit"
	"github.com/gabriel-moura/kpiflow-lambda/internal/user"
	"github.com/gabriel-moura/kpiflow-lambda/internal/yearlygoal"
)

type RouterConfig struct {
	UserHandler           *user.Handler
	UnitHandler           *unit.Handler
	DepartmentHandler     *department.Handler
	YearlyGoalHandler     *yearlygoal.Handler
	DepartmentGoalHandler *departmentgoal.Handler
	PersonalGoalHandler   *personalgoal.Handler
	DailyReportHandler    *dailyreport.Handler
	OverviewHandler       *overview.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/units", unit.Routes(cfg.UnitHandler))
		r.Mount("/departments", department.Routes(cfg.DepartmentHandler))
		r.Mount("/yearly-goals", yearlygoal.Routes(cfg.YearlyGoalHandler))
		r.Mount("/department-goals", departmentgoal.Routes(cfg.DepartmentGoalHandler))
		r.Mount("/personal-goals", personalgoal.Routes(cfg.PersonalGoalHandler))
		r.Mount("/daily-reports", dailyreport.Routes(cfg.DailyReportHandler))
		r.Mount("/overview", overview.Routes(cfg.OverviewHandler))

		r.Get("/personal-goals/{goalID}/daily-reports", cfg.DailyReportHandler.ListByGoal)
	})
	return r
}

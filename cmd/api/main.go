package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/gabriel-moura/kpiflow-lambda/internal/container"
	"github.com/gabriel-moura/kpiflow-lambda/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:           c.UserContainer.Handler,
		UnitHandler:           c.UnitContainer.Handler,
		DepartmentHandler:     c.DepartmentContainer.Handler,
		YearlyGoalHandler:     c.YearlyGoalContainer.Handler,
		DepartmentGoalHandler: c.DepartmentGoalContainer.Handler,
		PersonalGoalHandler:   c.PersonalGoalContainer.Handler,
		DailyReportHandler:    c.DailyReportContainer.Handler,
		OverviewHandler:       c.OverviewContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(handler)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatal(err)
	}
}

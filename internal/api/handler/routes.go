package handler

import (
	"net/http"

	"github.com/vfg2006/sales-report-api/infrastructure/repository"
	"github.com/vfg2006/sales-report-api/internal/api/handler/router"
	"github.com/vfg2006/sales-report-api/internal/usecases/goals"
	"github.com/vfg2006/sales-report-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func SalesReports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/sales",
			Method:  http.MethodGet,
			Handler: GetSalesReport(service),
		},
	}
}

func MonthlyReports(repo repository.MonthlyReportRepository, reportingService reporting.Reporter, goalService goals.GoalManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlySalesReport(repo, reportingService, goalService),
		},
	}
}

func Goals(service goals.GoalManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/goals",
			Method:  http.MethodGet,
			Handler: ListEmployeeGoals(service),
		},
		{
			Path:    "/v1/goals",
			Method:  http.MethodPut,
			Handler: SetEmployeeGoal(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

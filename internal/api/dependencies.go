package api

import (
	"github.com/terraincognita07/autonomie/internal/db"
	"github.com/terraincognita07/autonomie/internal/services"
)

// NewServices wires the domain services onto the repositories.
func NewServices(repositories *db.Repositories, clock services.Clock) Services {
	finance := services.NewFinanceService(repositories.FinancialGoals, repositories.RevenueSources, repositories.Expenses, clock)
	return Services{
		Auth:        services.NewAuthService(repositories.Users, clock),
		Finance:     finance,
		Projects:    services.NewProjectService(repositories.Projects, repositories.ProjectActions),
		Cycles:      services.NewCycleService(repositories.Cycles, repositories.WeeklyProgress, clock),
		Reflections: services.NewReflectionService(repositories.Reflections, clock),
		Routines:    services.NewRoutineService(repositories.Routines),
		Metrics: services.NewMetricsService(services.MetricsReaders{
			Goals:       repositories.FinancialGoals,
			Projects:    repositories.Projects,
			Cycles:      repositories.Cycles,
			Reflections: repositories.Reflections,
			Routines:    repositories.Routines,
		}, finance, clock),
	}
}

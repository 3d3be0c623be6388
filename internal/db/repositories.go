package db

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repositories struct {
	Users          *UserRepository
	FinancialGoals *FinancialGoalRepository
	RevenueSources *RevenueSourceRepository
	Expenses       *ExpenseRepository
	Projects       *ProjectRepository
	ProjectActions *ProjectActionRepository
	Cycles         *CycleRepository
	WeeklyProgress *WeeklyProgressRepository
	Reflections    *ReflectionRepository
	Routines       *RoutineRepository
}

func NewRepositories(database *gorm.DB, logger *zap.Logger) *Repositories {
	reads := newReadPolicy(logger)
	return &Repositories{
		Users:          NewUserRepository(database),
		FinancialGoals: NewFinancialGoalRepository(database, reads),
		RevenueSources: NewRevenueSourceRepository(database, reads),
		Expenses:       NewExpenseRepository(database, reads),
		Projects:       NewProjectRepository(database, reads),
		ProjectActions: NewProjectActionRepository(database, reads),
		Cycles:         NewCycleRepository(database, reads),
		WeeklyProgress: NewWeeklyProgressRepository(database, reads),
		Reflections:    NewReflectionRepository(database, reads),
		Routines:       NewRoutineRepository(database, reads),
	}
}

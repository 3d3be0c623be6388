package services

import (
	"github.com/terraincognita07/autonomie/internal/models"
)

const (
	AnalyticsRoutineWindow = 30
	FinancialTrendPoints   = 6
)

// MetricsReaders are the degrade-on-read listings the metrics are computed
// from. Every call returns fresh rows; nothing is cached between requests.
type MetricsReaders struct {
	Goals       interface{ ListByUser(string) []models.FinancialGoal }
	Projects    interface{ ListByUser(string) []models.Project }
	Cycles      interface{ ListByUser(string) []models.Cycle }
	Reflections interface{ ListByUser(string) []models.QuarterlyReflection }
	Routines    interface {
		ListRecent(string, int) []models.DailyRoutine
	}
}

type MetricsService struct {
	readers MetricsReaders
	finance *FinanceService
	clock   Clock
}

func NewMetricsService(readers MetricsReaders, finance *FinanceService, clock Clock) *MetricsService {
	return &MetricsService{readers: readers, finance: finance, clock: clock}
}

type ActiveCycleView struct {
	Cycle       models.Cycle `json:"cycle"`
	CurrentWeek int          `json:"currentWeek"`
}

type Overview struct {
	CurrentGoal          *models.FinancialGoal `json:"currentGoal"`
	Progress             FloorProgress         `json:"progress"`
	FloorBar             float64               `json:"floorBar"`
	ExpansionBar         float64               `json:"expansionBar"`
	FloorGap             int                   `json:"floorGap"`
	ActiveProjects       int                   `json:"activeProjects"`
	AverageSatisfaction  float64               `json:"averageSatisfaction"`
	AlignmentScore       float64               `json:"alignmentScore"`
	CompleteRoutinesWeek int                   `json:"completeRoutinesWeek"`
	RoutineRateWeek      float64               `json:"routineRateWeek"`
	ActiveCycle          *ActiveCycleView      `json:"activeCycle"`
	Health               HealthScore           `json:"health"`
	Ledger               *LedgerSummary        `json:"ledger,omitempty"`
}

func (service *MetricsService) Overview(userID string) Overview {
	goals := service.readers.Goals.ListByUser(userID)
	projects := service.readers.Projects.ListByUser(userID)
	reflections := service.readers.Reflections.ListByUser(userID)
	routines := service.readers.Routines.ListRecent(userID, WeeklyRoutineWindow)
	cycles := service.readers.Cycles.ListByUser(userID)
	today := service.clock.Today()

	var currentGoal *models.FinancialGoal
	if len(goals) > 0 {
		currentGoal = &goals[0]
	}
	var latestReflection *models.QuarterlyReflection
	if len(reflections) > 0 {
		latestReflection = &reflections[0]
	}

	progress := ComputeFloorProgress(currentGoal)
	overview := Overview{
		CurrentGoal:          currentGoal,
		Progress:             progress,
		FloorBar:             ClampPercent(progress.FloorPct),
		ExpansionBar:         ClampPercent(progress.ExpansionPct),
		FloorGap:             FloorGap(currentGoal),
		ActiveProjects:       CountActiveProjects(projects),
		AverageSatisfaction:  Round(AverageSatisfaction(projects), 1),
		AlignmentScore:       Round(AlignmentScore(latestReflection), 1),
		CompleteRoutinesWeek: CountCompleteRoutines(routines),
		RoutineRateWeek:      Round(RoutineCompletionRate(routines), 0),
	}
	overview.Health = ComputeHealth(HealthInputs{
		FloorPct:        progress.FloorPct,
		ActiveProjects:  overview.ActiveProjects,
		AvgSatisfaction: overview.AverageSatisfaction,
		AlignmentScore:  overview.AlignmentScore,
	})

	if cycle, found := ActiveCycle(cycles, today); found {
		overview.ActiveCycle = &ActiveCycleView{Cycle: cycle, CurrentWeek: CurrentCycleWeek(cycle, today)}
	}
	if service.finance != nil {
		ledger := service.finance.LedgerForMonth(userID)
		overview.Ledger = &ledger
	}
	return overview
}

type TrendPoint struct {
	Month     string `json:"month"`
	Floor     int    `json:"floor"`
	Expansion int    `json:"expansion"`
	Actual    int    `json:"actual"`
}

type Analytics struct {
	FinancialTrend      []TrendPoint    `json:"financialTrend"`
	Progress            FloorProgress   `json:"progress"`
	ProjectsByStatus    map[string]int  `json:"projectsByStatus"`
	AverageSatisfaction float64         `json:"averageSatisfaction"`
	Alignment           AlignmentScores `json:"alignment"`
	RoutineRate         float64         `json:"routineRate"`
	Cycles              CycleCounts     `json:"cycles"`
	Insights            []Insight       `json:"insights"`
}

func (service *MetricsService) Analytics(userID string) Analytics {
	goals := service.readers.Goals.ListByUser(userID)
	projects := service.readers.Projects.ListByUser(userID)
	reflections := service.readers.Reflections.ListByUser(userID)
	routines := service.readers.Routines.ListRecent(userID, AnalyticsRoutineWindow)
	cycles := service.readers.Cycles.ListByUser(userID)

	var currentGoal *models.FinancialGoal
	if len(goals) > 0 {
		currentGoal = &goals[0]
	}
	var latestReflection *models.QuarterlyReflection
	if len(reflections) > 0 {
		latestReflection = &reflections[0]
	}

	progress := ComputeFloorProgress(currentGoal)
	byStatus := CountProjectsByStatus(projects)
	routineRate := RoutineCompletionRate(routines)

	return Analytics{
		FinancialTrend:      BuildFinancialTrend(goals, FinancialTrendPoints),
		Progress:            progress,
		ProjectsByStatus:    byStatus,
		AverageSatisfaction: Round(AverageSatisfaction(projects), 1),
		Alignment:           ReflectionScores(latestReflection),
		RoutineRate:         Round(routineRate, 0),
		Cycles:              CountCycles(cycles, service.clock.Today()),
		Insights:            SelectInsights(progress, byStatus[models.ProjectStatusProduction], routineRate),
	}
}

// BuildFinancialTrend takes the newest points goals (listed newest first)
// and returns them oldest first.
func BuildFinancialTrend(goals []models.FinancialGoal, points int) []TrendPoint {
	if len(goals) > points {
		goals = goals[:points]
	}
	trend := make([]TrendPoint, 0, len(goals))
	for index := len(goals) - 1; index >= 0; index-- {
		goal := goals[index]
		trend = append(trend, TrendPoint{
			Month:     goal.CurrentMonth,
			Floor:     goal.MonthlyFloor,
			Expansion: goal.MonthlyExpansion,
			Actual:    goal.ActualRevenue,
		})
	}
	return trend
}

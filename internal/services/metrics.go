package services

import (
	"github.com/shopspring/decimal"
	"github.com/terraincognita07/autonomie/internal/models"
)

const (
	HealthStatusExcellent = "Excellent"
	HealthStatusGood      = "Bon"
	HealthStatusImprove   = "À améliorer"
)

const (
	InsightFloorBelow       = "insight.floor_below"
	InsightFloorReached     = "insight.floor_reached"
	InsightExpansionReached = "insight.expansion_reached"
	InsightNoProduction     = "insight.no_production"
	InsightRoutinesLow      = "insight.routines_low"
)

type FloorProgress struct {
	FloorPct     float64 `json:"floorPct"`
	ExpansionPct float64 `json:"expansionPct"`
}

// ComputeFloorProgress relates actual revenue to the floor and expansion
// targets. The result is not clamped; use ClampPercent for progress bars.
func ComputeFloorProgress(goal *models.FinancialGoal) FloorProgress {
	if goal == nil {
		return FloorProgress{}
	}
	return FloorProgress{
		FloorPct:     percentOf(goal.ActualRevenue, goal.MonthlyFloor),
		ExpansionPct: percentOf(goal.ActualRevenue, goal.MonthlyExpansion),
	}
}

func percentOf(part int, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func ClampPercent(value float64) float64 {
	switch {
	case value < 0:
		return 0
	case value > 100:
		return 100
	default:
		return value
	}
}

// AverageSatisfaction counts a project without a level as 0.
func AverageSatisfaction(projects []models.Project) float64 {
	if len(projects) == 0 {
		return 0
	}
	sum := 0
	for _, project := range projects {
		if project.SatisfactionLevel != nil {
			sum += *project.SatisfactionLevel
		}
	}
	return float64(sum) / float64(len(projects))
}

type AlignmentScores struct {
	Create int `json:"create"`
	Teach  int `json:"teach"`
	Earn   int `json:"earn"`
}

// ReflectionScores reads the three axes of a reflection. A missing
// reflection, or a missing axis, reads as 0.
func ReflectionScores(reflection *models.QuarterlyReflection) AlignmentScores {
	if reflection == nil {
		return AlignmentScores{}
	}
	return AlignmentScores{
		Create: intOrZero(reflection.CreateScore),
		Teach:  intOrZero(reflection.TeachScore),
		Earn:   intOrZero(reflection.EarnScore),
	}
}

func AlignmentScore(reflection *models.QuarterlyReflection) float64 {
	scores := ReflectionScores(reflection)
	return float64(scores.Create+scores.Teach+scores.Earn) / 3
}

func intOrZero(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func CountCompleteRoutines(routines []models.DailyRoutine) int {
	complete := 0
	for _, routine := range routines {
		if routine.FullyCompleted() {
			complete++
		}
	}
	return complete
}

// RoutineCompletionRate is the share of days with all three items done.
func RoutineCompletionRate(routines []models.DailyRoutine) float64 {
	if len(routines) == 0 {
		return 0
	}
	return float64(CountCompleteRoutines(routines)) / float64(len(routines)) * 100
}

func CountActiveProjects(projects []models.Project) int {
	active := 0
	for _, project := range projects {
		if project.IsActive() {
			active++
		}
	}
	return active
}

func CountProjectsByStatus(projects []models.Project) map[string]int {
	counts := make(map[string]int, len(models.ProjectStatuses()))
	for _, status := range models.ProjectStatuses() {
		counts[status] = 0
	}
	for _, project := range projects {
		counts[project.Status]++
	}
	return counts
}

// Round rounds half away from zero to the given number of decimals.
func Round(value float64, places int32) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(places).Float64()
	return rounded
}

type HealthInputs struct {
	FloorPct        float64
	ActiveProjects  int
	AvgSatisfaction float64
	AlignmentScore  float64
}

type HealthScore struct {
	FloorSub        float64 `json:"floorSub"`
	ProjectsSub     float64 `json:"projectsSub"`
	SatisfactionSub float64 `json:"satisfactionSub"`
	AlignmentSub    float64 `json:"alignmentSub"`
	Percent         int     `json:"percent"`
	Status          string  `json:"status"`
}

// ComputeHealth blends four sub-scores with equal weight. Satisfaction and
// alignment are compared after rounding to one decimal, as displayed.
func ComputeHealth(inputs HealthInputs) HealthScore {
	score := HealthScore{
		FloorSub:        floorSubScore(inputs.FloorPct),
		ProjectsSub:     0.5,
		SatisfactionSub: tenPointSubScore(Round(inputs.AvgSatisfaction, 1)),
		AlignmentSub:    tenPointSubScore(Round(inputs.AlignmentScore, 1)),
	}
	if inputs.ActiveProjects > 0 {
		score.ProjectsSub = 1
	}

	total := decimal.NewFromFloat(score.FloorSub).
		Add(decimal.NewFromFloat(score.ProjectsSub)).
		Add(decimal.NewFromFloat(score.SatisfactionSub)).
		Add(decimal.NewFromFloat(score.AlignmentSub))
	score.Percent = int(total.Mul(decimal.NewFromInt(25)).Round(0).IntPart())

	switch {
	case score.Percent >= 80:
		score.Status = HealthStatusExcellent
	case score.Percent >= 60:
		score.Status = HealthStatusGood
	default:
		score.Status = HealthStatusImprove
	}
	return score
}

func floorSubScore(floorPct float64) float64 {
	switch {
	case floorPct >= 100:
		return 1
	case floorPct >= 80:
		return 0.8
	default:
		return 0.5
	}
}

func tenPointSubScore(value float64) float64 {
	switch {
	case value >= 7:
		return 1
	case value >= 5:
		return 0.7
	default:
		return 0.5
	}
}

type Insight struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// SelectInsights evaluates every rule independently; all matching insights
// are returned in a fixed order. Value carries the percentage the message
// quotes, rounded to an integer.
func SelectInsights(progress FloorProgress, productionProjects int, routineRate float64) []Insight {
	insights := make([]Insight, 0, 5)
	if progress.FloorPct < 100 {
		insights = append(insights, Insight{Key: InsightFloorBelow, Value: Round(progress.FloorPct, 0)})
	}
	if progress.FloorPct >= 100 && progress.ExpansionPct < 100 {
		insights = append(insights, Insight{Key: InsightFloorReached, Value: Round(progress.ExpansionPct, 0)})
	}
	if progress.ExpansionPct >= 100 {
		insights = append(insights, Insight{Key: InsightExpansionReached, Value: Round(progress.ExpansionPct, 0)})
	}
	if productionProjects == 0 {
		insights = append(insights, Insight{Key: InsightNoProduction})
	}
	if rounded := Round(routineRate, 0); rounded < 50 {
		insights = append(insights, Insight{Key: InsightRoutinesLow, Value: rounded})
	}
	return insights
}

// FloorGap is how much revenue is still missing to reach the floor.
func FloorGap(goal *models.FinancialGoal) int {
	if goal == nil || goal.ActualRevenue >= goal.MonthlyFloor {
		return 0
	}
	return goal.MonthlyFloor - goal.ActualRevenue
}

type LedgerSummary struct {
	Month              string         `json:"month"`
	RevenueTotal       int            `json:"revenueTotal"`
	ExpenseTotal       int            `json:"expenseTotal"`
	Balance            int            `json:"balance"`
	ExpensesByCategory map[string]int `json:"expensesByCategory"`
}

// SummarizeLedger totals revenue and expense entries. Goals are never
// touched by it.
func SummarizeLedger(month string, revenues []models.RevenueSource, expenses []models.Expense) LedgerSummary {
	summary := LedgerSummary{Month: month, ExpensesByCategory: make(map[string]int, len(models.ExpenseCategories()))}
	for _, category := range models.ExpenseCategories() {
		summary.ExpensesByCategory[category] = 0
	}
	for _, revenue := range revenues {
		summary.RevenueTotal += revenue.Amount
	}
	for _, expense := range expenses {
		summary.ExpenseTotal += expense.Amount
		summary.ExpensesByCategory[expense.Category] += expense.Amount
	}
	summary.Balance = summary.RevenueTotal - summary.ExpenseTotal
	return summary
}

package services

import (
	"math"
	"testing"

	"github.com/terraincognita07/autonomie/internal/models"
)

func intPtr(value int) *int {
	return &value
}

func TestComputeFloorProgress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		goal          *models.FinancialGoal
		wantFloor     float64
		wantExpansion float64
	}{
		{name: "no goal", goal: nil},
		{name: "zero targets", goal: &models.FinancialGoal{ActualRevenue: 900}},
		{name: "floor reached", goal: &models.FinancialGoal{MonthlyFloor: 1500, MonthlyExpansion: 3000, ActualRevenue: 1500}, wantFloor: 100, wantExpansion: 50},
		{name: "above expansion is not clamped", goal: &models.FinancialGoal{MonthlyFloor: 1000, MonthlyExpansion: 2000, ActualRevenue: 3000}, wantFloor: 300, wantExpansion: 150},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeFloorProgress(tt.goal)
			if got.FloorPct != tt.wantFloor || got.ExpansionPct != tt.wantExpansion {
				t.Fatalf("expected %v/%v, got %v/%v", tt.wantFloor, tt.wantExpansion, got.FloorPct, got.ExpansionPct)
			}
		})
	}
}

func TestClampPercent(t *testing.T) {
	t.Parallel()

	if ClampPercent(-5) != 0 || ClampPercent(250) != 100 || ClampPercent(42.5) != 42.5 {
		t.Fatal("expected clamp into [0,100]")
	}
}

func TestAverageSatisfaction(t *testing.T) {
	t.Parallel()

	if got := AverageSatisfaction(nil); got != 0 {
		t.Fatalf("expected 0 for no projects, got %v", got)
	}

	projects := []models.Project{
		{SatisfactionLevel: intPtr(8)},
		{SatisfactionLevel: intPtr(6)},
		{SatisfactionLevel: intPtr(4)},
	}
	if got := AverageSatisfaction(projects); got != 6.0 {
		t.Fatalf("expected 6.0, got %v", got)
	}

	withMissing := append(projects, models.Project{})
	if got := AverageSatisfaction(withMissing); got != 4.5 {
		t.Fatalf("expected missing level to count as 0, got %v", got)
	}
}

func TestAlignmentScoreDefaultsToZeroWithoutReflection(t *testing.T) {
	t.Parallel()

	if got := AlignmentScore(nil); got != 0 {
		t.Fatalf("expected 0 without reflection, got %v", got)
	}

	reflection := &models.QuarterlyReflection{CreateScore: intPtr(9), TeachScore: intPtr(6), EarnScore: intPtr(7)}
	if got := AlignmentScore(reflection); math.Abs(got-22.0/3) > 1e-9 {
		t.Fatalf("expected 22/3, got %v", got)
	}
	if got := Round(AlignmentScore(reflection), 1); got != 7.3 {
		t.Fatalf("expected 7.3 rounded, got %v", got)
	}
}

func TestRoutineCompletionRateCountsOnlyFullDays(t *testing.T) {
	t.Parallel()

	full := models.DailyRoutine{MorningCompleted: true, BeforeWorkCompleted: true, EndOfDayCompleted: true}
	partial := models.DailyRoutine{MorningCompleted: true, BeforeWorkCompleted: true}

	if got := RoutineCompletionRate([]models.DailyRoutine{partial}); got != 0 {
		t.Fatalf("expected two of three flags not to count, got %v", got)
	}

	routines := []models.DailyRoutine{full, full, full, full, partial, partial, partial}
	if got := Round(RoutineCompletionRate(routines), 0); got != 57 {
		t.Fatalf("expected 57, got %v", got)
	}
	if got := RoutineCompletionRate(nil); got != 0 {
		t.Fatalf("expected 0 without routines, got %v", got)
	}
}

func TestComputeHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		inputs      HealthInputs
		wantPercent int
		wantStatus  string
	}{
		{
			name:        "maximum inputs",
			inputs:      HealthInputs{FloorPct: 100, ActiveProjects: 1, AvgSatisfaction: 10, AlignmentScore: 10},
			wantPercent: 100,
			wantStatus:  HealthStatusExcellent,
		},
		{
			name:        "minimum inputs",
			inputs:      HealthInputs{},
			wantPercent: 50,
			wantStatus:  HealthStatusImprove,
		},
		{
			name:        "good band",
			inputs:      HealthInputs{FloorPct: 85, ActiveProjects: 0, AvgSatisfaction: 5, AlignmentScore: 7},
			wantPercent: 75,
			wantStatus:  HealthStatusGood,
		},
		{
			name:        "excellent at exactly eighty",
			inputs:      HealthInputs{FloorPct: 100, ActiveProjects: 1, AvgSatisfaction: 5, AlignmentScore: 4},
			wantPercent: 80,
			wantStatus:  HealthStatusExcellent,
		},
		{
			name:        "thresholds use one decimal rounding",
			inputs:      HealthInputs{FloorPct: 10, ActiveProjects: 0, AvgSatisfaction: 6.96, AlignmentScore: 4.95},
			wantPercent: 68,
			wantStatus:  HealthStatusGood,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeHealth(tt.inputs)
			if got.Percent != tt.wantPercent {
				t.Fatalf("expected health %d, got %d (%+v)", tt.wantPercent, got.Percent, got)
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("expected status %q, got %q", tt.wantStatus, got.Status)
			}
			if got.Percent < 0 || got.Percent > 100 {
				t.Fatalf("health out of range: %d", got.Percent)
			}
		})
	}
}

func TestSelectInsights(t *testing.T) {
	t.Parallel()

	keys := func(insights []Insight) []string {
		result := make([]string, 0, len(insights))
		for _, insight := range insights {
			result = append(result, insight.Key)
		}
		return result
	}

	floorMet := SelectInsights(FloorProgress{FloorPct: 100, ExpansionPct: 50}, 1, 80)
	if got := keys(floorMet); len(got) != 1 || got[0] != InsightFloorReached {
		t.Fatalf("expected only floor reached insight, got %v", got)
	}
	if floorMet[0].Value != 50 {
		t.Fatalf("expected expansion percentage 50 quoted, got %v", floorMet[0].Value)
	}

	everything := SelectInsights(FloorProgress{FloorPct: 42.4}, 0, 49.6)
	want := []string{InsightFloorBelow, InsightNoProduction}
	if got := keys(everything); len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}

	lowRoutines := SelectInsights(FloorProgress{FloorPct: 120, ExpansionPct: 110}, 2, 49.4)
	if got := keys(lowRoutines); len(got) != 2 || got[0] != InsightExpansionReached || got[1] != InsightRoutinesLow {
		t.Fatalf("expected expansion and routines insights, got %v", got)
	}
}

func TestFloorGapAndLedgerSummary(t *testing.T) {
	t.Parallel()

	if got := FloorGap(&models.FinancialGoal{MonthlyFloor: 1500, ActualRevenue: 600}); got != 900 {
		t.Fatalf("expected gap 900, got %d", got)
	}
	if got := FloorGap(&models.FinancialGoal{MonthlyFloor: 1500, ActualRevenue: 1600}); got != 0 {
		t.Fatalf("expected no gap above floor, got %d", got)
	}

	summary := SummarizeLedger("2026-03",
		[]models.RevenueSource{{Amount: 1200}, {Amount: 300}},
		[]models.Expense{{Amount: 700, Category: models.CategoryHousing}, {Amount: 50, Category: models.CategoryFood}},
	)
	if summary.RevenueTotal != 1500 || summary.ExpenseTotal != 750 || summary.Balance != 750 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.ExpensesByCategory[models.CategoryHousing] != 700 || summary.ExpensesByCategory[models.CategoryLeisure] != 0 {
		t.Fatalf("unexpected category totals: %+v", summary.ExpensesByCategory)
	}
}

func TestBuildFinancialTrendReturnsOldestFirst(t *testing.T) {
	t.Parallel()

	goals := make([]models.FinancialGoal, 0, 8)
	for month := 8; month >= 1; month-- {
		goals = append(goals, models.FinancialGoal{CurrentMonth: "2026-0" + string(rune('0'+month))})
	}

	trend := BuildFinancialTrend(goals, FinancialTrendPoints)
	if len(trend) != 6 {
		t.Fatalf("expected 6 points, got %d", len(trend))
	}
	if trend[0].Month != "2026-03" || trend[5].Month != "2026-08" {
		t.Fatalf("unexpected trend window %s..%s", trend[0].Month, trend[5].Month)
	}
}

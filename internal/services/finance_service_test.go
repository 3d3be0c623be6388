package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
)

func newTestFinanceService(goals *stubGoalStore, revenues *stubRevenueStore, expenses *stubExpenseStore) *FinanceService {
	return NewFinanceService(goals, revenues, expenses, fixedClock(time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)))
}

func TestUpsertGoalRejectsInvalidInputBeforeStore(t *testing.T) {
	goals := &stubGoalStore{}
	service := newTestFinanceService(goals, &stubRevenueStore{}, &stubExpenseStore{})

	cases := []struct {
		name  string
		month string
		input FinancialGoalInput
		field string
	}{
		{name: "bad month", month: "2026-13", input: FinancialGoalInput{MonthlyFloor: intPtr(1), MonthlyExpansion: intPtr(1), MonthlySavings: intPtr(1)}, field: "month"},
		{name: "missing floor", month: "2026-03", input: FinancialGoalInput{MonthlyExpansion: intPtr(1), MonthlySavings: intPtr(1)}, field: "monthlyFloor"},
		{name: "negative savings", month: "2026-03", input: FinancialGoalInput{MonthlyFloor: intPtr(1), MonthlyExpansion: intPtr(1), MonthlySavings: intPtr(-5)}, field: "monthlySavings"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.UpsertGoal("user-1", testCase.month, testCase.input)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) || validationErr.Field != testCase.field {
				t.Fatalf("expected field %q, got %v", testCase.field, err)
			}
		})
	}
	if len(goals.upserted) != 0 {
		t.Fatalf("expected no store writes, got %d", len(goals.upserted))
	}
}

func TestUpsertGoalDefaultsActualRevenueToZero(t *testing.T) {
	goals := &stubGoalStore{}
	service := newTestFinanceService(goals, &stubRevenueStore{}, &stubExpenseStore{})

	goal, err := service.UpsertGoal("user-1", "2026-03", FinancialGoalInput{
		MonthlyFloor:     intPtr(1500),
		MonthlyExpansion: intPtr(3000),
		MonthlySavings:   intPtr(200),
	})
	if err != nil {
		t.Fatalf("UpsertGoal() unexpected error: %v", err)
	}
	if goal.ActualRevenue != 0 || goal.CurrentMonth != "2026-03" || goal.UserID != "user-1" {
		t.Fatalf("unexpected goal %+v", goal)
	}
	if len(goals.upserted) != 1 {
		t.Fatalf("expected one upsert, got %d", len(goals.upserted))
	}
	if goals.withActuals[0] {
		t.Fatal("omitted actualRevenue must not overwrite the stored value")
	}

	if _, err := service.UpsertGoal("user-1", "2026-03", FinancialGoalInput{
		MonthlyFloor:     intPtr(1500),
		MonthlyExpansion: intPtr(3000),
		MonthlySavings:   intPtr(200),
		ActualRevenue:    intPtr(0),
	}); err != nil {
		t.Fatalf("UpsertGoal() with explicit zero: %v", err)
	}
	if !goals.withActuals[1] {
		t.Fatal("explicit actualRevenue must be written")
	}
}

func TestUpsertGoalMapsStoreFailure(t *testing.T) {
	goals := &stubGoalStore{err: errStoreDown}
	service := newTestFinanceService(goals, &stubRevenueStore{}, &stubExpenseStore{})

	_, err := service.UpsertGoal("user-1", "2026-03", FinancialGoalInput{
		MonthlyFloor:     intPtr(1500),
		MonthlyExpansion: intPtr(3000),
		MonthlySavings:   intPtr(200),
	})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestGetGoalReturnsNilWhenAbsent(t *testing.T) {
	goals := &stubGoalStore{goals: []models.FinancialGoal{{ID: "g1", CurrentMonth: "2026-02"}}}
	service := newTestFinanceService(goals, &stubRevenueStore{}, &stubExpenseStore{})

	goal, err := service.GetGoal("user-1", "2026-03")
	if err != nil || goal != nil {
		t.Fatalf("expected nil goal without error, got %+v, %v", goal, err)
	}
	goal, err = service.GetGoal("user-1", "2026-02")
	if err != nil || goal == nil || goal.ID != "g1" {
		t.Fatalf("expected stored goal, got %+v, %v", goal, err)
	}
}

func TestCreateRevenueSourceDefaults(t *testing.T) {
	revenues := &stubRevenueStore{}
	service := newTestFinanceService(&stubGoalStore{}, revenues, &stubExpenseStore{})

	id, err := service.CreateRevenueSource("user-1", RevenueSourceInput{Name: "  Atelier  ", Amount: intPtr(400)})
	if err != nil {
		t.Fatalf("CreateRevenueSource() unexpected error: %v", err)
	}
	if id == "" || len(revenues.created) != 1 {
		t.Fatalf("expected one created entry with id, got %q %d", id, len(revenues.created))
	}
	entry := revenues.created[0]
	if entry.Name != "Atelier" {
		t.Fatalf("expected trimmed name, got %q", entry.Name)
	}
	if entry.Frequency != models.FrequencyOnce {
		t.Fatalf("expected default frequency, got %q", entry.Frequency)
	}
	if want := day(2026, time.March, 14); !entry.Date.Equal(want) {
		t.Fatalf("expected date %s, got %s", want, entry.Date)
	}
}

func TestCreateExpenseRejectsUnknownCategory(t *testing.T) {
	expenses := &stubExpenseStore{}
	service := newTestFinanceService(&stubGoalStore{}, &stubRevenueStore{}, expenses)

	_, err := service.CreateExpense("user-1", ExpenseInput{Name: "Loyer", Amount: intPtr(700), Category: "casino"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(expenses.created) != 0 {
		t.Fatalf("expected no store writes, got %d", len(expenses.created))
	}
}

func TestUpdateRevenueSourceBuildsPartialFields(t *testing.T) {
	revenues := &stubRevenueStore{}
	service := newTestFinanceService(&stubGoalStore{}, revenues, &stubExpenseStore{})

	amount := 900
	date := "2026-03-01"
	if err := service.UpdateRevenueSource("user-1", "rev-1", RevenueSourcePatch{Amount: &amount, Date: &date}); err != nil {
		t.Fatalf("UpdateRevenueSource() unexpected error: %v", err)
	}
	fields := revenues.updates["rev-1"]
	if len(fields) != 2 || fields["amount"] != 900 {
		t.Fatalf("unexpected update fields %+v", fields)
	}
	if _, ok := fields["name"]; ok {
		t.Fatalf("did not expect name in update fields")
	}
}

func TestRevenueSourceWritesMapMissingRows(t *testing.T) {
	revenues := &stubRevenueStore{updateErr: gorm.ErrRecordNotFound}
	service := newTestFinanceService(&stubGoalStore{}, revenues, &stubExpenseStore{})

	amount := 1
	if err := service.UpdateRevenueSource("user-1", "missing", RevenueSourcePatch{Amount: &amount}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := service.DeleteRevenueSource("user-1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}

	revenues.updateErr = errStoreDown
	if err := service.UpdateRevenueSource("user-1", "rev-1", RevenueSourcePatch{Amount: &amount}); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestLedgerForMonthUsesCurrentMonth(t *testing.T) {
	revenues := &stubRevenueStore{inRange: []models.RevenueSource{{Amount: 1200}, {Amount: 300}}}
	expenses := &stubExpenseStore{inRange: []models.Expense{{Amount: 700, Category: models.CategoryHousing}}}
	service := newTestFinanceService(&stubGoalStore{}, revenues, expenses)

	ledger := service.LedgerForMonth("user-1")
	if ledger.Month != "2026-03" {
		t.Fatalf("expected month 2026-03, got %q", ledger.Month)
	}
	if ledger.RevenueTotal != 1500 || ledger.ExpenseTotal != 700 || ledger.Balance != 800 || ledger.ExpensesByCategory[models.CategoryHousing] != 700 {
		t.Fatalf("unexpected ledger %+v", ledger)
	}
}

package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
)

type FinancialGoalStore interface {
	ListByUser(userID string) []models.FinancialGoal
	FindByMonth(userID string, month string) (models.FinancialGoal, bool)
	Upsert(goal *models.FinancialGoal, withActualRevenue bool) error
}

type RevenueSourceStore interface {
	ListByUser(userID string) []models.RevenueSource
	ListByUserInRange(userID string, from time.Time, to time.Time) []models.RevenueSource
	FindByID(userID string, id string) (models.RevenueSource, bool)
	Create(entry *models.RevenueSource) error
	Update(userID string, id string, fields map[string]any) error
	Delete(userID string, id string) error
}

type ExpenseStore interface {
	ListByUser(userID string) []models.Expense
	ListByUserInRange(userID string, from time.Time, to time.Time) []models.Expense
	FindByID(userID string, id string) (models.Expense, bool)
	Create(entry *models.Expense) error
	Update(userID string, id string, fields map[string]any) error
	Delete(userID string, id string) error
}

type FinanceService struct {
	goals    FinancialGoalStore
	revenues RevenueSourceStore
	expenses ExpenseStore
	clock    Clock
}

func NewFinanceService(goals FinancialGoalStore, revenues RevenueSourceStore, expenses ExpenseStore, clock Clock) *FinanceService {
	return &FinanceService{goals: goals, revenues: revenues, expenses: expenses, clock: clock}
}

func (service *FinanceService) ListGoals(userID string) []models.FinancialGoal {
	return service.goals.ListByUser(userID)
}

func (service *FinanceService) GetGoal(userID string, month string) (*models.FinancialGoal, error) {
	if err := ValidateMonthKey(month); err != nil {
		return nil, err
	}
	goal, found := service.goals.FindByMonth(userID, month)
	if !found {
		return nil, nil
	}
	return &goal, nil
}

func (service *FinanceService) UpsertGoal(userID string, month string, input FinancialGoalInput) (models.FinancialGoal, error) {
	if err := ValidateMonthKey(month); err != nil {
		return models.FinancialGoal{}, err
	}
	if err := validateInput(input); err != nil {
		return models.FinancialGoal{}, err
	}

	goal := models.FinancialGoal{
		ID:               uuid.NewString(),
		UserID:           userID,
		CurrentMonth:     month,
		MonthlyFloor:     *input.MonthlyFloor,
		MonthlyExpansion: *input.MonthlyExpansion,
		MonthlySavings:   *input.MonthlySavings,
	}
	if input.ActualRevenue != nil {
		goal.ActualRevenue = *input.ActualRevenue
	}
	if err := service.goals.Upsert(&goal, input.ActualRevenue != nil); err != nil {
		return models.FinancialGoal{}, storageFailure("upsert financial goal", err)
	}
	return goal, nil
}

func (service *FinanceService) ListRevenueSources(userID string) []models.RevenueSource {
	return service.revenues.ListByUser(userID)
}

func (service *FinanceService) GetRevenueSource(userID string, id string) *models.RevenueSource {
	entry, found := service.revenues.FindByID(userID, id)
	if !found {
		return nil
	}
	return &entry
}

func (service *FinanceService) CreateRevenueSource(userID string, input RevenueSourceInput) (string, error) {
	input.Name = trimmed(input.Name)
	if err := validateInput(input); err != nil {
		return "", err
	}

	date, err := service.dayOrToday(input.Date)
	if err != nil {
		return "", invalidField("date", err.Error())
	}
	entry := models.RevenueSource{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        input.Name,
		Amount:      *input.Amount,
		Frequency:   valueOr(input.Frequency, models.FrequencyOnce),
		Description: input.Description,
		Date:        date,
	}
	if err := service.revenues.Create(&entry); err != nil {
		return "", storageFailure("create revenue source", err)
	}
	return entry.ID, nil
}

func (service *FinanceService) UpdateRevenueSource(userID string, id string, patch RevenueSourcePatch) error {
	patch.Name = trimmedPtr(patch.Name)
	if err := validateInput(patch); err != nil {
		return err
	}

	fields, err := ledgerPatchFields(patch.Name, patch.Amount, patch.Description, patch.Date)
	if err != nil {
		return err
	}
	if patch.Frequency != nil {
		fields["frequency"] = *patch.Frequency
	}
	return writeResult("update revenue source", service.revenues.Update(userID, id, fields))
}

func (service *FinanceService) DeleteRevenueSource(userID string, id string) error {
	return writeResult("delete revenue source", service.revenues.Delete(userID, id))
}

func (service *FinanceService) ListExpenses(userID string) []models.Expense {
	return service.expenses.ListByUser(userID)
}

func (service *FinanceService) GetExpense(userID string, id string) *models.Expense {
	entry, found := service.expenses.FindByID(userID, id)
	if !found {
		return nil
	}
	return &entry
}

func (service *FinanceService) CreateExpense(userID string, input ExpenseInput) (string, error) {
	input.Name = trimmed(input.Name)
	if err := validateInput(input); err != nil {
		return "", err
	}

	date, err := service.dayOrToday(input.Date)
	if err != nil {
		return "", invalidField("date", err.Error())
	}
	entry := models.Expense{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        input.Name,
		Amount:      *input.Amount,
		Category:    valueOr(input.Category, models.CategoryOther),
		Description: input.Description,
		Date:        date,
	}
	if err := service.expenses.Create(&entry); err != nil {
		return "", storageFailure("create expense", err)
	}
	return entry.ID, nil
}

func (service *FinanceService) UpdateExpense(userID string, id string, patch ExpensePatch) error {
	patch.Name = trimmedPtr(patch.Name)
	if err := validateInput(patch); err != nil {
		return err
	}

	fields, err := ledgerPatchFields(patch.Name, patch.Amount, patch.Description, patch.Date)
	if err != nil {
		return err
	}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	return writeResult("update expense", service.expenses.Update(userID, id, fields))
}

func (service *FinanceService) DeleteExpense(userID string, id string) error {
	return writeResult("delete expense", service.expenses.Delete(userID, id))
}

// LedgerForMonth totals the ledger entries dated inside the current month.
func (service *FinanceService) LedgerForMonth(userID string) LedgerSummary {
	month := MonthKey(service.clock.Today())
	from, to, _ := MonthRange(month)
	return SummarizeLedger(
		month,
		service.revenues.ListByUserInRange(userID, from, to),
		service.expenses.ListByUserInRange(userID, from, to),
	)
}

func (service *FinanceService) dayOrToday(raw string) (time.Time, error) {
	if trimmed(raw) == "" {
		return service.clock.Today(), nil
	}
	return ParseCalendarDay(raw)
}

func ledgerPatchFields(name *string, amount *int, description *string, date *string) (map[string]any, error) {
	fields := make(map[string]any)
	if name != nil {
		fields["name"] = *name
	}
	if amount != nil {
		fields["amount"] = *amount
	}
	if description != nil {
		fields["description"] = *description
	}
	if date != nil && trimmed(*date) != "" {
		day, err := ParseCalendarDay(*date)
		if err != nil {
			return nil, invalidField("date", err.Error())
		}
		fields["date"] = day
	}
	return fields, nil
}

// writeResult maps a repository write error onto the service taxonomy.
func writeResult(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return storageFailure(operation, err)
	}
}

func valueOr(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

package db

import (
	"time"

	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FinancialGoalRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewFinancialGoalRepository(database *gorm.DB, reads readPolicy) *FinancialGoalRepository {
	return &FinancialGoalRepository{database: database, reads: reads}
}

// ListByUser returns goals newest month first.
func (repo *FinancialGoalRepository) ListByUser(userID string) []models.FinancialGoal {
	query := repo.database.Where("user_id = ?", userID).Order("current_month DESC")
	return listOrEmpty[models.FinancialGoal](repo.reads, "financial_goals.list", userID, query)
}

func (repo *FinancialGoalRepository) FindByMonth(userID string, month string) (models.FinancialGoal, bool) {
	query := repo.database.Where("user_id = ? AND current_month = ?", userID, month)
	return firstOrAbsent[models.FinancialGoal](repo.reads, "financial_goals.get", userID, query)
}

// Upsert inserts the goal or overwrites the amounts of the existing row for
// the same (user, month). The stored id is kept on conflict. Unless
// withActualRevenue is set, an existing actual_revenue is left as stored.
func (repo *FinancialGoalRepository) Upsert(goal *models.FinancialGoal, withActualRevenue bool) error {
	goal.UpdatedAt = time.Now().UTC()

	columns := []string{"monthly_floor", "monthly_expansion", "monthly_savings", "updated_at"}
	if withActualRevenue {
		columns = append(columns, "actual_revenue")
	}

	return upsertAndReload(repo.database, goal, clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "current_month"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}, "user_id = ? AND current_month = ?", goal.UserID, goal.CurrentMonth)
}

type RevenueSourceRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewRevenueSourceRepository(database *gorm.DB, reads readPolicy) *RevenueSourceRepository {
	return &RevenueSourceRepository{database: database, reads: reads}
}

func (repo *RevenueSourceRepository) ListByUser(userID string) []models.RevenueSource {
	query := repo.database.Where("user_id = ?", userID).Order("date DESC").Order("created_at DESC")
	return listOrEmpty[models.RevenueSource](repo.reads, "revenue_sources.list", userID, query)
}

func (repo *RevenueSourceRepository) ListByUserInRange(userID string, from time.Time, to time.Time) []models.RevenueSource {
	query := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date DESC")
	return listOrEmpty[models.RevenueSource](repo.reads, "revenue_sources.list_range", userID, query)
}

func (repo *RevenueSourceRepository) FindByID(userID string, id string) (models.RevenueSource, bool) {
	query := repo.database.Where("id = ? AND user_id = ?", id, userID)
	return firstOrAbsent[models.RevenueSource](repo.reads, "revenue_sources.get", userID, query)
}

func (repo *RevenueSourceRepository) Create(entry *models.RevenueSource) error {
	return repo.database.Create(entry).Error
}

func (repo *RevenueSourceRepository) Update(userID string, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	return affectedOrNotFound(repo.database.Model(&models.RevenueSource{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields))
}

func (repo *RevenueSourceRepository) Delete(userID string, id string) error {
	return affectedOrNotFound(repo.database.Where("id = ? AND user_id = ?", id, userID).Delete(&models.RevenueSource{}))
}

type ExpenseRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewExpenseRepository(database *gorm.DB, reads readPolicy) *ExpenseRepository {
	return &ExpenseRepository{database: database, reads: reads}
}

func (repo *ExpenseRepository) ListByUser(userID string) []models.Expense {
	query := repo.database.Where("user_id = ?", userID).Order("date DESC").Order("created_at DESC")
	return listOrEmpty[models.Expense](repo.reads, "expenses.list", userID, query)
}

func (repo *ExpenseRepository) ListByUserInRange(userID string, from time.Time, to time.Time) []models.Expense {
	query := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date DESC")
	return listOrEmpty[models.Expense](repo.reads, "expenses.list_range", userID, query)
}

func (repo *ExpenseRepository) FindByID(userID string, id string) (models.Expense, bool) {
	query := repo.database.Where("id = ? AND user_id = ?", id, userID)
	return firstOrAbsent[models.Expense](repo.reads, "expenses.get", userID, query)
}

func (repo *ExpenseRepository) Create(entry *models.Expense) error {
	return repo.database.Create(entry).Error
}

func (repo *ExpenseRepository) Update(userID string, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	return affectedOrNotFound(repo.database.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields))
}

func (repo *ExpenseRepository) Delete(userID string, id string) error {
	return affectedOrNotFound(repo.database.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Expense{}))
}

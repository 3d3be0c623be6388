package db

import (
	"time"

	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CycleRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewCycleRepository(database *gorm.DB, reads readPolicy) *CycleRepository {
	return &CycleRepository{database: database, reads: reads}
}

// ListByUser returns cycles newest start first; the active-cycle lookup
// relies on this order.
func (repo *CycleRepository) ListByUser(userID string) []models.Cycle {
	query := repo.database.Where("user_id = ?", userID).Order("start_date DESC").Order("created_at DESC")
	return listOrEmpty[models.Cycle](repo.reads, "cycles.list", userID, query)
}

func (repo *CycleRepository) FindByID(userID string, id string) (models.Cycle, bool) {
	query := repo.database.Where("id = ? AND user_id = ?", id, userID)
	return firstOrAbsent[models.Cycle](repo.reads, "cycles.get", userID, query)
}

// FindOwned is the strict variant used before writes that depend on the cycle.
func (repo *CycleRepository) FindOwned(userID string, id string) (models.Cycle, error) {
	var cycle models.Cycle
	if err := repo.database.Where("id = ? AND user_id = ?", id, userID).First(&cycle).Error; err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}

func (repo *CycleRepository) Create(cycle *models.Cycle) error {
	return repo.database.Create(cycle).Error
}

func (repo *CycleRepository) Update(userID string, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	return affectedOrNotFound(repo.database.Model(&models.Cycle{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields))
}

func (repo *CycleRepository) Delete(userID string, id string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := affectedOrNotFound(tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Cycle{})); err != nil {
			return err
		}
		return tx.Where("cycle_id = ?", id).Delete(&models.WeeklyProgress{}).Error
	})
}

type WeeklyProgressRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewWeeklyProgressRepository(database *gorm.DB, reads readPolicy) *WeeklyProgressRepository {
	return &WeeklyProgressRepository{database: database, reads: reads}
}

func (repo *WeeklyProgressRepository) ListByCycle(userID string, cycleID string) []models.WeeklyProgress {
	query := repo.database.
		Where("user_id = ? AND cycle_id = ?", userID, cycleID).
		Order("week_number ASC")
	return listOrEmpty[models.WeeklyProgress](repo.reads, "weekly_progress.list", userID, query)
}

func (repo *WeeklyProgressRepository) Upsert(progress *models.WeeklyProgress) error {
	progress.UpdatedAt = time.Now().UTC()
	return upsertAndReload(repo.database, progress, clause.OnConflict{
		Columns:   []clause.Column{{Name: "cycle_id"}, {Name: "week_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"week_start_date", "notes", "deliverables", "updated_at"}),
	}, "cycle_id = ? AND week_number = ?", progress.CycleID, progress.WeekNumber)
}

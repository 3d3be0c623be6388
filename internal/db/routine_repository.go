package db

import (
	"time"

	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoutineRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewRoutineRepository(database *gorm.DB, reads readPolicy) *RoutineRepository {
	return &RoutineRepository{database: database, reads: reads}
}

// ListRecent returns at most limit routines, newest day first.
func (repo *RoutineRepository) ListRecent(userID string, limit int) []models.DailyRoutine {
	query := repo.database.Where("user_id = ?", userID).Order("date DESC").Limit(limit)
	return listOrEmpty[models.DailyRoutine](repo.reads, "daily_routines.list", userID, query)
}

func (repo *RoutineRepository) FindByDate(userID string, day time.Time) (models.DailyRoutine, bool) {
	query := repo.database.Where("user_id = ? AND date = ?", userID, day)
	return firstOrAbsent[models.DailyRoutine](repo.reads, "daily_routines.get", userID, query)
}

func (repo *RoutineRepository) Upsert(routine *models.DailyRoutine) error {
	routine.UpdatedAt = time.Now().UTC()
	return upsertAndReload(repo.database, routine, clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"morning_completed",
			"before_work_completed",
			"end_of_day_completed",
			"notes",
			"updated_at",
		}),
	}, "user_id = ? AND date = ?", routine.UserID, routine.Date)
}

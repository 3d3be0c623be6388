package db

import (
	"time"

	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReflectionRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewReflectionRepository(database *gorm.DB, reads readPolicy) *ReflectionRepository {
	return &ReflectionRepository{database: database, reads: reads}
}

func (repo *ReflectionRepository) ListByUser(userID string) []models.QuarterlyReflection {
	query := repo.database.Where("user_id = ?", userID).Order("quarter DESC")
	return listOrEmpty[models.QuarterlyReflection](repo.reads, "quarterly_reflections.list", userID, query)
}

func (repo *ReflectionRepository) FindByQuarter(userID string, quarter string) (models.QuarterlyReflection, bool) {
	query := repo.database.Where("user_id = ? AND quarter = ?", userID, quarter)
	return firstOrAbsent[models.QuarterlyReflection](repo.reads, "quarterly_reflections.get", userID, query)
}

// Upsert overwrites the text fields and only those scores that are set on
// reflection; nil scores keep their stored value.
func (repo *ReflectionRepository) Upsert(reflection *models.QuarterlyReflection) error {
	reflection.UpdatedAt = time.Now().UTC()

	columns := []string{"alignment_phrase", "notes", "updated_at"}
	if reflection.CreateScore != nil {
		columns = append(columns, "create_score")
	}
	if reflection.TeachScore != nil {
		columns = append(columns, "teach_score")
	}
	if reflection.EarnScore != nil {
		columns = append(columns, "earn_score")
	}

	return upsertAndReload(repo.database, reflection, clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "quarter"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}, "user_id = ? AND quarter = ?", reflection.UserID, reflection.Quarter)
}

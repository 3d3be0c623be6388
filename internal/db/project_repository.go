package db

import (
	"time"

	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewProjectRepository(database *gorm.DB, reads readPolicy) *ProjectRepository {
	return &ProjectRepository{database: database, reads: reads}
}

func (repo *ProjectRepository) ListByUser(userID string) []models.Project {
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC")
	return listOrEmpty[models.Project](repo.reads, "projects.list", userID, query)
}

func (repo *ProjectRepository) FindByID(userID string, id string) (models.Project, bool) {
	query := repo.database.Where("id = ? AND user_id = ?", id, userID)
	return firstOrAbsent[models.Project](repo.reads, "projects.get", userID, query)
}

// FindOwned is the strict lookup used before writes that depend on the
// stored row; it returns gorm.ErrRecordNotFound or the store error.
func (repo *ProjectRepository) FindOwned(userID string, id string) (models.Project, error) {
	var project models.Project
	if err := repo.database.Where("id = ? AND user_id = ?", id, userID).First(&project).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// ExistsForUser is the ownership check that guards writes on child rows; its
// failures propagate instead of degrading.
func (repo *ProjectRepository) ExistsForUser(userID string, id string) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *ProjectRepository) Create(project *models.Project) error {
	return repo.database.Create(project).Error
}

func (repo *ProjectRepository) Update(userID string, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	return affectedOrNotFound(repo.database.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields))
}

// Delete removes the project and its actions.
func (repo *ProjectRepository) Delete(userID string, id string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := affectedOrNotFound(tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Project{})); err != nil {
			return err
		}
		return tx.Where("project_id = ?", id).Delete(&models.ProjectAction{}).Error
	})
}

type ProjectActionRepository struct {
	database *gorm.DB
	reads    readPolicy
}

func NewProjectActionRepository(database *gorm.DB, reads readPolicy) *ProjectActionRepository {
	return &ProjectActionRepository{database: database, reads: reads}
}

func (repo *ProjectActionRepository) ownedProjects(userID string) *gorm.DB {
	return repo.database.Model(&models.Project{}).Select("id").Where("user_id = ?", userID)
}

func (repo *ProjectActionRepository) ListByProject(userID string, projectID string) []models.ProjectAction {
	query := repo.database.
		Where("project_id = ? AND project_id IN (?)", projectID, repo.ownedProjects(userID)).
		Order("created_at DESC")
	return listOrEmpty[models.ProjectAction](repo.reads, "project_actions.list", userID, query)
}

func (repo *ProjectActionRepository) Create(action *models.ProjectAction) error {
	return repo.database.Create(action).Error
}

func (repo *ProjectActionRepository) Update(userID string, id string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	return affectedOrNotFound(repo.database.Model(&models.ProjectAction{}).
		Where("id = ? AND project_id IN (?)", id, repo.ownedProjects(userID)).
		Updates(fields))
}

func (repo *ProjectActionRepository) Delete(userID string, id string) error {
	return affectedOrNotFound(repo.database.
		Where("id = ? AND project_id IN (?)", id, repo.ownedProjects(userID)).
		Delete(&models.ProjectAction{}))
}

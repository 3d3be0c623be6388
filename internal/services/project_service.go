package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/autonomie/internal/models"
)

type ProjectStore interface {
	ListByUser(userID string) []models.Project
	FindByID(userID string, id string) (models.Project, bool)
	FindOwned(userID string, id string) (models.Project, error)
	ExistsForUser(userID string, id string) (bool, error)
	Create(project *models.Project) error
	Update(userID string, id string, fields map[string]any) error
	Delete(userID string, id string) error
}

type ProjectActionStore interface {
	ListByProject(userID string, projectID string) []models.ProjectAction
	Create(action *models.ProjectAction) error
	Update(userID string, id string, fields map[string]any) error
	Delete(userID string, id string) error
}

type ProjectService struct {
	projects ProjectStore
	actions  ProjectActionStore
}

func NewProjectService(projects ProjectStore, actions ProjectActionStore) *ProjectService {
	return &ProjectService{projects: projects, actions: actions}
}

func (service *ProjectService) List(userID string) []models.Project {
	return service.projects.ListByUser(userID)
}

func (service *ProjectService) Get(userID string, id string) *models.Project {
	project, found := service.projects.FindByID(userID, id)
	if !found {
		return nil
	}
	return &project
}

func (service *ProjectService) Create(userID string, input ProjectInput) (string, error) {
	input.Title = trimmed(input.Title)
	if err := validateInput(input); err != nil {
		return "", err
	}

	startDate, endDate, err := projectDates(input.StartDate, input.EndDate)
	if err != nil {
		return "", err
	}
	if err := checkDateOrder(startDate, endDate); err != nil {
		return "", err
	}

	project := models.Project{
		ID:                uuid.NewString(),
		UserID:            userID,
		Title:             input.Title,
		Description:       input.Description,
		Status:            valueOr(input.Status, models.ProjectStatusExploration),
		SatisfactionLevel: input.SatisfactionLevel,
		StartDate:         startDate,
		EndDate:           endDate,
	}
	if err := service.projects.Create(&project); err != nil {
		return "", storageFailure("create project", err)
	}
	return project.ID, nil
}

func (service *ProjectService) Update(userID string, id string, patch ProjectPatch) error {
	patch.Title = trimmedPtr(patch.Title)
	if err := validateInput(patch); err != nil {
		return err
	}

	fields := make(map[string]any)
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.SatisfactionLevel != nil {
		fields["satisfaction_level"] = *patch.SatisfactionLevel
	}

	if patch.StartDate != nil || patch.EndDate != nil {
		current, err := service.projects.FindOwned(userID, id)
		if err != nil {
			return writeResult("load project", err)
		}
		startDate, endDate, err := projectDates(patch.StartDate, patch.EndDate)
		if err != nil {
			return err
		}
		if patch.StartDate == nil {
			startDate = current.StartDate
		}
		if patch.EndDate == nil {
			endDate = current.EndDate
		}
		if err := checkDateOrder(startDate, endDate); err != nil {
			return err
		}
		fields["start_date"] = startDate
		fields["end_date"] = endDate
	}

	return writeResult("update project", service.projects.Update(userID, id, fields))
}

func (service *ProjectService) Delete(userID string, id string) error {
	return writeResult("delete project", service.projects.Delete(userID, id))
}

// ListActions returns nothing for a project the caller does not own.
func (service *ProjectService) ListActions(userID string, projectID string) []models.ProjectAction {
	return service.actions.ListByProject(userID, projectID)
}

func (service *ProjectService) CreateAction(userID string, projectID string, input ProjectActionInput) (string, error) {
	input.Title = trimmed(input.Title)
	if err := validateInput(input); err != nil {
		return "", err
	}
	dueDate, err := optionalDay(input.DueDate)
	if err != nil {
		return "", invalidField("dueDate", err.Error())
	}

	owned, err := service.projects.ExistsForUser(userID, projectID)
	if err != nil {
		return "", storageFailure("check project owner", err)
	}
	if !owned {
		return "", ErrNotFound
	}

	action := models.ProjectAction{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		DueDate:     dueDate,
	}
	if err := service.actions.Create(&action); err != nil {
		return "", storageFailure("create project action", err)
	}
	return action.ID, nil
}

func (service *ProjectService) UpdateAction(userID string, id string, patch ProjectActionPatch) error {
	patch.Title = trimmedPtr(patch.Title)
	if err := validateInput(patch); err != nil {
		return err
	}

	fields := make(map[string]any)
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Completed != nil {
		fields["completed"] = *patch.Completed
	}
	if patch.DueDate != nil {
		dueDate, err := optionalDay(patch.DueDate)
		if err != nil {
			return invalidField("dueDate", err.Error())
		}
		fields["due_date"] = dueDate
	}
	return writeResult("update project action", service.actions.Update(userID, id, fields))
}

func (service *ProjectService) DeleteAction(userID string, id string) error {
	return writeResult("delete project action", service.actions.Delete(userID, id))
}

func projectDates(rawStart *string, rawEnd *string) (*time.Time, *time.Time, error) {
	startDate, err := optionalDay(rawStart)
	if err != nil {
		return nil, nil, invalidField("startDate", err.Error())
	}
	endDate, err := optionalDay(rawEnd)
	if err != nil {
		return nil, nil, invalidField("endDate", err.Error())
	}
	return startDate, endDate, nil
}

func checkDateOrder(startDate *time.Time, endDate *time.Time) error {
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return invalidField("endDate", "must not be before startDate")
	}
	return nil
}

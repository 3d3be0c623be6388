package models

import "time"

const (
	ProjectStatusExploration   = "exploration"
	ProjectStatusProduction    = "production"
	ProjectStatusConsolidation = "consolidation"
	ProjectStatusCompleted     = "completed"
	ProjectStatusPaused        = "paused"
)

const DefaultSatisfactionLevel = 5

type Project struct {
	ID                string     `gorm:"primaryKey;size:64" json:"id"`
	UserID            string     `gorm:"size:64;not null;index" json:"userId"`
	Title             string     `gorm:"size:255;not null" json:"title"`
	Description       string     `json:"description"`
	Status            string     `gorm:"size:16;not null;default:exploration" json:"status"`
	SatisfactionLevel *int       `gorm:"default:5" json:"satisfactionLevel"`
	StartDate         *time.Time `json:"startDate"`
	EndDate           *time.Time `json:"endDate"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// IsActive reports whether the project still occupies a kanban column other than completed or paused.
func (project Project) IsActive() bool {
	return project.Status != ProjectStatusCompleted && project.Status != ProjectStatusPaused
}

type ProjectAction struct {
	ID          string     `gorm:"primaryKey;size:64" json:"id"`
	ProjectID   string     `gorm:"size:64;not null;index" json:"projectId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `json:"description"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func ProjectStatuses() []string {
	return []string{
		ProjectStatusExploration,
		ProjectStatusProduction,
		ProjectStatusConsolidation,
		ProjectStatusCompleted,
		ProjectStatusPaused,
	}
}

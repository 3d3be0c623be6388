package models

import "time"

const (
	CyclePhaseExploration   = "exploration"
	CyclePhaseProduction    = "production"
	CyclePhaseConsolidation = "consolidation"
	CyclePhaseMeta          = "meta"
)

const (
	DefaultCycleLengthDays = 42
	CycleWeeks             = 6
)

type Cycle struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:64;not null;index" json:"userId"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Phase     string    `gorm:"size:16;not null;default:exploration" json:"phase"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WeeklyProgress is keyed by (CycleID, WeekNumber).
type WeeklyProgress struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	UserID        string    `gorm:"size:64;not null;index" json:"userId"`
	CycleID       *string   `gorm:"size:64;uniqueIndex:uidx_weekly_progress_cycle_week" json:"cycleId"`
	WeekNumber    int       `gorm:"not null;uniqueIndex:uidx_weekly_progress_cycle_week" json:"weekNumber"`
	WeekStartDate time.Time `gorm:"not null" json:"weekStartDate"`
	Notes         string    `json:"notes"`
	Deliverables  string    `json:"deliverables"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (WeeklyProgress) TableName() string {
	return "weekly_progress"
}

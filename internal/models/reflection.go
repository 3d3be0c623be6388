package models

import "time"

const DefaultReflectionScore = 5

type QuarterlyReflection struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	UserID          string    `gorm:"size:64;not null;uniqueIndex:uidx_quarterly_reflections_user_quarter" json:"userId"`
	Quarter         string    `gorm:"size:7;not null;uniqueIndex:uidx_quarterly_reflections_user_quarter" json:"quarter"`
	CreateScore     *int      `gorm:"default:5" json:"createScore"`
	TeachScore      *int      `gorm:"default:5" json:"teachScore"`
	EarnScore       *int      `gorm:"default:5" json:"earnScore"`
	AlignmentPhrase string    `json:"alignmentPhrase"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

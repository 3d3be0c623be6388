package models

import "time"

type DailyRoutine struct {
	ID                  string    `gorm:"primaryKey;size:64" json:"id"`
	UserID              string    `gorm:"size:64;not null;uniqueIndex:uidx_daily_routines_user_date" json:"userId"`
	Date                time.Time `gorm:"not null;uniqueIndex:uidx_daily_routines_user_date" json:"date"`
	MorningCompleted    bool      `gorm:"not null;default:false" json:"morningCompleted"`
	BeforeWorkCompleted bool      `gorm:"not null;default:false" json:"beforeWorkCompleted"`
	EndOfDayCompleted   bool      `gorm:"not null;default:false" json:"endOfDayCompleted"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FullyCompleted is true only when all three checklist items are done.
func (routine DailyRoutine) FullyCompleted() bool {
	return routine.MorningCompleted && routine.BeforeWorkCompleted && routine.EndOfDayCompleted
}

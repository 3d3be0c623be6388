package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/autonomie/internal/models"
)

const (
	DefaultRoutineListLimit = 30
	MaxRoutineListLimit     = 365
	WeeklyRoutineWindow     = 7
)

type RoutineStore interface {
	ListRecent(userID string, limit int) []models.DailyRoutine
	FindByDate(userID string, day time.Time) (models.DailyRoutine, bool)
	Upsert(routine *models.DailyRoutine) error
}

type RoutineService struct {
	routines RoutineStore
}

func NewRoutineService(routines RoutineStore) *RoutineService {
	return &RoutineService{routines: routines}
}

// List clamps limit into [1, MaxRoutineListLimit]; zero or less means the default.
func (service *RoutineService) List(userID string, limit int) []models.DailyRoutine {
	switch {
	case limit <= 0:
		limit = DefaultRoutineListLimit
	case limit > MaxRoutineListLimit:
		limit = MaxRoutineListLimit
	}
	return service.routines.ListRecent(userID, limit)
}

func (service *RoutineService) Get(userID string, date string) (*models.DailyRoutine, error) {
	day, err := ParseCalendarDay(date)
	if err != nil {
		return nil, invalidField("date", "must be formatted YYYY-MM-DD")
	}
	routine, found := service.routines.FindByDate(userID, day)
	if !found {
		return nil, nil
	}
	return &routine, nil
}

func (service *RoutineService) Upsert(userID string, input RoutineInput) (models.DailyRoutine, error) {
	if err := validateInput(input); err != nil {
		return models.DailyRoutine{}, err
	}
	day, err := ParseCalendarDay(input.Date)
	if err != nil {
		return models.DailyRoutine{}, invalidField("date", err.Error())
	}

	routine := models.DailyRoutine{
		ID:                  uuid.NewString(),
		UserID:              userID,
		Date:                day,
		MorningCompleted:    input.MorningCompleted,
		BeforeWorkCompleted: input.BeforeWorkCompleted,
		EndOfDayCompleted:   input.EndOfDayCompleted,
		Notes:               input.Notes,
	}
	if err := service.routines.Upsert(&routine); err != nil {
		return models.DailyRoutine{}, storageFailure("upsert daily routine", err)
	}
	return routine, nil
}

package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
)

type CycleStore interface {
	ListByUser(userID string) []models.Cycle
	FindByID(userID string, id string) (models.Cycle, bool)
	FindOwned(userID string, id string) (models.Cycle, error)
	Create(cycle *models.Cycle) error
	Update(userID string, id string, fields map[string]any) error
	Delete(userID string, id string) error
}

type WeeklyProgressStore interface {
	ListByCycle(userID string, cycleID string) []models.WeeklyProgress
	Upsert(progress *models.WeeklyProgress) error
}

type CycleService struct {
	cycles CycleStore
	weeks  WeeklyProgressStore
	clock  Clock
}

func NewCycleService(cycles CycleStore, weeks WeeklyProgressStore, clock Clock) *CycleService {
	return &CycleService{cycles: cycles, weeks: weeks, clock: clock}
}

func (service *CycleService) List(userID string) []models.Cycle {
	return service.cycles.ListByUser(userID)
}

func (service *CycleService) Get(userID string, id string) *models.Cycle {
	cycle, found := service.cycles.FindByID(userID, id)
	if !found {
		return nil
	}
	return &cycle
}

// Active returns the first cycle containing today, or nil.
func (service *CycleService) Active(userID string) *models.Cycle {
	cycle, found := ActiveCycle(service.cycles.ListByUser(userID), service.clock.Today())
	if !found {
		return nil
	}
	return &cycle
}

// Create defaults startDate to today and endDate to a 42-day cycle.
func (service *CycleService) Create(userID string, input CycleInput) (string, error) {
	input.Title = trimmed(input.Title)
	if err := validateInput(input); err != nil {
		return "", err
	}

	startDate := service.clock.Today()
	if input.StartDate != "" {
		parsed, err := ParseCalendarDay(input.StartDate)
		if err != nil {
			return "", invalidField("startDate", err.Error())
		}
		startDate = parsed
	}
	endDate := DefaultCycleEnd(startDate)
	if input.EndDate != "" {
		parsed, err := ParseCalendarDay(input.EndDate)
		if err != nil {
			return "", invalidField("endDate", err.Error())
		}
		endDate = parsed
	}
	if endDate.Before(startDate) {
		return "", invalidField("endDate", "must not be before startDate")
	}

	cycle := models.Cycle{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     input.Title,
		Phase:     valueOr(input.Phase, models.CyclePhaseExploration),
		StartDate: startDate,
		EndDate:   endDate,
		Notes:     input.Notes,
	}
	if err := service.cycles.Create(&cycle); err != nil {
		return "", storageFailure("create cycle", err)
	}
	return cycle.ID, nil
}

func (service *CycleService) Update(userID string, id string, patch CyclePatch) error {
	patch.Title = trimmedPtr(patch.Title)
	if err := validateInput(patch); err != nil {
		return err
	}

	fields := make(map[string]any)
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Phase != nil {
		fields["phase"] = *patch.Phase
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if patch.StartDate != nil || patch.EndDate != nil {
		current, err := service.cycles.FindOwned(userID, id)
		if err != nil {
			return writeResult("load cycle", err)
		}
		startDate, endDate := current.StartDate, current.EndDate
		if patch.StartDate != nil {
			if startDate, err = ParseCalendarDay(*patch.StartDate); err != nil {
				return invalidField("startDate", err.Error())
			}
		}
		if patch.EndDate != nil {
			if endDate, err = ParseCalendarDay(*patch.EndDate); err != nil {
				return invalidField("endDate", err.Error())
			}
		}
		if endDate.Before(startDate) {
			return invalidField("endDate", "must not be before startDate")
		}
		fields["start_date"] = startDate
		fields["end_date"] = endDate
	}

	return writeResult("update cycle", service.cycles.Update(userID, id, fields))
}

func (service *CycleService) Delete(userID string, id string) error {
	return writeResult("delete cycle", service.cycles.Delete(userID, id))
}

func (service *CycleService) ListWeeks(userID string, cycleID string) []models.WeeklyProgress {
	return service.weeks.ListByCycle(userID, cycleID)
}

// UpsertWeek stores the progress of one week. Without an explicit
// weekStartDate the week starts (week-1)*7 days after the cycle.
func (service *CycleService) UpsertWeek(userID string, cycleID string, input WeeklyProgressInput) (models.WeeklyProgress, error) {
	if err := validateInput(input); err != nil {
		return models.WeeklyProgress{}, err
	}

	cycle, err := service.cycles.FindOwned(userID, cycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WeeklyProgress{}, ErrNotFound
		}
		return models.WeeklyProgress{}, storageFailure("load cycle", err)
	}

	weekStart := WeekStartDate(cycle.StartDate, input.WeekNumber)
	if input.WeekStartDate != "" {
		if weekStart, err = ParseCalendarDay(input.WeekStartDate); err != nil {
			return models.WeeklyProgress{}, invalidField("weekStartDate", err.Error())
		}
	}

	progress := models.WeeklyProgress{
		ID:            uuid.NewString(),
		UserID:        userID,
		CycleID:       &cycle.ID,
		WeekNumber:    input.WeekNumber,
		WeekStartDate: weekStart,
		Notes:         input.Notes,
		Deliverables:  input.Deliverables,
	}
	if err := service.weeks.Upsert(&progress); err != nil {
		return models.WeeklyProgress{}, storageFailure("upsert weekly progress", err)
	}
	return progress, nil
}

// CurrentWeek reports the cycle week containing today, or 0 when the cycle
// is not active.
func (service *CycleService) CurrentWeek(cycle models.Cycle) int {
	today := service.clock.Today()
	if !IsCycleActive(cycle, today) {
		return 0
	}
	return CurrentCycleWeek(cycle, today)
}

package services

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/autonomie/internal/models"
)

type ReflectionStore interface {
	ListByUser(userID string) []models.QuarterlyReflection
	FindByQuarter(userID string, quarter string) (models.QuarterlyReflection, bool)
	Upsert(reflection *models.QuarterlyReflection) error
}

type ReflectionService struct {
	reflections ReflectionStore
	clock       Clock
}

func NewReflectionService(reflections ReflectionStore, clock Clock) *ReflectionService {
	return &ReflectionService{reflections: reflections, clock: clock}
}

func (service *ReflectionService) List(userID string) []models.QuarterlyReflection {
	return service.reflections.ListByUser(userID)
}

func (service *ReflectionService) Get(userID string, quarter string) (*models.QuarterlyReflection, error) {
	if err := ValidateQuarterKey(quarter); err != nil {
		return nil, err
	}
	reflection, found := service.reflections.FindByQuarter(userID, quarter)
	if !found {
		return nil, nil
	}
	return &reflection, nil
}

func (service *ReflectionService) CurrentQuarter() string {
	return QuarterKey(service.clock.Today())
}

func (service *ReflectionService) Upsert(userID string, input ReflectionInput) (models.QuarterlyReflection, error) {
	if err := validateInput(input); err != nil {
		return models.QuarterlyReflection{}, err
	}

	reflection := models.QuarterlyReflection{
		ID:              uuid.NewString(),
		UserID:          userID,
		Quarter:         input.Quarter,
		CreateScore:     input.CreateScore,
		TeachScore:      input.TeachScore,
		EarnScore:       input.EarnScore,
		AlignmentPhrase: input.AlignmentPhrase,
		Notes:           input.Notes,
	}
	if err := service.reflections.Upsert(&reflection); err != nil {
		return models.QuarterlyReflection{}, storageFailure("upsert quarterly reflection", err)
	}
	return reflection, nil
}

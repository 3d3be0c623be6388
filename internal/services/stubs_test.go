package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/autonomie/internal/models"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("database is locked")

func fixedClock(now time.Time) Clock {
	return Clock{Now: func() time.Time { return now }, Location: time.UTC}
}

type stubGoalStore struct {
	goals       []models.FinancialGoal
	upserted    []models.FinancialGoal
	withActuals []bool
	err         error
}

func (stub *stubGoalStore) ListByUser(string) []models.FinancialGoal { return stub.goals }

func (stub *stubGoalStore) FindByMonth(_ string, month string) (models.FinancialGoal, bool) {
	for _, goal := range stub.goals {
		if goal.CurrentMonth == month {
			return goal, true
		}
	}
	return models.FinancialGoal{}, false
}

func (stub *stubGoalStore) Upsert(goal *models.FinancialGoal, withActualRevenue bool) error {
	if stub.err != nil {
		return stub.err
	}
	stub.upserted = append(stub.upserted, *goal)
	stub.withActuals = append(stub.withActuals, withActualRevenue)
	return nil
}

type stubRevenueStore struct {
	created   []models.RevenueSource
	updates   map[string]map[string]any
	inRange   []models.RevenueSource
	updateErr error
}

func (stub *stubRevenueStore) ListByUser(string) []models.RevenueSource { return stub.created }
func (stub *stubRevenueStore) ListByUserInRange(string, time.Time, time.Time) []models.RevenueSource {
	return stub.inRange
}
func (stub *stubRevenueStore) FindByID(string, string) (models.RevenueSource, bool) {
	return models.RevenueSource{}, false
}
func (stub *stubRevenueStore) Create(entry *models.RevenueSource) error {
	stub.created = append(stub.created, *entry)
	return nil
}
func (stub *stubRevenueStore) Update(_ string, id string, fields map[string]any) error {
	if stub.updateErr != nil {
		return stub.updateErr
	}
	if stub.updates == nil {
		stub.updates = make(map[string]map[string]any)
	}
	stub.updates[id] = fields
	return nil
}
func (stub *stubRevenueStore) Delete(string, string) error { return gorm.ErrRecordNotFound }

type stubExpenseStore struct {
	created []models.Expense
	inRange []models.Expense
}

func (stub *stubExpenseStore) ListByUser(string) []models.Expense { return stub.created }
func (stub *stubExpenseStore) ListByUserInRange(string, time.Time, time.Time) []models.Expense {
	return stub.inRange
}
func (stub *stubExpenseStore) FindByID(string, string) (models.Expense, bool) {
	return models.Expense{}, false
}
func (stub *stubExpenseStore) Create(entry *models.Expense) error {
	stub.created = append(stub.created, *entry)
	return nil
}
func (stub *stubExpenseStore) Update(string, string, map[string]any) error { return nil }
func (stub *stubExpenseStore) Delete(string, string) error                 { return nil }

type stubProjectStore struct {
	projects  map[string]models.Project
	created   []models.Project
	existsErr error
	findErr   error
}

func (stub *stubProjectStore) ListByUser(string) []models.Project {
	result := make([]models.Project, 0, len(stub.projects))
	for _, project := range stub.projects {
		result = append(result, project)
	}
	return result
}
func (stub *stubProjectStore) FindByID(userID string, id string) (models.Project, bool) {
	project, ok := stub.projects[id]
	if !ok || project.UserID != userID {
		return models.Project{}, false
	}
	return project, true
}
func (stub *stubProjectStore) FindOwned(userID string, id string) (models.Project, error) {
	if stub.findErr != nil {
		return models.Project{}, stub.findErr
	}
	project, found := stub.FindByID(userID, id)
	if !found {
		return models.Project{}, gorm.ErrRecordNotFound
	}
	return project, nil
}
func (stub *stubProjectStore) ExistsForUser(userID string, id string) (bool, error) {
	if stub.existsErr != nil {
		return false, stub.existsErr
	}
	_, found := stub.FindByID(userID, id)
	return found, nil
}
func (stub *stubProjectStore) Create(project *models.Project) error {
	stub.created = append(stub.created, *project)
	return nil
}
func (stub *stubProjectStore) Update(userID string, id string, _ map[string]any) error {
	if _, found := stub.FindByID(userID, id); !found {
		return gorm.ErrRecordNotFound
	}
	return nil
}
func (stub *stubProjectStore) Delete(string, string) error { return nil }

type stubActionStore struct {
	created []models.ProjectAction
}

func (stub *stubActionStore) ListByProject(string, string) []models.ProjectAction { return stub.created }
func (stub *stubActionStore) Create(action *models.ProjectAction) error {
	stub.created = append(stub.created, *action)
	return nil
}
func (stub *stubActionStore) Update(string, string, map[string]any) error { return nil }
func (stub *stubActionStore) Delete(string, string) error                 { return nil }

type stubCycleStore struct {
	cycles  map[string]models.Cycle
	created []models.Cycle
}

func (stub *stubCycleStore) ListByUser(string) []models.Cycle { return stub.created }
func (stub *stubCycleStore) FindByID(userID string, id string) (models.Cycle, bool) {
	cycle, err := stub.FindOwned(userID, id)
	return cycle, err == nil
}
func (stub *stubCycleStore) FindOwned(userID string, id string) (models.Cycle, error) {
	cycle, ok := stub.cycles[id]
	if !ok || cycle.UserID != userID {
		return models.Cycle{}, gorm.ErrRecordNotFound
	}
	return cycle, nil
}
func (stub *stubCycleStore) Create(cycle *models.Cycle) error {
	stub.created = append(stub.created, *cycle)
	return nil
}
func (stub *stubCycleStore) Update(string, string, map[string]any) error { return nil }
func (stub *stubCycleStore) Delete(string, string) error                 { return nil }

type stubWeekStore struct {
	upserted []models.WeeklyProgress
}

func (stub *stubWeekStore) ListByCycle(string, string) []models.WeeklyProgress { return stub.upserted }
func (stub *stubWeekStore) Upsert(progress *models.WeeklyProgress) error {
	stub.upserted = append(stub.upserted, *progress)
	return nil
}

type stubUserStore struct {
	users    map[string]models.User
	promoted []string
	upserts  int
}

func newStubUserStore(users ...models.User) *stubUserStore {
	store := &stubUserStore{users: make(map[string]models.User)}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (stub *stubUserStore) CountUsers() (int64, error) { return int64(len(stub.users)), nil }
func (stub *stubUserStore) ExistsByNormalizedEmail(email string) (bool, error) {
	_, err := stub.FindByNormalizedEmail(email)
	return err == nil, nil
}
func (stub *stubUserStore) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range stub.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}
func (stub *stubUserStore) FindByID(userID string) (models.User, error) {
	user, ok := stub.users[userID]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}
func (stub *stubUserStore) List() ([]models.User, error) {
	result := make([]models.User, 0, len(stub.users))
	for _, user := range stub.users {
		result = append(result, user)
	}
	return result, nil
}
func (stub *stubUserStore) Create(user *models.User) error {
	stub.users[user.ID] = *user
	return nil
}
func (stub *stubUserStore) Upsert(user *models.User) error {
	stub.upserts++
	stored := stub.users[user.ID]
	stored.LastSignedIn = user.LastSignedIn
	stored.LoginMethod = user.LoginMethod
	stub.users[user.ID] = stored
	return nil
}
func (stub *stubUserStore) UpdatePassword(userID string, passwordHash string) error {
	user, ok := stub.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PasswordHash = passwordHash
	stub.users[userID] = user
	return nil
}
func (stub *stubUserStore) PromoteToAdmin(userID string) (bool, error) {
	user := stub.users[userID]
	if user.Role == models.RoleAdmin {
		return false, nil
	}
	user.Role = models.RoleAdmin
	stub.users[userID] = user
	stub.promoted = append(stub.promoted, userID)
	return true, nil
}

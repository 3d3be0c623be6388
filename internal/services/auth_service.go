package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/terraincognita07/autonomie/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrEmailTaken = errors.New("email already registered")

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID string) (models.User, error)
	List() ([]models.User, error)
	Create(user *models.User) error
	Upsert(user *models.User) error
	UpdatePassword(userID string, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
	clock Clock
}

func NewAuthService(users AuthUserRepository, clock Clock) *AuthService {
	return &AuthService{users: users, clock: clock}
}

// Register creates a password account with the default user role.
func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateInput(input); err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(input.Password); err != nil {
		return models.User{}, invalidField("password", "must have 8+ characters with upper, lower case and a digit")
	}

	exists, err := service.users.ExistsByNormalizedEmail(input.Email)
	if err != nil {
		return models.User{}, storageFailure("check email", err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	now := service.clock.Now().UTC()
	user := models.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		LoginMethod:  models.LoginMethodPassword,
		Role:         models.RoleUser,
		CreatedAt:    now,
		LastSignedIn: &now,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, storageFailure("create user", err)
	}
	return user, nil
}

// Authenticate checks the credentials and records the sign-in through the
// user upsert.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		return models.User{}, storageFailure("load user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}

	now := service.clock.Now().UTC()
	user.LastSignedIn = &now
	user.LoginMethod = models.LoginMethodPassword
	if err := service.users.Upsert(&user); err != nil {
		return models.User{}, storageFailure("record sign-in", err)
	}
	return user, nil
}

func (service *AuthService) FindByID(userID string) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUnauthorized
		}
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) ListUsers() ([]models.User, error) {
	users, err := service.users.List()
	if err != nil {
		return nil, storageFailure("list users", err)
	}
	return users, nil
}

// SetPassword replaces the password of the account with the given email.
func (service *AuthService) SetPassword(email string, password string) error {
	user, err := service.users.FindByNormalizedEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return storageFailure("load user", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return writeResult("update password", service.users.UpdatePassword(user.ID, string(passwordHash)))
}

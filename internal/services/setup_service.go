package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/autonomie/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SetupUserRepository interface {
	CountUsers() (int64, error)
	FindByNormalizedEmail(email string) (models.User, error)
	PromoteToAdmin(userID string) (bool, error)
}

// SetupService owns the explicit bootstrap steps that run outside request
// handling, such as granting the configured owner the admin role.
type SetupService struct {
	users  SetupUserRepository
	logger *zap.Logger
}

func NewSetupService(users SetupUserRepository, logger *zap.Logger) *SetupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SetupService{users: users, logger: logger.Named("setup")}
}

func (service *SetupService) RequiresInitialSetup() (bool, error) {
	usersCount, err := service.users.CountUsers()
	if err != nil {
		return false, err
	}
	return usersCount == 0, nil
}

// EnsureOwnerAdmin promotes the account registered with email. It is
// idempotent and returns ErrNotFound while that account does not exist yet.
func (service *SetupService) EnsureOwnerAdmin(email string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return false, invalidField("email", "is required")
	}

	user, err := service.users.FindByNormalizedEmail(normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, storageFailure("load owner", err)
	}

	promoted, err := service.users.PromoteToAdmin(user.ID)
	if err != nil {
		return false, storageFailure("promote owner", err)
	}
	if promoted {
		service.logger.Info("owner promoted to admin", zap.String("user_id", user.ID), zap.String("email", normalized))
	} else if user.Role == models.RoleAdmin {
		service.logger.Debug("owner already admin", zap.String("user_id", user.ID))
	}
	return promoted, nil
}

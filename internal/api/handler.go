package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/autonomie/internal/i18n"
	"github.com/terraincognita07/autonomie/internal/services"
	"go.uber.org/zap"
)

// Services bundles the domain services the handlers delegate to.
type Services struct {
	Auth        *services.AuthService
	Finance     *services.FinanceService
	Projects    *services.ProjectService
	Cycles      *services.CycleService
	Reflections *services.ReflectionService
	Routines    *services.RoutineService
	Metrics     *services.MetricsService
}

type Handler struct {
	services     Services
	secretKey    []byte
	cookieSecure bool
	i18n         *i18n.Manager
	logger       *zap.Logger
	loginLimiter *attemptLimiter
}

func NewHandler(deps Services, secretKey string, i18nManager *i18n.Manager, cookieSecure bool, logger *zap.Logger) (*Handler, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("secret key is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}
	if deps.Auth == nil || deps.Finance == nil || deps.Projects == nil || deps.Cycles == nil ||
		deps.Reflections == nil || deps.Routines == nil || deps.Metrics == nil {
		return nil, errors.New("all services are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Handler{
		services:     deps,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		i18n:         i18nManager,
		logger:       logger.Named("api"),
		loginLimiter: newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
	}, nil
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

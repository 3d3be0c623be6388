package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/autonomie/internal/services"
)

type loginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := services.RegisterInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	user, err := handler.services.Auth.Register(input)
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return mutationResult(c, fiber.StatusCreated, user.ID)
}

// Login is throttled per client IP; only failed attempts count.
func (handler *Handler) Login(c *fiber.Ctx) error {
	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.blocked(limiterKey, now) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := loginInput{}
	if err := parseBody(c, &input); err != nil {
		handler.loginLimiter.recordFailure(limiterKey, now)
		return handler.respondError(c, err)
	}

	user, err := handler.services.Auth.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.recordFailure(limiterKey, now)
		}
		return handler.respondError(c, err)
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return mutationResult(c, fiber.StatusOK, user.ID)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(user)
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.services.Auth.ListUsers()
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(users)
}

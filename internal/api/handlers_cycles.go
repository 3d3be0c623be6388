package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/autonomie/internal/models"
	"github.com/terraincognita07/autonomie/internal/services"
)

type cycleView struct {
	models.Cycle
	CurrentWeek int `json:"currentWeek"`
}

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Cycles.List(user.ID))
}

func (handler *Handler) GetCycle(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Cycles.Get(user.ID, c.Params("id")))
}

// GetActiveCycle answers null when no cycle contains today.
func (handler *Handler) GetActiveCycle(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	cycle := handler.services.Cycles.Active(user.ID)
	if cycle == nil {
		return c.JSON(nil)
	}
	return c.JSON(cycleView{Cycle: *cycle, CurrentWeek: handler.services.Cycles.CurrentWeek(*cycle)})
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.CycleInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	id, err := handler.services.Cycles.Create(user.ID, input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusCreated, id)
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	patch := services.CyclePatch{}
	if err := parseBody(c, &patch); err != nil {
		return handler.respondError(c, err)
	}

	id := c.Params("id")
	if err := handler.services.Cycles.Update(user.ID, id, patch); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	id := c.Params("id")
	if err := handler.services.Cycles.Delete(user.ID, id); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

func (handler *Handler) ListWeeklyProgress(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Cycles.ListWeeks(user.ID, c.Params("id")))
}

func (handler *Handler) UpsertWeeklyProgress(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.WeeklyProgressInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil {
		return handler.respondError(c, &services.ValidationError{Field: "weekNumber", Reason: "must be a number"})
	}
	input.WeekNumber = week

	progress, err := handler.services.Cycles.UpsertWeek(user.ID, c.Params("id"), input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, progress.ID)
}

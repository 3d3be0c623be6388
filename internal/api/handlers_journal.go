package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/autonomie/internal/services"
)

func (handler *Handler) ListReflections(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Reflections.List(user.ID))
}

func (handler *Handler) GetReflection(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	reflection, err := handler.services.Reflections.Get(user.ID, c.Params("quarter"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(reflection)
}

func (handler *Handler) UpsertReflection(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.ReflectionInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	input.Quarter = c.Params("quarter")

	reflection, err := handler.services.Reflections.Upsert(user.ID, input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, reflection.ID)
}

func (handler *Handler) ListRoutines(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	limit := c.QueryInt("limit", services.DefaultRoutineListLimit)
	return c.JSON(handler.services.Routines.List(user.ID, limit))
}

func (handler *Handler) GetRoutine(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	routine, err := handler.services.Routines.Get(user.ID, c.Params("date"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(routine)
}

func (handler *Handler) UpsertRoutine(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.RoutineInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	input.Date = c.Params("date")

	routine, err := handler.services.Routines.Upsert(user.ID, input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, routine.ID)
}

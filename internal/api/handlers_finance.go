package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/autonomie/internal/services"
)

func (handler *Handler) ListFinancialGoals(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Finance.ListGoals(user.ID))
}

func (handler *Handler) GetFinancialGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	goal, err := handler.services.Finance.GetGoal(user.ID, c.Params("month"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(goal)
}

func (handler *Handler) UpsertFinancialGoal(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.FinancialGoalInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	goal, err := handler.services.Finance.UpsertGoal(user.ID, c.Params("month"), input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, goal.ID)
}

func (handler *Handler) ListRevenueSources(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Finance.ListRevenueSources(user.ID))
}

func (handler *Handler) GetRevenueSource(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Finance.GetRevenueSource(user.ID, c.Params("id")))
}

func (handler *Handler) CreateRevenueSource(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.RevenueSourceInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	id, err := handler.services.Finance.CreateRevenueSource(user.ID, input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusCreated, id)
}

func (handler *Handler) UpdateRevenueSource(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	patch := services.RevenueSourcePatch{}
	if err := parseBody(c, &patch); err != nil {
		return handler.respondError(c, err)
	}

	id := c.Params("id")
	if err := handler.services.Finance.UpdateRevenueSource(user.ID, id, patch); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

func (handler *Handler) DeleteRevenueSource(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	id := c.Params("id")
	if err := handler.services.Finance.DeleteRevenueSource(user.ID, id); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

func (handler *Handler) ListExpenses(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Finance.ListExpenses(user.ID))
}

func (handler *Handler) GetExpense(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Finance.GetExpense(user.ID, c.Params("id")))
}

func (handler *Handler) CreateExpense(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.ExpenseInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	id, err := handler.services.Finance.CreateExpense(user.ID, input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusCreated, id)
}

func (handler *Handler) UpdateExpense(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	patch := services.ExpensePatch{}
	if err := parseBody(c, &patch); err != nil {
		return handler.respondError(c, err)
	}

	id := c.Params("id")
	if err := handler.services.Finance.UpdateExpense(user.ID, id, patch); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

func (handler *Handler) DeleteExpense(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	id := c.Params("id")
	if err := handler.services.Finance.DeleteExpense(user.ID, id); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

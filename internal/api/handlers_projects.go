package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/autonomie/internal/services"
)

func (handler *Handler) ListProjects(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Projects.List(user.ID))
}

func (handler *Handler) GetProject(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Projects.Get(user.ID, c.Params("id")))
}

func (handler *Handler) CreateProject(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.ProjectInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	id, err := handler.services.Projects.Create(user.ID, input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusCreated, id)
}

func (handler *Handler) UpdateProject(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	patch := services.ProjectPatch{}
	if err := parseBody(c, &patch); err != nil {
		return handler.respondError(c, err)
	}

	id := c.Params("id")
	if err := handler.services.Projects.Update(user.ID, id, patch); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

func (handler *Handler) DeleteProject(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	id := c.Params("id")
	if err := handler.services.Projects.Delete(user.ID, id); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

func (handler *Handler) ListProjectActions(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(handler.services.Projects.ListActions(user.ID, c.Params("id")))
}

func (handler *Handler) CreateProjectAction(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.ProjectActionInput{}
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	id, err := handler.services.Projects.CreateAction(user.ID, c.Params("id"), input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusCreated, id)
}

func (handler *Handler) UpdateProjectAction(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	patch := services.ProjectActionPatch{}
	if err := parseBody(c, &patch); err != nil {
		return handler.respondError(c, err)
	}

	id := c.Params("id")
	if err := handler.services.Projects.UpdateAction(user.ID, id, patch); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

func (handler *Handler) DeleteProjectAction(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	id := c.Params("id")
	if err := handler.services.Projects.DeleteAction(user.ID, id); err != nil {
		return handler.respondError(c, err)
	}
	return mutationResult(c, fiber.StatusOK, id)
}

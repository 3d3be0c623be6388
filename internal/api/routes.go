package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.LanguageMiddleware)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/users", handler.ListUsers)

	goals := api.Group("/financial-goals", handler.AuthRequired)
	goals.Get("", handler.ListFinancialGoals)
	goals.Get("/:month", handler.GetFinancialGoal)
	goals.Put("/:month", handler.UpsertFinancialGoal)

	revenues := api.Group("/revenue-sources", handler.AuthRequired)
	revenues.Get("", handler.ListRevenueSources)
	revenues.Post("", handler.CreateRevenueSource)
	revenues.Get("/:id", handler.GetRevenueSource)
	revenues.Patch("/:id", handler.UpdateRevenueSource)
	revenues.Delete("/:id", handler.DeleteRevenueSource)

	expenses := api.Group("/expenses", handler.AuthRequired)
	expenses.Get("", handler.ListExpenses)
	expenses.Post("", handler.CreateExpense)
	expenses.Get("/:id", handler.GetExpense)
	expenses.Patch("/:id", handler.UpdateExpense)
	expenses.Delete("/:id", handler.DeleteExpense)

	projects := api.Group("/projects", handler.AuthRequired)
	projects.Get("", handler.ListProjects)
	projects.Post("", handler.CreateProject)
	projects.Get("/:id", handler.GetProject)
	projects.Patch("/:id", handler.UpdateProject)
	projects.Delete("/:id", handler.DeleteProject)
	projects.Get("/:id/actions", handler.ListProjectActions)
	projects.Post("/:id/actions", handler.CreateProjectAction)

	actions := api.Group("/project-actions", handler.AuthRequired)
	actions.Patch("/:id", handler.UpdateProjectAction)
	actions.Delete("/:id", handler.DeleteProjectAction)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Get("/active", handler.GetActiveCycle)
	cycles.Get("/:id", handler.GetCycle)
	cycles.Patch("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)
	cycles.Get("/:id/weeks", handler.ListWeeklyProgress)
	cycles.Put("/:id/weeks/:week", handler.UpsertWeeklyProgress)

	reflections := api.Group("/reflections", handler.AuthRequired)
	reflections.Get("", handler.ListReflections)
	reflections.Get("/:quarter", handler.GetReflection)
	reflections.Put("/:quarter", handler.UpsertReflection)

	routines := api.Group("/routines", handler.AuthRequired)
	routines.Get("", handler.ListRoutines)
	routines.Get("/:date", handler.GetRoutine)
	routines.Put("/:date", handler.UpsertRoutine)

	api.Get("/overview", handler.AuthRequired, handler.GetOverview)
	api.Get("/analytics", handler.AuthRequired, handler.GetAnalytics)
}

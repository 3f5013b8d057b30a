package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	clients := api.Group("/clients", handler.AuthRequired)
	clients.Get("", handler.ListClients)
	clients.Post("", handler.CreateClient)
	clients.Get("/:id", handler.GetClient)
	clients.Post("/:id/therapists", handler.AssignTherapist)
	clients.Post("/:id/caregivers", handler.LinkCaregiver)
	clients.Get("/:id/goals", handler.ListGoals)
	clients.Post("/:id/goals", handler.CreateGoal)
	clients.Get("/:id/sessions", handler.ListSessionNotes)
	clients.Post("/:id/sessions", handler.CreateSessionNote)
	clients.Get("/:id/homework", handler.ListHomework)
	clients.Post("/:id/homework", handler.CreateHomework)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Patch("/:id/progress", handler.UpdateGoalProgress)

	homework := api.Group("/homework", handler.AuthRequired)
	homework.Patch("/:id/status", handler.UpdateHomeworkStatus)

	directory := api.Group("", handler.AuthRequired)
	directory.Get("/therapists", handler.ListTherapists)
	directory.Get("/caregivers", handler.ListCaregivers)
}

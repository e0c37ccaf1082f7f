package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh", handler.Refresh)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	templates := api.Group("/templates", handler.AuthRequired)
	templates.Get("", handler.ListTemplates)
	templates.Post("", handler.CreateTemplate)
	templates.Put("/:id", handler.UpdateTemplate)
	templates.Delete("/:id", handler.DeleteTemplate)

	overrides := api.Group("/overrides", handler.AuthRequired)
	overrides.Get("", handler.ListOverrides)
	overrides.Put("/:date", handler.UpsertOverride)
	overrides.Delete("/:date", handler.DeleteOverride)

	slots := api.Group("/slots", handler.AuthRequired)
	slots.Get("", handler.ListSlots)
	slots.Post("", handler.CreateSlot)
	slots.Put("/:id", handler.UpdateSlot)
	slots.Delete("/:id", handler.DeleteSlot)

	availability := api.Group("/availability", handler.AuthRequired)
	availability.Get("/day/:date", handler.ResolveDay)
	availability.Get("/range", handler.ResolveRange)

	api.Get("/categories", handler.AuthRequired, handler.ListCategories)
}

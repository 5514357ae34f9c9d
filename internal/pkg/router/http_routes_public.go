package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/controllers"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get("/health", controllers.HandleHealth)

	app.Post("/login", controllers.HandleLogin)
	app.Post("/logout", controllers.HandleLogout)
}

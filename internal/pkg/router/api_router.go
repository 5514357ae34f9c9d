package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/onespirit/onespirit/app/controllers"
	"github.com/onespirit/onespirit/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1", middleware.RequireAuth)

	v1.Get("/me", controllers.HandleGetMe)

	// Current tenant
	v1.Get("/tenant/stats", controllers.HandleGetTenantStats)

	// Contacts
	v1.Get("/contacts", controllers.HandleListContacts)
	v1.Post("/contacts", controllers.HandleCreateContact)
	v1.Get("/contacts/:id", controllers.HandleGetContact)
	v1.Put("/contacts/:id", controllers.HandleUpdateContact)
	v1.Delete("/contacts/:id", controllers.HandleDeleteContact)

	// Member accounts
	v1.Get("/members", controllers.HandleListMembers)
	v1.Get("/members/expiring", controllers.HandleListExpiringMembers)
	v1.Post("/members", controllers.HandleCreateMember)
	v1.Get("/members/:id", controllers.HandleGetMember)
	v1.Put("/members/:id", controllers.HandleUpdateMember)
	v1.Delete("/members/:id", controllers.HandleDeleteMember)

	// Clubs
	v1.Get("/clubs", controllers.HandleListClubs)
	v1.Post("/clubs", controllers.HandleCreateClub)
	v1.Get("/clubs/:id", controllers.HandleGetClub)
	v1.Put("/clubs/:id", controllers.HandleUpdateClub)
	v1.Delete("/clubs/:id", controllers.HandleDeleteClub)

	// Club staff
	v1.Get("/clubs/:clubID/staff", controllers.HandleListClubStaff)
	v1.Post("/clubs/:clubID/staff", controllers.HandleCreateClubStaff)
	v1.Get("/staff/:id", controllers.HandleGetClubStaff)
	v1.Put("/staff/:id", controllers.HandleUpdateClubStaff)
	v1.Delete("/staff/:id", controllers.HandleDeleteClubStaff)

	// Club memberships
	v1.Get("/clubs/:clubID/members", controllers.HandleListClubMembers)
	v1.Post("/clubs/:clubID/members", controllers.HandleCreateClubMember)
	v1.Get("/club-members/:id", controllers.HandleGetClubMember)
	v1.Put("/club-members/:id", controllers.HandleUpdateClubMember)
	v1.Delete("/club-members/:id", controllers.HandleDeleteClubMember)

	// Club affiliations
	v1.Get("/affiliations", controllers.HandleListAffiliations)
	v1.Post("/affiliations", controllers.HandleCreateAffiliation)
	v1.Get("/affiliations/:id", controllers.HandleGetAffiliation)
	v1.Delete("/affiliations/:id", controllers.HandleDeleteAffiliation)

	// Payment history
	v1.Get("/payments", controllers.HandleListPayments)
	v1.Post("/payments", controllers.HandleCreatePayment)
	v1.Get("/payments/:id", controllers.HandleGetPayment)
	v1.Put("/payments/:id", controllers.HandleUpdatePayment)
	v1.Delete("/payments/:id", controllers.HandleDeletePayment)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

package usercontext

import "github.com/gofiber/fiber/v2"

// UserContext represents the acting user for a request
type UserContext struct {
	ProfileID        uint   `json:"profile_id"`
	ContactID        uint   `json:"contact_id"`
	Email            string `json:"email"`
	IsLoggedIn       bool   `json:"is_logged_in"`
	IsAdmin          bool   `json:"is_admin"`
	IsSuperuser      bool   `json:"is_superuser"`
	PermissionsLevel string `json:"permissions_level"`
}

// GetUserContext retrieves the user context from fiber context
// Returns a default anonymous context if none is set
func GetUserContext(c *fiber.Ctx) UserContext {
	if ctx := c.Locals(KeyUserLocal); ctx != nil {
		return ctx.(UserContext)
	}
	return UserContext{IsLoggedIn: false, IsAdmin: false}
}

// SetUserContext stores the user context in fiber Locals
func SetUserContext(c *fiber.Ctx, uc UserContext) {
	c.Locals(KeyUserLocal, uc)
}

// IsLoggedIn checks if the current user is logged in
func IsLoggedIn(c *fiber.Ctx) bool {
	return GetUserContext(c).IsLoggedIn
}

// IsAdmin checks if the current user is a system administrator
func IsAdmin(c *fiber.Ctx) bool {
	return GetUserContext(c).IsAdmin
}

// GetProfileID returns the current user's profile ID, or 0 if not logged in
func GetProfileID(c *fiber.Ctx) uint {
	return GetUserContext(c).ProfileID
}

// GetContactID returns the contact linked to the current user, or 0
func GetContactID(c *fiber.Ctx) uint {
	return GetUserContext(c).ContactID
}

package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/onespirit/onespirit/app/repository"
	"github.com/onespirit/onespirit/internal/pkg/session"
	"github.com/onespirit/onespirit/internal/pkg/usercontext"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates a user profile by email and password and stores
// the identity in the session.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	repo := repository.GetGlobalFactory().GetUserProfileRepository()
	profile, err := repo.GetByEmail(req.Email)
	if err != nil {
		// notice: in production you should not inform the user
		// with detailed messages about login failures
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "unauthorized",
				"message": "There is a problem with the login process",
			})
		}
		return respondError(c, err)
	}

	if !profile.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "There is a problem with the login process",
		})
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return respondError(c, err)
	}
	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyProfileID, profile.ID)
	sess.Set(usercontext.KeyEmail, profile.Email)
	sess.Set(usercontext.KeyIsAdmin, profile.IsSystemAdmin())
	if err := sess.Save(); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":                profile.ID,
		"email":             profile.Email,
		"contact_id":        profile.ContactID,
		"is_admin":          profile.IsSystemAdmin(),
		"permissions_level": profile.PermissionsLevel,
	})
}

// HandleLogout destroys the session, dropping the tenant selection with it.
func HandleLogout(c *fiber.Ctx) error {
	if err := session.DestroySession(c); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// HandleGetMe returns the authenticated user's profile.
func HandleGetMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "unauthorized",
			"message": "Missing or invalid authentication",
		})
	}

	repo := repository.GetGlobalFactory().GetUserProfileRepository()
	profile, err := repo.GetByID(userCtx.ProfileID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":                profile.ID,
		"email":             profile.Email,
		"contact_id":        profile.ContactID,
		"contact":           profile.Contact,
		"is_superuser":      profile.IsSuperuser,
		"is_admin":          profile.IsSystemAdmin(),
		"is_club_owner":     profile.IsClubOwner,
		"permissions_level": profile.PermissionsLevel,
	})
}

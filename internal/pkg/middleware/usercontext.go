package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onespirit/onespirit/app/repository"
	"github.com/onespirit/onespirit/internal/pkg/session"
	"github.com/onespirit/onespirit/internal/pkg/tenantctx"
	"github.com/onespirit/onespirit/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request
// This centralizes user session handling and eliminates code duplication
func UserContextMiddleware(c *fiber.Ctx) error {
	// Get session with error handling
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: set as anonymous user
		setAnonymous(c)
		return c.Next()
	}

	// Get profile ID from session
	profileID := sess.Get(usercontext.KeyProfileID)
	if profileID == nil {
		// Anonymous user - no session data
		setAnonymous(c)
		return c.Next()
	}

	id, ok := profileID.(uint)
	if !ok {
		setAnonymous(c)
		return c.Next()
	}

	// Load the full profile so downstream filters see current flags, not the
	// ones captured at login time.
	profile, err := repository.GetGlobalFactory().GetUserProfileRepository().GetByID(id)
	if err != nil {
		// Stale session pointing at a deleted profile
		setAnonymous(c)
		return c.Next()
	}

	userCtx := usercontext.UserContext{
		ProfileID:        profile.ID,
		ContactID:        profile.ContactID,
		Email:            profile.Email,
		IsLoggedIn:       true,
		IsAdmin:          profile.IsSystemAdmin(),
		IsSuperuser:      profile.IsSuperuser,
		PermissionsLevel: profile.PermissionsLevel,
	}
	usercontext.SetUserContext(c, userCtx)
	c.Locals(usercontext.KeyProfileID, profile.ID)
	c.Locals(usercontext.KeyIsAdmin, userCtx.IsAdmin)

	// Attach the acting user to the request context so repository-level
	// filters (staff visibility) can see who is asking.
	c.SetUserContext(tenantctx.WithActor(c.UserContext(), profile))

	return c.Next()
}

func setAnonymous(c *fiber.Ctx) {
	usercontext.SetUserContext(c, usercontext.UserContext{
		IsLoggedIn: false,
		IsAdmin:    false,
	})
	c.Locals(usercontext.KeyIsAdmin, false)
}

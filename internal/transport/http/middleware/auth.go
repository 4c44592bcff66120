package middleware

import (
	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/session"
	"lightweight-feedback-system/pkg/bearer"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const userLocal = "user"

// Sessions is the part of the session store the gate needs.
type Sessions interface {
	Load(c *fiber.Ctx) (*session.Auth, error)
}

// RequireAuth redirects anonymous visitors to /login. Signed-in requests get
// the bearer token on their user context and the user in locals.
func RequireAuth(log *zap.SugaredLogger, sessions Sessions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth, err := sessions.Load(c)
		if err != nil {
			log.Errorw("failed to load session", "error", err, "path", c.Path())
		}
		if auth == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		c.SetUserContext(bearer.WithToken(c.UserContext(), auth.Token))
		c.Locals(userLocal, auth.User)
		return c.Next()
	}
}

// RequireRole redirects users of another role to /dashboard. Must run after RequireAuth.
func RequireRole(role entities.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		if user.Role != role {
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *fiber.Ctx) (entities.User, bool) {
	user, ok := c.Locals(userLocal).(entities.User)
	return user, ok
}

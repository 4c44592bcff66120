package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/mapper"
	"lightweight-feedback-system/internal/transport/http/middleware"
	"lightweight-feedback-system/internal/transport/http/views"

	"github.com/gofiber/fiber/v2"
)

const (
	msgGenericFailure = "Something went wrong. Please try again."
	msgNotFound       = "The requested item was not found."
)

// inlineRender re-renders the current form with msg shown inline.
type inlineRender func(status int, msg string) error

// writeError turns a use-case error into a response. Expired sessions are
// logged out, role violations go back to /dashboard, input problems are
// shown inline via render and everything else gets the error page.
func (h *Handler) writeError(c *fiber.Ctx, err error, render inlineRender) error {
	switch {
	case errors.Is(err, entities.ErrUnauthorized):
		return h.forceLogout(c)
	case errors.Is(err, entities.ErrForbidden):
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	case errors.Is(err, entities.ErrInvalidArgument) && render != nil:
		return render(http.StatusBadRequest, entities.UserMessage(err, msgGenericFailure))
	case errors.Is(err, entities.ErrInvalidArgument):
		return h.renderError(c, http.StatusBadRequest, entities.UserMessage(err, msgGenericFailure))
	case errors.Is(err, entities.ErrNotFound):
		return h.renderError(c, http.StatusNotFound, entities.UserMessage(err, msgNotFound))
	default:
		if render != nil {
			return render(http.StatusBadGateway, msgGenericFailure)
		}
		return h.renderError(c, http.StatusBadGateway, msgGenericFailure)
	}
}

func (h *Handler) forceLogout(c *fiber.Ctx) error {
	if err := h.sessions.Clear(c); err != nil {
		h.log.Errorw("failed to clear session", "error", err)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (h *Handler) renderError(c *fiber.Ctx, status int, msg string) error {
	page := mapper.ErrorPage{Layout: mapper.Layout{Title: "Error"}, Status: status, Message: msg}
	if user, ok := middleware.CurrentUser(c); ok {
		uv := mapper.ToUserView(user)
		page.User = &uv
	}
	return c.Status(status).Render("error", page, views.Layout)
}

// queryID reads a positive integer query parameter; absent or malformed values yield 0.
func queryID(c *fiber.Ctx, key string) int {
	id, err := strconv.Atoi(c.Query(key))
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// formID reads an optional positive integer form field.
func formID(c *fiber.Ctx, key string) int {
	id, err := strconv.Atoi(strings.TrimSpace(c.FormValue(key)))
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func paramID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, entities.NewValidationError("Invalid feedback id")
	}
	return id, nil
}

// safeReturn only follows redirects back into the manager dashboard.
func safeReturn(target string) string {
	if target == "/manager" || strings.HasPrefix(target, "/manager?") {
		return target
	}
	return "/manager"
}

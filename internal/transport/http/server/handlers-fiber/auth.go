package handlers_fiber

import (
	"errors"
	"net/http"
	"strings"

	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/mapper"
	"lightweight-feedback-system/internal/transport/http/middleware"
	"lightweight-feedback-system/internal/transport/http/views"
	"lightweight-feedback-system/internal/usecase/domain"

	"github.com/gofiber/fiber/v2"
)

// GetLogin renders the sign-in form, or the signup form with ?mode=signup.
func (h *Handler) GetLogin(c *fiber.Ctx) error {
	if auth, _ := h.sessions.Load(c); auth != nil {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	}
	signup := c.Query("mode") == "signup"
	return h.renderLogin(c, http.StatusOK, h.loginPage(c, signup))
}

// PostLogin exchanges the username for a session.
func (h *Handler) PostLogin(c *fiber.Ctx) error {
	req := entities.LoginRequest{Username: c.FormValue("username")}

	sess, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		page := h.loginPage(c, false)
		page.Username = strings.TrimSpace(req.Username)
		page.Error = entities.UserMessage(err, domain.MsgLoginFailedFallback)
		return h.renderLogin(c, loginStatus(err), page)
	}
	return h.signIn(c, sess)
}

// PostSignup registers an account and signs it in.
func (h *Handler) PostSignup(c *fiber.Ctx) error {
	req := entities.RegisterRequest{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Role:     entities.Role(strings.TrimSpace(c.FormValue("role"))),
	}
	if id := formID(c, "manager_id"); id > 0 {
		req.ManagerID = &id
	}

	sess, err := h.uc.Register(c.UserContext(), req)
	if err != nil {
		form := mapper.SignupForm{
			Username: strings.TrimSpace(req.Username),
			Email:    strings.TrimSpace(req.Email),
			Role:     string(req.Role),
		}
		if req.ManagerID != nil {
			form.ManagerID = *req.ManagerID
		}
		managers := h.managers(c)
		page := mapper.NewLoginPage(true, managers)
		page.Form = form
		page.Managers = mapper.ToTeamMembers(managers, form.ManagerID)
		page.Error = entities.UserMessage(err, domain.MsgRegisterFailedFallback)
		return h.renderLogin(c, loginStatus(err), page)
	}
	return h.signIn(c, sess)
}

// PostLogout drops the session.
func (h *Handler) PostLogout(c *fiber.Ctx) error {
	if err := h.sessions.Clear(c); err != nil {
		h.log.Errorw("failed to clear session", "error", err)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// GetDashboard sends the signed-in user to the dashboard of their role.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	if user.IsManager() {
		return c.Redirect("/manager", fiber.StatusSeeOther)
	}
	return c.Redirect("/employee", fiber.StatusSeeOther)
}

func (h *Handler) signIn(c *fiber.Ctx, sess *entities.Session) error {
	if err := h.sessions.Save(c, sess); err != nil {
		h.log.Errorw("failed to save session", "user_id", sess.User.ID, "error", err)
		return h.renderError(c, http.StatusInternalServerError, msgGenericFailure)
	}
	h.log.Infow("user signed in", "user_id", sess.User.ID, "role", sess.User.Role)
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

func (h *Handler) loginPage(c *fiber.Ctx, signup bool) mapper.LoginPage {
	if !signup {
		return mapper.NewLoginPage(false, nil)
	}
	return mapper.NewLoginPage(true, h.managers(c))
}

// managers loads the signup manager list; failures leave it empty.
func (h *Handler) managers(c *fiber.Ctx) []entities.User {
	list, err := h.uc.Managers(c.UserContext())
	if err != nil {
		h.log.Warnw("manager list unavailable", "error", err)
		return nil
	}
	return list
}

func (h *Handler) renderLogin(c *fiber.Ctx, status int, page mapper.LoginPage) error {
	return c.Status(status).Render("login", page, views.Layout)
}

// loginStatus picks the status for a rejected sign-in. A 401 here is a bad
// username, not an expired session.
func loginStatus(err error) int {
	var apiErr *entities.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		return apiErr.Status
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, entities.ErrUnauthorized):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

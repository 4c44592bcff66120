// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/session"
	"lightweight-feedback-system/internal/transport/http/middleware"
	"lightweight-feedback-system/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionStore persists the signed-in user between requests.
type SessionStore interface {
	middleware.Sessions
	Save(c *fiber.Ctx, auth *entities.Session) error
	Clear(c *fiber.Ctx) error
}

var _ SessionStore = (*session.Store)(nil)

// Handler renders the web pages using service layer interfaces.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	sessions SessionStore
}

// NewHandler constructs the page handlers with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, sessions SessionStore) *Handler {
	return &Handler{
		log:      log.Named("http"),
		uc:       usecase,
		sessions: sessions,
	}
}

// Register mounts every page route on r.
func (h *Handler) Register(r fiber.Router) {
	authed := middleware.RequireAuth(h.log, h.sessions)

	r.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard", fiber.StatusSeeOther)
	})
	r.Get("/login", h.GetLogin)
	r.Post("/login", h.PostLogin)
	r.Post("/signup", h.PostSignup)
	r.Post("/logout", h.PostLogout)
	r.Get("/dashboard", authed, h.GetDashboard)

	manager := r.Group("/manager", authed, middleware.RequireRole(entities.RoleManager))
	manager.Get("/", h.GetManagerDashboard)
	manager.Post("/feedback", h.PostCreateFeedback)
	manager.Post("/feedback/:id", h.PostUpdateFeedback)

	employee := r.Group("/employee", authed, middleware.RequireRole(entities.RoleEmployee))
	employee.Get("/", h.GetEmployeeDashboard)
	employee.Post("/feedback/:id/acknowledge", h.PostAcknowledgeFeedback)
}

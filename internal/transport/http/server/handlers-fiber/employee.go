package handlers_fiber

import (
	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/mapper"
	"lightweight-feedback-system/internal/transport/http/middleware"
	"lightweight-feedback-system/internal/transport/http/views"

	"github.com/gofiber/fiber/v2"
)

// GetEmployeeDashboard renders the signed-in employee's feedback timeline.
func (h *Handler) GetEmployeeDashboard(c *fiber.Ctx) error {
	page, err := h.employeePage(c)
	if err != nil {
		return h.writeError(c, err, nil)
	}
	return c.Render("employee", page, views.Layout)
}

// PostAcknowledgeFeedback marks one entry as read.
func (h *Handler) PostAcknowledgeFeedback(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err == nil {
		err = h.uc.AcknowledgeFeedback(c.UserContext(), id)
	}
	if err != nil {
		return h.writeError(c, err, func(status int, msg string) error {
			page, loadErr := h.employeePage(c)
			if loadErr != nil {
				return h.writeError(c, loadErr, nil)
			}
			page.Error = msg
			return c.Status(status).Render("employee", page, views.Layout)
		})
	}

	h.log.Infow("feedback acknowledged", "feedback_id", id)
	return c.Redirect("/employee", fiber.StatusSeeOther)
}

func (h *Handler) employeePage(c *fiber.Ctx) (mapper.EmployeePage, error) {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return mapper.EmployeePage{}, entities.ErrUnauthorized
	}
	dash, err := h.uc.EmployeeDashboard(c.UserContext())
	if err != nil {
		return mapper.EmployeePage{}, err
	}
	return mapper.NewEmployeePage(dash, viewer), nil
}

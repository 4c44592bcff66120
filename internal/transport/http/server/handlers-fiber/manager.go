package handlers_fiber

import (
	"net/url"
	"strconv"

	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/mapper"
	"lightweight-feedback-system/internal/transport/http/middleware"
	"lightweight-feedback-system/internal/transport/http/views"

	"github.com/gofiber/fiber/v2"
)

// GetManagerDashboard renders the team dashboard.
func (h *Handler) GetManagerDashboard(c *fiber.Ctx) error {
	employeeID := queryID(c, "employee")
	editingID := queryID(c, "edit")
	showForm := c.Query("new") == "1"

	page, _, err := h.managerPage(c, employeeID, editingID, showForm)
	if err != nil {
		return h.writeError(c, err, nil)
	}
	return c.Render("manager", page, views.Layout)
}

// PostCreateFeedback submits the create modal.
func (h *Handler) PostCreateFeedback(c *fiber.Ctx) error {
	req := entities.FeedbackCreate{
		EmployeeID:   formID(c, "employee_id"),
		Strengths:    c.FormValue("strengths"),
		Improvements: c.FormValue("improvements"),
		Sentiment:    entities.Sentiment(c.FormValue("sentiment")),
	}

	fb, err := h.uc.CreateFeedback(c.UserContext(), req)
	if err != nil {
		return h.writeError(c, err, func(status int, msg string) error {
			page, dash, loadErr := h.managerPage(c, 0, 0, true)
			if loadErr != nil {
				return h.writeError(c, loadErr, nil)
			}
			page.Form = mapper.NewFeedbackForm(dash.Team, req.Normalize())
			page.Error = msg
			return c.Status(status).Render("manager", page, views.Layout)
		})
	}

	h.log.Infow("feedback created", "feedback_id", fb.ID, "employee_id", fb.EmployeeID)
	return c.Redirect("/manager?employee="+strconv.Itoa(fb.EmployeeID), fiber.StatusSeeOther)
}

// PostUpdateFeedback saves an inline edit.
func (h *Handler) PostUpdateFeedback(c *fiber.Ctx) error {
	returnTo := safeReturn(c.FormValue("return_to"))
	id, err := paramID(c)
	if err != nil {
		return h.writeError(c, err, nil)
	}

	strengths := c.FormValue("strengths")
	improvements := c.FormValue("improvements")
	sentiment := entities.Sentiment(c.FormValue("sentiment"))
	req := entities.FeedbackUpdate{
		Strengths:    &strengths,
		Improvements: &improvements,
		Sentiment:    &sentiment,
	}

	if _, err := h.uc.UpdateFeedback(c.UserContext(), id, req); err != nil {
		return h.writeError(c, err, func(status int, msg string) error {
			page, _, loadErr := h.managerPage(c, returnEmployee(returnTo), id, false)
			if loadErr != nil {
				return h.writeError(c, loadErr, nil)
			}
			page.Error = msg
			return c.Status(status).Render("manager", page, views.Layout)
		})
	}

	h.log.Infow("feedback updated", "feedback_id", id)
	return c.Redirect(returnTo, fiber.StatusSeeOther)
}

func (h *Handler) managerPage(c *fiber.Ctx, employeeID, editingID int, showForm bool) (mapper.ManagerPage, *entities.ManagerDashboard, error) {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return mapper.ManagerPage{}, nil, entities.ErrUnauthorized
	}
	dash, err := h.uc.ManagerDashboard(c.UserContext(), employeeID)
	if err != nil {
		return mapper.ManagerPage{}, nil, err
	}
	return mapper.NewManagerPage(dash, viewer, editingID, showForm), dash, nil
}

// returnEmployee extracts the employee filter from a /manager return path.
func returnEmployee(returnTo string) int {
	u, err := url.Parse(returnTo)
	if err != nil {
		return 0
	}
	id, err := strconv.Atoi(u.Query().Get("employee"))
	if err != nil || id < 0 {
		return 0
	}
	return id
}

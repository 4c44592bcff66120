package views

import (
	"bytes"
	"io"
	"testing"
	"time"

	"lightweight-feedback-system/internal/entities"
	"lightweight-feedback-system/internal/mapper"

	"github.com/stretchr/testify/require"
)

var (
	manager  = entities.User{ID: 1, Username: "john_manager", Email: "john@example.com", Role: entities.RoleManager}
	employee = entities.User{ID: 3, Username: "alice_emp", Email: "alice@example.com", Role: entities.RoleEmployee}
)

func feedback(id int, acknowledged bool) entities.Feedback {
	created := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	return entities.Feedback{
		ID: id, EmployeeID: employee.ID, ManagerID: manager.ID,
		Strengths: "Clear communicator", Improvements: "Write more tests",
		Sentiment: entities.SentimentNegative, Acknowledged: acknowledged,
		CreatedAt: created, UpdatedAt: created.Add(48 * time.Hour),
		Employee: employee, Manager: manager,
	}
}

func render(t *testing.T, name string, binding any) string {
	t.Helper()
	engine, err := NewEngine()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, name, binding, Layout))
	return buf.String()
}

func TestLoginTemplate(t *testing.T) {
	page := mapper.NewLoginPage(false, nil)
	page.Error = "Invalid username"
	body := render(t, "login", page)

	require.Contains(t, body, "<title>Sign in · Feedback System</title>")
	require.Contains(t, body, "Invalid username")
	require.Contains(t, body, `action="/login"`)
	require.Contains(t, body, "charlie_emp")
	require.NotContains(t, body, "Sign out")
}

func TestSignupTemplate(t *testing.T) {
	page := mapper.NewLoginPage(true, []entities.User{manager})
	page.Form.ManagerID = manager.ID
	body := render(t, "login", page)

	require.Contains(t, body, `action="/signup"`)
	require.Contains(t, body, `<option value="1" selected>john_manager (john@example.com)</option>`)
	require.Contains(t, body, `<option value="employee" selected>Employee</option>`)
	require.NotContains(t, body, "Demo Accounts")
}

func TestManagerTemplate(t *testing.T) {
	dash := &entities.ManagerDashboard{
		Team:     []entities.User{employee},
		Feedback: []entities.Feedback{feedback(7, true), feedback(8, false)},
		Stats:    entities.DashboardStats{TotalFeedback: 2, NegativeFeedback: 2},
	}
	body := render(t, "manager", mapper.NewManagerPage(dash, manager, 8, true))

	require.Contains(t, body, "Sign out")
	require.Contains(t, body, "Team Members (1)")
	require.Contains(t, body, "badge-negative")
	require.Contains(t, body, "edited Mar 7, 2024")
	require.Contains(t, body, `href="/manager?edit=7#feedback-7"`)
	require.NotContains(t, body, `href="/manager?edit=8#feedback-8"`)
	require.Contains(t, body, `action="/manager/feedback/8"`)
	require.Contains(t, body, `action="/manager/feedback"`)
	require.NotContains(t, body, "/acknowledge")
}

func TestManagerTemplateEmpty(t *testing.T) {
	dash := &entities.ManagerDashboard{Team: []entities.User{employee}, Selected: &employee}
	body := render(t, "manager", mapper.NewManagerPage(dash, manager, 0, false))

	require.Contains(t, body, "No feedback yet for alice_emp")
	require.NotContains(t, body, "New Feedback</h2>")
}

func TestEmployeeTemplate(t *testing.T) {
	dash := &entities.EmployeeDashboard{
		Timeline: []entities.MonthGroup{{Label: "March 2024", Items: []entities.Feedback{feedback(8, false), feedback(7, true)}}},
		Stats:    entities.DashboardStats{TotalFeedback: 2, UnacknowledgedFeedback: 1},
	}
	body := render(t, "employee", mapper.NewEmployeePage(dash, employee))

	require.Contains(t, body, "March 2024")
	require.Contains(t, body, "From john_manager")
	require.Contains(t, body, `action="/employee/feedback/8/acknowledge"`)
	require.NotContains(t, body, `action="/employee/feedback/7/acknowledge"`)
	require.Contains(t, body, "You have 1 unread feedback")
	require.NotContains(t, body, "Edit</a>")
}

func TestEmployeeTemplateEmpty(t *testing.T) {
	body := render(t, "employee", mapper.NewEmployeePage(&entities.EmployeeDashboard{}, employee))
	require.Contains(t, body, "No feedback yet")
	require.NotContains(t, body, "unread")
}

func TestErrorTemplate(t *testing.T) {
	body := render(t, "error", mapper.ErrorPage{Layout: mapper.Layout{Title: "Error"}, Status: 404, Message: "Not found"})
	require.Contains(t, body, "<h1>404</h1>")
	require.Contains(t, body, "Not found")
}

func TestStaticStylesheet(t *testing.T) {
	f, err := Static().Open("app.css")
	require.NoError(t, err)
	defer f.Close()

	raw, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Contains(t, string(raw), ".badge-positive")
}

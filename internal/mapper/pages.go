package mapper

import (
	"fmt"

	"lightweight-feedback-system/internal/entities"
)

// Layout is the shared page chrome.
type Layout struct {
	Title string
	User  *UserView
}

// DemoAccount is a suggested login on the sign-in page.
type DemoAccount struct {
	Username    string
	Role        string
	Description string
}

// DemoAccounts are the seeded accounts of the feedback API.
var DemoAccounts = []DemoAccount{
	{Username: "john_manager", Role: "Manager", Description: "Can create and manage team feedback"},
	{Username: "sarah_manager", Role: "Manager", Description: "Can create and manage team feedback"},
	{Username: "alice_emp", Role: "Employee", Description: "Can view and acknowledge personal feedback"},
	{Username: "bob_emp", Role: "Employee", Description: "Can view and acknowledge personal feedback"},
	{Username: "charlie_emp", Role: "Employee", Description: "Can view and acknowledge personal feedback"},
}

// SignupForm echoes signup input back on validation failure.
type SignupForm struct {
	Username  string
	Email     string
	Role      string
	ManagerID int
}

// LoginPage renders the sign-in and sign-up forms.
type LoginPage struct {
	Layout
	Signup       bool
	Error        string
	Username     string
	Form         SignupForm
	Managers     []TeamMemberView
	DemoAccounts []DemoAccount
}

// FeedbackForm echoes create-form input back on validation failure.
type FeedbackForm struct {
	EmployeeID   int
	Strengths    string
	Improvements string
	Sentiments   []SentimentOption
	Team         []TeamMemberView
}

// ManagerPage renders the manager dashboard.
type ManagerPage struct {
	Layout
	Error        string
	Stats        []StatCardView
	Team         []TeamMemberView
	TeamCount    int
	AllSelected  bool
	Heading      string
	EmptyMessage string
	Cards        []FeedbackCardView
	ShowForm     bool
	Form         FeedbackForm
	NewHref      string
}

// EmployeePage renders the employee dashboard.
type EmployeePage struct {
	Layout
	Error    string
	Stats    []StatCardView
	Timeline []MonthGroupView
	Unread   string
}

// ErrorPage renders a terminal error message.
type ErrorPage struct {
	Layout
	Status  int
	Message string
}

// NewManagerPage assembles the manager dashboard for viewer. editingID opens
// inline edit on one card; showForm opens the create modal.
func NewManagerPage(dash *entities.ManagerDashboard, viewer entities.User, editingID int, showForm bool) ManagerPage {
	selectedID := 0
	heading := "All Team Feedback"
	empty := "No feedback has been created yet"
	if dash.Selected != nil {
		selectedID = dash.Selected.ID
		heading = "Feedback for " + dash.Selected.Username
		empty = "No feedback yet for " + dash.Selected.Username
	}

	cards := ToFeedbackCards(dash.Feedback, viewer, editingID)
	if selectedID > 0 {
		for i := range cards {
			cards[i].EditHref = fmt.Sprintf("/manager?employee=%d&edit=%d", selectedID, cards[i].ID)
			cards[i].ReturnTo = fmt.Sprintf("/manager?employee=%d", selectedID)
		}
	}

	newHref := "/manager?new=1"
	if selectedID > 0 {
		newHref = fmt.Sprintf("/manager?employee=%d&new=1", selectedID)
	}

	user := ToUserView(viewer)
	return ManagerPage{
		Layout:       Layout{Title: "Manager Dashboard", User: &user},
		Stats:        ManagerStats(dash.Stats),
		Team:         ToTeamMembers(dash.Team, selectedID),
		TeamCount:    len(dash.Team),
		AllSelected:  selectedID == 0,
		Heading:      heading,
		EmptyMessage: empty,
		Cards:        cards,
		ShowForm:     showForm,
		Form:         NewFeedbackForm(dash.Team, entities.FeedbackCreate{EmployeeID: selectedID}),
		NewHref:      newHref,
	}
}

// NewFeedbackForm builds the create modal, pre-filled from req.
func NewFeedbackForm(team []entities.User, req entities.FeedbackCreate) FeedbackForm {
	sentiment := req.Sentiment
	if sentiment == "" {
		sentiment = entities.SentimentNeutral
	}
	return FeedbackForm{
		EmployeeID:   req.EmployeeID,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiments:   SentimentOptions(sentiment),
		Team:         ToTeamMembers(team, req.EmployeeID),
	}
}

// NewEmployeePage assembles the employee dashboard for viewer.
func NewEmployeePage(dash *entities.EmployeeDashboard, viewer entities.User) EmployeePage {
	user := ToUserView(viewer)
	return EmployeePage{
		Layout:   Layout{Title: "My Feedback", User: &user},
		Stats:    EmployeeStats(dash.Stats),
		Timeline: ToTimeline(dash.Timeline, viewer),
		Unread:   UnreadMessage(dash.Stats.UnacknowledgedFeedback),
	}
}

// NewLoginPage assembles the sign-in page.
func NewLoginPage(signup bool, managers []entities.User) LoginPage {
	return LoginPage{
		Layout:       Layout{Title: "Sign in"},
		Signup:       signup,
		Form:         SignupForm{Role: string(entities.RoleEmployee)},
		Managers:     ToTeamMembers(managers, 0),
		DemoAccounts: DemoAccounts,
	}
}

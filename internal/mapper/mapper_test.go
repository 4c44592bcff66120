package mapper

import (
	"testing"
	"time"

	"lightweight-feedback-system/internal/entities"

	"github.com/stretchr/testify/require"
)

var (
	manager  = entities.User{ID: 1, Username: "john_manager", Role: entities.RoleManager}
	employee = entities.User{ID: 3, Username: "alice_emp", Role: entities.RoleEmployee}
)

func sampleFeedback(acknowledged bool) entities.Feedback {
	created := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	return entities.Feedback{
		ID:           7,
		EmployeeID:   employee.ID,
		ManagerID:    manager.ID,
		Strengths:    "Clear communicator",
		Improvements: "Write more tests",
		Sentiment:    entities.SentimentPositive,
		Acknowledged: acknowledged,
		CreatedAt:    created,
		UpdatedAt:    created,
		Employee:     employee,
		Manager:      manager,
	}
}

func TestAcknowledgeButtonHiddenOnceAcknowledged(t *testing.T) {
	pending := ToFeedbackCard(sampleFeedback(false), employee, 0)
	require.True(t, pending.CanAcknowledge)
	require.False(t, pending.CanEdit)
	require.Equal(t, "From", pending.CounterpartLabel)
	require.Equal(t, "john_manager", pending.Counterpart)

	done := ToFeedbackCard(sampleFeedback(true), employee, 0)
	require.False(t, done.CanAcknowledge)
	require.True(t, done.Acknowledged)
}

func TestManagerCardEditing(t *testing.T) {
	card := ToFeedbackCard(sampleFeedback(false), manager, 0)
	require.True(t, card.CanEdit)
	require.False(t, card.Editing)
	require.False(t, card.CanAcknowledge)
	require.Equal(t, "alice_emp", card.Counterpart)
	require.Empty(t, card.Sentiments)

	editing := ToFeedbackCard(sampleFeedback(false), manager, 7)
	require.True(t, editing.Editing)
	require.Len(t, editing.Sentiments, 3)
	require.True(t, editing.Sentiments[0].Selected)
	require.Equal(t, "positive", editing.Sentiments[0].Value)
}

func TestCardFormatting(t *testing.T) {
	fb := sampleFeedback(false)
	card := ToFeedbackCard(fb, employee, 0)
	require.Equal(t, "Mar 5, 2024", card.CreatedAt)
	require.Equal(t, "badge-positive", card.SentimentClass)
	require.False(t, card.Edited)

	fb.UpdatedAt = fb.CreatedAt.Add(time.Hour)
	require.True(t, ToFeedbackCard(fb, employee, 0).Edited)
}

func TestSentimentClass(t *testing.T) {
	require.Equal(t, "badge-positive", SentimentClass(entities.SentimentPositive))
	require.Equal(t, "badge-negative", SentimentClass(entities.SentimentNegative))
	require.Equal(t, "badge-neutral", SentimentClass(entities.SentimentNeutral))
	require.Equal(t, "badge-neutral", SentimentClass("unknown"))
}

func TestUnreadMessage(t *testing.T) {
	require.Empty(t, UnreadMessage(0))
	require.Equal(t, "You have 1 unread feedback", UnreadMessage(1))
	require.Equal(t, "You have 4 unread feedbacks", UnreadMessage(4))
}

func TestStats(t *testing.T) {
	s := entities.DashboardStats{TotalFeedback: 6, PositiveFeedback: 3, NeutralFeedback: 2, NegativeFeedback: 1, UnacknowledgedFeedback: 2}

	mgr := ManagerStats(s)
	require.Len(t, mgr, 4)
	require.Equal(t, 1, mgr[3].Value)

	emp := EmployeeStats(s)
	require.Equal(t, "Acknowledged", emp[2].Label)
	require.Equal(t, 4, emp[2].Value)
	require.Equal(t, 2, emp[3].Value)
}

func TestToTeamMembersAndTimeline(t *testing.T) {
	team := ToTeamMembers([]entities.User{employee, {ID: 4, Username: "bob_emp"}}, 4)
	require.False(t, team[0].Selected)
	require.True(t, team[1].Selected)

	groups := ToTimeline([]entities.MonthGroup{{Label: "March 2024", Items: []entities.Feedback{sampleFeedback(false)}}}, employee)
	require.Len(t, groups, 1)
	require.Equal(t, "March 2024", groups[0].Label)
	require.True(t, groups[0].Cards[0].CanAcknowledge)
}

func TestNewManagerPage(t *testing.T) {
	dash := &entities.ManagerDashboard{
		Team:     []entities.User{employee},
		Feedback: []entities.Feedback{sampleFeedback(false)},
		Stats:    entities.DashboardStats{TotalFeedback: 1, PositiveFeedback: 1},
	}

	all := NewManagerPage(dash, manager, 0, false)
	require.True(t, all.AllSelected)
	require.Equal(t, "All Team Feedback", all.Heading)
	require.Equal(t, "/manager?new=1", all.NewHref)
	require.Equal(t, "/manager?edit=7", all.Cards[0].EditHref)
	require.Equal(t, 1, all.TeamCount)
	require.Equal(t, "john_manager", all.User.Username)

	dash.Selected = &employee
	one := NewManagerPage(dash, manager, 7, true)
	require.False(t, one.AllSelected)
	require.Equal(t, "Feedback for alice_emp", one.Heading)
	require.Equal(t, "No feedback yet for alice_emp", one.EmptyMessage)
	require.Equal(t, "/manager?employee=3&new=1", one.NewHref)
	require.Equal(t, "/manager?employee=3&edit=7", one.Cards[0].EditHref)
	require.Equal(t, "/manager?employee=3", one.Cards[0].ReturnTo)
	require.True(t, one.Cards[0].Editing)
	require.True(t, one.ShowForm)
	require.Equal(t, 3, one.Form.EmployeeID)
	require.True(t, one.Team[0].Selected)
}

func TestNewFeedbackFormDefaultsNeutral(t *testing.T) {
	form := NewFeedbackForm([]entities.User{employee}, entities.FeedbackCreate{Strengths: "x"})
	require.Equal(t, "x", form.Strengths)
	for _, opt := range form.Sentiments {
		require.Equal(t, opt.Value == string(entities.SentimentNeutral), opt.Selected, opt.Value)
	}
}

func TestNewLoginPage(t *testing.T) {
	page := NewLoginPage(true, []entities.User{manager})
	require.True(t, page.Signup)
	require.Equal(t, string(entities.RoleEmployee), page.Form.Role)
	require.Len(t, page.Managers, 1)
	require.Len(t, page.DemoAccounts, 5)
	require.Nil(t, page.User)
}

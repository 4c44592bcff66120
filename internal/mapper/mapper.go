// Package mapper converts domain models into template view models.
package mapper

import (
	"fmt"

	"lightweight-feedback-system/internal/entities"
)

const dateLayout = "Jan 2, 2006"

// UserView is the signed-in user exposed to templates.
type UserView struct {
	ID        int
	Username  string
	Email     string
	Role      string
	IsManager bool
}

// FeedbackCardView is one rendered feedback card.
type FeedbackCardView struct {
	ID               int
	CounterpartLabel string
	Counterpart      string
	Strengths        string
	Improvements     string
	Sentiment        string
	SentimentClass   string
	SentimentIcon    string
	Acknowledged     bool
	CreatedAt        string
	UpdatedAt        string
	Edited           bool
	CanEdit          bool
	Editing          bool
	CanAcknowledge   bool
	Sentiments       []SentimentOption
	EditHref         string
	ReturnTo         string
}

// SentimentOption is one entry of a sentiment select.
type SentimentOption struct {
	Value    string
	Selected bool
}

// StatCardView is one dashboard counter.
type StatCardView struct {
	Label string
	Value int
	Class string
}

// MonthGroupView is one month section of the employee timeline.
type MonthGroupView struct {
	Label string
	Cards []FeedbackCardView
}

// TeamMemberView is one roster entry in the manager sidebar.
type TeamMemberView struct {
	ID       int
	Username string
	Email    string
	Selected bool
}

// ToUserView maps entities.User to its template model.
func ToUserView(u entities.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		IsManager: u.IsManager(),
	}
}

// ToFeedbackCard maps a feedback entry as seen by viewer. editingID opens the
// inline edit form on the matching card.
func ToFeedbackCard(fb entities.Feedback, viewer entities.User, editingID int) FeedbackCardView {
	card := FeedbackCardView{
		ID:             fb.ID,
		Strengths:      fb.Strengths,
		Improvements:   fb.Improvements,
		Sentiment:      string(fb.Sentiment),
		SentimentClass: SentimentClass(fb.Sentiment),
		SentimentIcon:  sentimentIcon(fb.Sentiment),
		Acknowledged:   fb.Acknowledged,
		CreatedAt:      formatDate(fb),
		UpdatedAt:      fb.UpdatedAt.Format(dateLayout),
		Edited:         !fb.UpdatedAt.IsZero() && fb.UpdatedAt.After(fb.CreatedAt),
	}

	if viewer.IsManager() {
		card.CounterpartLabel = "To"
		card.Counterpart = fb.Employee.Username
		card.CanEdit = true
		card.Editing = editingID == fb.ID
		card.EditHref = fmt.Sprintf("/manager?edit=%d", fb.ID)
		card.ReturnTo = "/manager"
		if card.Editing {
			card.Sentiments = SentimentOptions(fb.Sentiment)
		}
	} else {
		card.CounterpartLabel = "From"
		card.Counterpart = fb.Manager.Username
		card.CanAcknowledge = !fb.Acknowledged
	}
	return card
}

// ToFeedbackCards maps a list of entries in order.
func ToFeedbackCards(list []entities.Feedback, viewer entities.User, editingID int) []FeedbackCardView {
	res := make([]FeedbackCardView, 0, len(list))
	for _, fb := range list {
		res = append(res, ToFeedbackCard(fb, viewer, editingID))
	}
	return res
}

// ToTimeline maps month groups for the employee page.
func ToTimeline(groups []entities.MonthGroup, viewer entities.User) []MonthGroupView {
	res := make([]MonthGroupView, 0, len(groups))
	for _, g := range groups {
		res = append(res, MonthGroupView{Label: g.Label, Cards: ToFeedbackCards(g.Items, viewer, 0)})
	}
	return res
}

// ToTeamMembers maps the roster, marking the selected member.
func ToTeamMembers(team []entities.User, selectedID int) []TeamMemberView {
	res := make([]TeamMemberView, 0, len(team))
	for _, u := range team {
		res = append(res, TeamMemberView{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Selected: u.ID == selectedID,
		})
	}
	return res
}

// ManagerStats returns the manager dashboard counters.
func ManagerStats(s entities.DashboardStats) []StatCardView {
	return []StatCardView{
		{Label: "Total Feedback", Value: s.TotalFeedback, Class: "stat-total"},
		{Label: "Positive", Value: s.PositiveFeedback, Class: "stat-positive"},
		{Label: "Neutral", Value: s.NeutralFeedback, Class: "stat-neutral"},
		{Label: "Negative", Value: s.NegativeFeedback, Class: "stat-negative"},
	}
}

// EmployeeStats returns the employee dashboard counters.
func EmployeeStats(s entities.DashboardStats) []StatCardView {
	return []StatCardView{
		{Label: "Total Feedback", Value: s.TotalFeedback, Class: "stat-total"},
		{Label: "Positive", Value: s.PositiveFeedback, Class: "stat-positive"},
		{Label: "Acknowledged", Value: s.Acknowledged(), Class: "stat-acknowledged"},
		{Label: "Pending", Value: s.UnacknowledgedFeedback, Class: "stat-pending"},
	}
}

// UnreadMessage renders the unread banner text, or "" when nothing is pending.
func UnreadMessage(n int) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "You have 1 unread feedback"
	default:
		return fmt.Sprintf("You have %d unread feedbacks", n)
	}
}

// SentimentOptions lists every sentiment, marking selected.
func SentimentOptions(selected entities.Sentiment) []SentimentOption {
	res := make([]SentimentOption, 0, len(entities.Sentiments))
	for _, s := range entities.Sentiments {
		res = append(res, SentimentOption{Value: string(s), Selected: s == selected})
	}
	return res
}

// SentimentClass returns the badge CSS class for a sentiment.
func SentimentClass(s entities.Sentiment) string {
	switch s {
	case entities.SentimentPositive:
		return "badge-positive"
	case entities.SentimentNegative:
		return "badge-negative"
	default:
		return "badge-neutral"
	}
}

func sentimentIcon(s entities.Sentiment) string {
	switch s {
	case entities.SentimentPositive:
		return "▲"
	case entities.SentimentNegative:
		return "▼"
	default:
		return "–"
	}
}

func formatDate(fb entities.Feedback) string {
	if fb.CreatedAt.IsZero() {
		return ""
	}
	return fb.CreatedAt.Format(dateLayout)
}

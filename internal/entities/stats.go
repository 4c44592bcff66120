// Package entities contains core business entities.
package entities

// DashboardStats aggregates feedback counters for the signed-in user.
type DashboardStats struct {
	TotalFeedback          int `json:"total_feedback"`
	PositiveFeedback       int `json:"positive_feedback"`
	NeutralFeedback        int `json:"neutral_feedback"`
	NegativeFeedback       int `json:"negative_feedback"`
	UnacknowledgedFeedback int `json:"unacknowledged_feedback"`
}

// Acknowledged returns the number of acknowledged entries.
func (s DashboardStats) Acknowledged() int {
	if n := s.TotalFeedback - s.UnacknowledgedFeedback; n > 0 {
		return n
	}
	return 0
}

// ManagerDashboard is everything the manager page renders.
type ManagerDashboard struct {
	Team     []User
	Feedback []Feedback
	Stats    DashboardStats
	Selected *User
}

// EmployeeDashboard is everything the employee page renders.
type EmployeeDashboard struct {
	Feedback []Feedback
	Timeline []MonthGroup
	Stats    DashboardStats
}

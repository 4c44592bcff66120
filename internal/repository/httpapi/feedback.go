package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"lightweight-feedback-system/internal/entities"
)

const feedbackPath = "/feedback"

// CreateFeedback submits a new feedback entry for a team member.
func (c *Client) CreateFeedback(ctx context.Context, req entities.FeedbackCreate) (*entities.Feedback, error) {
	body := feedbackCreateDTO{
		EmployeeID:   req.EmployeeID,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    string(req.Sentiment),
	}
	var resp feedbackDTO
	if err := c.do(ctx, http.MethodPost, feedbackPath, body, &resp); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	c.log.Infow("feedback created", "feedback_id", resp.ID, "employee_id", req.EmployeeID)
	fb := resp.toEntity()
	return &fb, nil
}

// ListFeedback returns feedback given (manager) or received (employee).
func (c *Client) ListFeedback(ctx context.Context) ([]entities.Feedback, error) {
	var list []feedbackDTO
	if err := c.do(ctx, http.MethodGet, feedbackPath, nil, &list); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return toFeedbackList(list), nil
}

// EmployeeFeedback returns the manager's feedback for one team member.
func (c *Client) EmployeeFeedback(ctx context.Context, employeeID int) ([]entities.Feedback, error) {
	var list []feedbackDTO
	path := fmt.Sprintf("%s/employee/%d", feedbackPath, employeeID)
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("list employee feedback: %w", err)
	}
	return toFeedbackList(list), nil
}

// UpdateFeedback applies a partial update.
func (c *Client) UpdateFeedback(ctx context.Context, feedbackID int, req entities.FeedbackUpdate) (*entities.Feedback, error) {
	var resp feedbackDTO
	path := fmt.Sprintf("%s/%d", feedbackPath, feedbackID)
	if err := c.do(ctx, http.MethodPut, path, fromFeedbackUpdate(req), &resp); err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}
	c.log.Infow("feedback updated", "feedback_id", feedbackID)
	fb := resp.toEntity()
	return &fb, nil
}

// AcknowledgeFeedback marks an entry as read by the employee.
func (c *Client) AcknowledgeFeedback(ctx context.Context, feedbackID int) error {
	path := fmt.Sprintf("%s/%d/acknowledge", feedbackPath, feedbackID)
	if err := c.do(ctx, http.MethodPut, path, nil, nil); err != nil {
		return fmt.Errorf("acknowledge feedback: %w", err)
	}
	c.log.Infow("feedback acknowledged", "feedback_id", feedbackID)
	return nil
}

// Package domain contains application services orchestrating domain logic by feedback.
package domain

import (
	"context"
	"fmt"
	"strings"

	"lightweight-feedback-system/internal/entities"
)

// Form messages shown inline by the feedback forms.
const (
	MsgEmployeeRequired     = "Please select a team member"
	MsgStrengthsRequired    = "Strengths are required"
	MsgImprovementsRequired = "Areas to improve are required"
	MsgSentimentInvalid     = "Sentiment must be positive, neutral or negative"
	MsgNothingToUpdate      = "Nothing to update"
)

// CreateFeedback validates the form and submits a new entry.
func (u *Usecase) CreateFeedback(ctx context.Context, req entities.FeedbackCreate) (*entities.Feedback, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	req = req.Normalize()
	if err := ValidateCreate(req); err != nil {
		return nil, err
	}

	fb, err := u.repo.CreateFeedback(ctx, req)
	if err != nil {
		u.log.Errorw("failed to create feedback", "employee_id", req.EmployeeID, "error", err)
		return nil, err
	}
	return fb, nil
}

// ValidateCreate applies the create form rules to a normalized request.
func ValidateCreate(req entities.FeedbackCreate) error {
	if req.EmployeeID <= 0 {
		return entities.NewValidationError(MsgEmployeeRequired)
	}
	if req.Strengths == "" {
		return entities.NewValidationError(MsgStrengthsRequired)
	}
	if req.Improvements == "" {
		return entities.NewValidationError(MsgImprovementsRequired)
	}
	if !req.Sentiment.Valid() {
		return entities.NewValidationError(MsgSentimentInvalid)
	}
	return nil
}

// UpdateFeedback validates and applies an inline edit.
func (u *Usecase) UpdateFeedback(ctx context.Context, feedbackID int, req entities.FeedbackUpdate) (*entities.Feedback, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if feedbackID <= 0 {
		return nil, fmt.Errorf("%w: feedback id is required", entities.ErrInvalidArgument)
	}
	req, err := normalizeUpdate(req)
	if err != nil {
		return nil, err
	}

	fb, err := u.repo.UpdateFeedback(ctx, feedbackID, req)
	if err != nil {
		u.log.Errorw("failed to update feedback", "feedback_id", feedbackID, "error", err)
		return nil, err
	}
	return fb, nil
}

func normalizeUpdate(req entities.FeedbackUpdate) (entities.FeedbackUpdate, error) {
	if req.Empty() {
		return req, entities.NewValidationError(MsgNothingToUpdate)
	}
	if req.Strengths != nil {
		s := strings.TrimSpace(*req.Strengths)
		if s == "" {
			return req, entities.NewValidationError(MsgStrengthsRequired)
		}
		req.Strengths = &s
	}
	if req.Improvements != nil {
		s := strings.TrimSpace(*req.Improvements)
		if s == "" {
			return req, entities.NewValidationError(MsgImprovementsRequired)
		}
		req.Improvements = &s
	}
	if req.Sentiment != nil && !req.Sentiment.Valid() {
		return req, entities.NewValidationError(MsgSentimentInvalid)
	}
	return req, nil
}

// AcknowledgeFeedback confirms the employee has read an entry.
func (u *Usecase) AcknowledgeFeedback(ctx context.Context, feedbackID int) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if feedbackID <= 0 {
		return fmt.Errorf("%w: feedback id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.AcknowledgeFeedback(ctx, feedbackID); err != nil {
		u.log.Errorw("failed to acknowledge feedback", "feedback_id", feedbackID, "error", err)
		return err
	}
	return nil
}

// FeedbackList returns the signed-in user's feedback, newest first.
func (u *Usecase) FeedbackList(ctx context.Context) ([]entities.Feedback, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	list, err := u.repo.ListFeedback(ctx)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(list)
	return list, nil
}

// EmployeeFeedback returns one team member's feedback, newest first.
func (u *Usecase) EmployeeFeedback(ctx context.Context, employeeID int) ([]entities.Feedback, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if employeeID <= 0 {
		return nil, fmt.Errorf("%w: employee id is required", entities.ErrInvalidArgument)
	}
	list, err := u.repo.EmployeeFeedback(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(list)
	return list, nil
}

package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"lightweight-feedback-system/internal/entities"
)

// Accepted timestamp layouts. Zone-less values are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// apiTime decodes the ISO-8601 datetimes the API emits, with or without a zone.
type apiTime struct {
	time.Time
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp %q: unsupported format", raw)
}

type rootDTO struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type userDTO struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ManagerID *int    `json:"manager_id,omitempty"`
	CreatedAt apiTime `json:"created_at"`
}

func (u userDTO) toEntity() entities.User {
	return entities.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      entities.Role(u.Role),
		ManagerID: u.ManagerID,
		CreatedAt: u.CreatedAt.Time,
	}
}

func toUsers(src []userDTO) []entities.User {
	res := make([]entities.User, 0, len(src))
	for _, u := range src {
		res = append(res, u.toEntity())
	}
	return res
}

type loginRequestDTO struct {
	Username string `json:"username"`
}

type registerRequestDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ManagerID *int   `json:"manager_id,omitempty"`
}

type loginResponseDTO struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        userDTO `json:"user"`
}

func (r loginResponseDTO) toEntity() *entities.Session {
	return &entities.Session{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
		User:        r.User.toEntity(),
	}
}

type feedbackDTO struct {
	ID           int     `json:"id"`
	EmployeeID   int     `json:"employee_id"`
	ManagerID    int     `json:"manager_id"`
	Strengths    string  `json:"strengths"`
	Improvements string  `json:"improvements"`
	Sentiment    string  `json:"sentiment"`
	Acknowledged bool    `json:"acknowledged"`
	CreatedAt    apiTime `json:"created_at"`
	UpdatedAt    apiTime `json:"updated_at"`
	Employee     userDTO `json:"employee"`
	Manager      userDTO `json:"manager"`
}

func (f feedbackDTO) toEntity() entities.Feedback {
	return entities.Feedback{
		ID:           f.ID,
		EmployeeID:   f.EmployeeID,
		ManagerID:    f.ManagerID,
		Strengths:    f.Strengths,
		Improvements: f.Improvements,
		Sentiment:    entities.Sentiment(f.Sentiment),
		Acknowledged: f.Acknowledged,
		CreatedAt:    f.CreatedAt.Time,
		UpdatedAt:    f.UpdatedAt.Time,
		Employee:     f.Employee.toEntity(),
		Manager:      f.Manager.toEntity(),
	}
}

func toFeedbackList(src []feedbackDTO) []entities.Feedback {
	res := make([]entities.Feedback, 0, len(src))
	for _, f := range src {
		res = append(res, f.toEntity())
	}
	return res
}

type feedbackCreateDTO struct {
	EmployeeID   int    `json:"employee_id"`
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
	Sentiment    string `json:"sentiment"`
}

type feedbackUpdateDTO struct {
	Strengths    *string `json:"strengths,omitempty"`
	Improvements *string `json:"improvements,omitempty"`
	Sentiment    *string `json:"sentiment,omitempty"`
}

func fromFeedbackUpdate(u entities.FeedbackUpdate) feedbackUpdateDTO {
	dto := feedbackUpdateDTO{Strengths: u.Strengths, Improvements: u.Improvements}
	if u.Sentiment != nil {
		s := string(*u.Sentiment)
		dto.Sentiment = &s
	}
	return dto
}

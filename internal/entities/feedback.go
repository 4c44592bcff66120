// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
)

// Sentiment is the categorical tone of a feedback entry.
type Sentiment string

const (
	// SentimentPositive marks encouraging feedback.
	SentimentPositive Sentiment = "positive"
	// SentimentNeutral marks balanced feedback.
	SentimentNeutral Sentiment = "neutral"
	// SentimentNegative marks critical feedback.
	SentimentNegative Sentiment = "negative"
)

// Sentiments lists all sentiments in display order.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// Valid reports whether s is a known sentiment.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Feedback is a domain model of a feedback entry.
type Feedback struct {
	ID           int
	EmployeeID   int
	ManagerID    int
	Strengths    string
	Improvements string
	Sentiment    Sentiment
	Acknowledged bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Employee     User
	Manager      User
}

// FeedbackCreate carries the create form input.
type FeedbackCreate struct {
	EmployeeID   int
	Strengths    string
	Improvements string
	Sentiment    Sentiment
}

// Normalize trims text fields and applies the neutral default.
func (f FeedbackCreate) Normalize() FeedbackCreate {
	f.Strengths = strings.TrimSpace(f.Strengths)
	f.Improvements = strings.TrimSpace(f.Improvements)
	if f.Sentiment == "" {
		f.Sentiment = SentimentNeutral
	}
	return f
}

// FeedbackUpdate is a partial update; nil fields are left untouched.
type FeedbackUpdate struct {
	Strengths    *string
	Improvements *string
	Sentiment    *Sentiment
}

// Empty reports whether the update changes nothing.
func (f FeedbackUpdate) Empty() bool {
	return f.Strengths == nil && f.Improvements == nil && f.Sentiment == nil
}

// MonthGroup is a calendar month of feedback on the employee timeline.
type MonthGroup struct {
	Label string
	Month time.Time
	Items []Feedback
}

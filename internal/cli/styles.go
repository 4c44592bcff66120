package cli

import (
	"lightweight-feedback-system/internal/entities"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d97706")).Bold(true)

	// ErrorStyle renders failures printed by main.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true)

	sentimentStyles = map[entities.Sentiment]lipgloss.Style{
		entities.SentimentPositive: lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")).Bold(true),
		entities.SentimentNeutral:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ca8a04")).Bold(true),
		entities.SentimentNegative: lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Bold(true),
	}
)

// badge renders a sentiment as a coloured tag.
func badge(s entities.Sentiment) string {
	style, ok := sentimentStyles[s]
	if !ok {
		style = mutedStyle
	}
	return style.Render("[" + string(s) + "]")
}

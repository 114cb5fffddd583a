// internal/ui/styles.go
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nhath/registros/internal/config"
)

var (
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	successColor   lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color
	landmarkColor  lipgloss.Color
	markerColor    lipgloss.Color

	bgPrimary   lipgloss.Color
	bgSecondary lipgloss.Color
	cardBg      lipgloss.Color

	// Styles
	StatusBarStyle      lipgloss.Style
	TitleStyle          lipgloss.Style
	ButtonStyle         lipgloss.Style
	ButtonDisabledStyle lipgloss.Style
	ActorStyle          lipgloss.Style
	MetaStyle           lipgloss.Style
	LandmarkStyle       lipgloss.Style
	MarkerStyle         lipgloss.Style
	ErrorStyle          lipgloss.Style
	SpinnerStyle        lipgloss.Style
	PopupStyle          lipgloss.Style
)

// Color getter functions for use in components
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextSecondary() lipgloss.Color  { return textSecondary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func SuccessColor() lipgloss.Color   { return successColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func BgPrimary() lipgloss.Color      { return bgPrimary }
func CardBg() lipgloss.Color         { return cardBg }

// InitStyles initializes the global styles based on the provided configuration theme
func InitStyles(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	successColor = lipgloss.Color(theme.Success)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)
	landmarkColor = lipgloss.Color(theme.Landmark)
	markerColor = lipgloss.Color(theme.Marker)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	bgSecondary = lipgloss.Color(theme.BgSecondary)
	cardBg = lipgloss.Color(theme.CardBg)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(cardBg).
		Foreground(textPrimary)

	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(textFaint)

	ActorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(textPrimary)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	LandmarkStyle = lipgloss.NewStyle().
		Foreground(landmarkColor)

	MarkerStyle = lipgloss.NewStyle().
		Foreground(markerColor)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
		Foreground(highlightColor)

	PopupStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlightColor).
		Padding(1, 2)
}

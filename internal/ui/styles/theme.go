package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)
	SelectedRowStyle   = lipgloss.NewStyle().Background(SelectedRowBg)

	// Taskbar
	TaskbarStyle       = lipgloss.NewStyle().Background(TaskbarBg).Foreground(lipgloss.Color("15"))
	TaskbarActiveStyle = lipgloss.NewStyle().Background(TaskbarActive).Foreground(lipgloss.Color("15")).Bold(true)
	TaskbarMinStyle    = lipgloss.NewStyle().Background(TaskbarBg).Foreground(TextSecondary)
	StartButtonStyle   = lipgloss.NewStyle().Background(StartButtonBg).Foreground(lipgloss.Color("15")).Bold(true)
	ClockStyle         = lipgloss.NewStyle().Background(ClockBg).Foreground(lipgloss.Color("15"))

	// Window chrome buttons
	ControlStyle      = lipgloss.NewStyle().Foreground(KeybindKey)
	CloseControlStyle = lipgloss.NewStyle().Foreground(StatusError).Bold(true)

	// Desktop icons
	IconGlyphStyle    = lipgloss.NewStyle().Foreground(IconGlyph).Bold(true)
	IconLabelStyle    = lipgloss.NewStyle().Foreground(IconLabel)
	IconSelectedStyle = lipgloss.NewStyle().Foreground(IconLabel).Background(SelectedRowBg)
)

package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor chrome. Text colors come from the Theme.
type Style struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	LineNumPinned lipgloss.Style
}

func DefaultStyle() Style {
	num := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		LineNum:       num,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		LineNumPinned: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

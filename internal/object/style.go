package object

import "github.com/charmbracelet/lipgloss"

// Entity text styles. Words fade with distance; the locked target and its
// already-typed prefix get their own treatment.
var (
	wordFarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	wordMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	wordNearStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)

	lockedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	matchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))

	fireStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	smokeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	debrisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("215"))

	spriteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
)

// wordStyle picks the distance style for an unlocked word from its projection
// scale.
func wordStyle(scale float64) lipgloss.Style {
	switch {
	case scale < 0.7:
		return wordFarStyle
	case scale < 0.85:
		return wordMidStyle
	default:
		return wordNearStyle
	}
}

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	sectionMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	itemStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	itemMetaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true)
	selectedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	publicMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	dividerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	savingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if xansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return xansi.Cut(text, 0, width-1) + "…"
}

// padToWidth right-pads plain (unstyled) text so row highlights span the
// full column.
func padToWidth(text string, width int) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

func renderStatusLine(width int, help, status string) string {
	if width <= 0 {
		return help
	}
	gap := width - xansi.StringWidth(help) - xansi.StringWidth(status)
	if gap < 1 {
		return truncateToWidth(help+" "+status, width)
	}
	return help + strings.Repeat(" ", gap) + status
}

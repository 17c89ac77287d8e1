package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) openReader(title, source string) {
	m.readerTitle = title
	m.readerSource = source
	m.viewport.SetContent(renderMarkdown(source, m.viewport.Width))
	m.viewport.GotoTop()
	m.mode = uiModeReader
}

func (m *Model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = uiModeBrowse
		m.readerSource = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) viewReader() string {
	header := headerStyle.Render(truncateToWidth(m.readerTitle, max(1, m.width-2)))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.viewport.View())
}

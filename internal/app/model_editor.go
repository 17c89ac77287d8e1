package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// openNote binds the editor to the given note id and remembers it as the
// last open note.
func (m *Model) openNote(id string) tea.Cmd {
	if m.streaming {
		m.cancelAssistant()
	}
	m.session.LoadNote(id)
	m.notes.SetCurrent(id)
	m.titleInput.SetValue(m.session.Title())
	m.body.SetValue(m.doc.Text())
	m.body.CursorEnd()
	m.mode = uiModeEditor
	m.focusTitle = false
	m.titleInput.Blur()
	m.status = ""

	m.appState.LastNoteID = id
	m.hasAppState = true
	return tea.Batch(m.body.Focus(), saveAppStateCmd(m.states, m.appState))
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.streaming {
		// The document belongs to the inserter until the stream resolves.
		if msg.String() == "esc" {
			m.cancelAssistant()
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, m.exitEditor()
	case "tab":
		m.focusTitle = !m.focusTitle
		if m.focusTitle {
			m.body.Blur()
			return m, m.titleInput.Focus()
		}
		m.titleInput.Blur()
		return m, m.body.Focus()
	case "ctrl+a":
		m.startAssistantPrompt(insertModeAfter)
		return m, m.promptInput.Focus()
	case "ctrl+r":
		m.startAssistantPrompt(insertModeReplace)
		return m, m.promptInput.Focus()
	}

	if m.focusTitle {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		if m.titleInput.Value() != m.session.Title() {
			m.session.TitleChanged(m.titleInput.Value())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	if value := m.body.Value(); value != m.doc.Text() {
		m.doc.SetText(value)
		m.session.ContentChanged(value)
	}
	return m, cmd
}

func (m *Model) exitEditor() tea.Cmd {
	m.mode = uiModeBrowse
	m.titleInput.Blur()
	m.body.Blur()
	m.status = ""
	return fetchNotesCmd(m.notes)
}

// syncEditorFromDocument pushes streamed document mutations back into the
// textarea and schedules a save of the new content.
func (m *Model) syncEditorFromDocument() {
	text := m.doc.Text()
	m.body.SetValue(text)
	m.body.CursorEnd()
	m.session.ContentChanged(text)
}

func (m *Model) viewEditor() string {
	title := m.titleInput.View()
	saving := ""
	if m.session.Saving() {
		saving = savingStyle.Render(" saving…")
	} else if m.streaming {
		saving = savingStyle.Render(" assistant writing…")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, headerStyle.Render("Edit "), title, saving)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.body.View())
}

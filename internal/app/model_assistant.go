package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quill/internal/client"
	"quill/internal/editor"
	"quill/internal/logging"
	"quill/internal/types"
)

const (
	insertModeReplace = editor.InsertReplace
	insertModeAfter   = editor.InsertAfter
)

func (m *Model) startAssistantPrompt(mode editor.InsertMode) {
	if !m.session.Loaded() || m.streaming {
		return
	}
	m.promptMode = mode
	m.promptInput.SetValue("")
	m.mode = uiModeAssistant
}

func (m *Model) handleAssistantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.promptInput.Blur()
		m.mode = uiModeEditor
		return m, nil
	case "enter":
		prompt := strings.TrimSpace(m.promptInput.Value())
		if prompt == "" {
			m.status = "prompt is required"
			return m, nil
		}
		return m, m.sendAssistantPrompt(prompt)
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

// sendAssistantPrompt snapshots the insertion target and opens the stream.
// Replace mode targets the whole document; after mode continues past the end.
func (m *Model) sendAssistantPrompt(prompt string) tea.Cmd {
	switch m.promptMode {
	case insertModeReplace:
		m.doc.Select(0, m.doc.Len())
	default:
		m.doc.Select(m.doc.Len(), m.doc.Len())
	}
	m.promptText = prompt
	m.promptInput.Blur()
	m.mode = uiModeEditor
	m.streaming = true
	m.status = "assistant thinking…"

	req := client.AssistantRequest{
		Prompt:   prompt,
		Content:  m.doc.Text(),
		Messages: m.history,
	}
	return openAssistantStreamCmd(m.assistant, m.session.NoteID(), req)
}

func (m *Model) handleAssistantStream(msg assistantStreamMsg) {
	if msg.err != nil {
		m.streaming = false
		m.status = ""
		m.showErrorToast("assistant failed: " + msg.err.Error())
		return
	}
	// A note switch while the request was in flight orphans the stream.
	if !m.streaming || msg.noteID != m.session.NoteID() {
		if msg.cancel != nil {
			msg.cancel()
		}
		return
	}
	inserter := editor.NewInserter(m.doc, m.promptMode)
	m.stream.Start(msg.ch, msg.cancel, inserter)
	m.status = "assistant writing…"
}

func (m *Model) finishAssistant() {
	reply := m.stream.Reply()
	m.streaming = false
	m.status = ""
	m.history = append(m.history,
		types.ChatMessage{Role: "user", Content: m.promptText},
		types.ChatMessage{Role: "assistant", Content: reply},
	)
	m.syncEditorFromDocument()
	m.showInfoToast("assistant finished")
	m.log.Debug("assistant stream finished", logging.F("chars", len(reply)))
}

// cancelAssistant stops the stream. Text inserted so far stays in the note.
func (m *Model) cancelAssistant() {
	m.stream.Reset()
	m.streaming = false
	m.status = ""
	m.syncEditorFromDocument()
	m.showWarningToast("assistant canceled")
}

func (m *Model) viewAssistant() string {
	label := "Continue after note"
	if m.promptMode == insertModeReplace {
		label = "Rewrite note"
	}
	header := headerStyle.Render("Assistant · " + label)
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.promptInput.View(), "", m.body.View())
}

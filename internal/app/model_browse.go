package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"quill/internal/types"
)

type sidebarSection int

const (
	sectionNotes sidebarSection = iota
	sectionFeeds
	sectionArticles
	sectionInbox
)

var sectionOrder = []sidebarSection{sectionNotes, sectionFeeds, sectionArticles, sectionInbox}

func (s sidebarSection) label() string {
	switch s {
	case sectionFeeds:
		return "Feeds"
	case sectionArticles:
		return "Articles"
	case sectionInbox:
		return "Inbox"
	default:
		return "Notes"
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.session.Close()
		return m, tea.Quit
	case "j", "down":
		m.moveCursor(1)
		return m, nil
	case "k", "up":
		m.moveCursor(-1)
		return m, nil
	case "h", "left":
		m.switchSection(-1)
		return m, nil
	case "l", "right", "tab":
		m.switchSection(1)
		return m, nil
	case "enter":
		return m, m.openSelected()
	case "n":
		if m.section == sectionNotes {
			return m, m.openNote(uuid.NewString())
		}
		return m, nil
	case "d":
		return m, m.deleteSelected()
	case "s":
		if m.section == sectionNotes {
			if note := m.selectedNote(); note != nil {
				return m, toggleShareCmd(m.notes, note)
			}
		}
		return m, nil
	case "t":
		return m, m.toggleTheme()
	case "r":
		return m, m.refreshSection()
	}
	return m, nil
}

func (m *Model) sectionLen(section sidebarSection) int {
	switch section {
	case sectionFeeds:
		return len(m.feedList)
	case sectionArticles:
		return len(m.articleList)
	case sectionInbox:
		return len(m.inboxList)
	default:
		return len(m.notes.Notes())
	}
}

func (m *Model) moveCursor(delta int) {
	count := m.sectionLen(m.section)
	if count == 0 {
		m.cursor[m.section] = 0
		return
	}
	cursor := m.cursor[m.section] + delta
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= count {
		cursor = count - 1
	}
	m.cursor[m.section] = cursor
}

func (m *Model) switchSection(delta int) {
	index := 0
	for i, section := range sectionOrder {
		if section == m.section {
			index = i
			break
		}
	}
	index = (index + delta + len(sectionOrder)) % len(sectionOrder)
	m.section = sectionOrder[index]
}

func (m *Model) clampCursors() {
	for _, section := range sectionOrder {
		count := m.sectionLen(section)
		if count == 0 {
			m.cursor[section] = 0
			continue
		}
		if m.cursor[section] >= count {
			m.cursor[section] = count - 1
		}
	}
}

func (m *Model) selectedNote() *types.Note {
	list := m.notes.Notes()
	cursor := m.cursor[sectionNotes]
	if cursor < 0 || cursor >= len(list) {
		return nil
	}
	return list[cursor]
}

func (m *Model) openSelected() tea.Cmd {
	cursor := m.cursor[m.section]
	switch m.section {
	case sectionNotes:
		if note := m.selectedNote(); note != nil {
			return m.openNote(note.ID)
		}
	case sectionArticles:
		if cursor >= 0 && cursor < len(m.articleList) {
			return fetchArticleCmd(m.articles, m.articleList[cursor].ID)
		}
	case sectionInbox:
		if cursor >= 0 && cursor < len(m.inboxList) {
			return fetchInboxMessageCmd(m.inbox, m.inboxList[cursor].ID)
		}
	case sectionFeeds:
		return fetchArticlesCmd(m.articles)
	}
	return nil
}

func (m *Model) deleteSelected() tea.Cmd {
	cursor := m.cursor[m.section]
	switch m.section {
	case sectionNotes:
		if note := m.selectedNote(); note != nil {
			return deleteNoteCmd(m.notes, note.ID)
		}
	case sectionFeeds:
		if cursor >= 0 && cursor < len(m.feedList) {
			return deleteFeedCmd(m.feeds, m.feedList[cursor].ID)
		}
	}
	return nil
}

func (m *Model) refreshSection() tea.Cmd {
	switch m.section {
	case sectionFeeds:
		return fetchFeedsCmd(m.feeds)
	case sectionArticles:
		return fetchArticlesCmd(m.articles)
	case sectionInbox:
		return fetchInboxCmd(m.inbox)
	default:
		return fetchNotesCmd(m.notes)
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	if m.appState.Theme == "light" {
		m.appState.Theme = "dark"
	} else {
		m.appState.Theme = "light"
	}
	m.hasAppState = true
	m.applyTheme(m.appState.Theme)
	m.showInfoToast("theme: " + m.appState.Theme)
	return saveAppStateCmd(m.states, m.appState)
}

func (m *Model) handleShareToggled(msg shareToggledMsg) tea.Cmd {
	if msg.err != nil {
		m.showErrorToast("share failed: " + msg.err.Error())
		return nil
	}
	if msg.note == nil {
		return nil
	}
	if msg.note.Public && msg.note.PublicURL != "" {
		return copyShareLinkCmd(msg.note.PublicURL)
	}
	m.showInfoToast("note is now private")
	return nil
}

func (m *Model) viewBrowse() string {
	listWidth := m.listWidth()
	var left strings.Builder

	tabs := make([]string, 0, len(sectionOrder))
	for _, section := range sectionOrder {
		label := section.label()
		if section == m.section {
			tabs = append(tabs, sectionStyle.Render(label))
		} else {
			tabs = append(tabs, sectionMutedStyle.Render(label))
		}
	}
	left.WriteString(strings.Join(tabs, dividerStyle.Render(" · ")))
	left.WriteString("\n\n")

	for i, line := range m.sectionLines() {
		text := truncateToWidth(line, listWidth-2)
		if i == m.cursor[m.section] {
			left.WriteString(selectedStyle.Render(padToWidth("> "+text, listWidth)))
		} else {
			left.WriteString(itemStyle.Render("  " + text))
		}
		left.WriteString("\n")
	}
	if m.sectionLen(m.section) == 0 {
		if m.notes.Loading() && m.section == sectionNotes {
			left.WriteString(itemMetaStyle.Render("  loading…"))
		} else {
			left.WriteString(itemMetaStyle.Render("  nothing here yet"))
		}
	}

	leftView := lipgloss.NewStyle().Width(listWidth).Render(left.String())
	rightView := m.browsePreview()

	height := max(lipgloss.Height(leftView), lipgloss.Height(rightView))
	if height < 1 {
		height = 1
	}
	divider := strings.Repeat("│\n", height-1) + "│"
	return lipgloss.JoinHorizontal(lipgloss.Top, leftView, dividerStyle.Render(divider), rightView)
}

func (m *Model) sectionLines() []string {
	switch m.section {
	case sectionFeeds:
		lines := make([]string, 0, len(m.feedList))
		for _, feed := range m.feedList {
			lines = append(lines, feed.Title)
		}
		return lines
	case sectionArticles:
		lines := make([]string, 0, len(m.articleList))
		for _, article := range m.articleList {
			lines = append(lines, article.Title)
		}
		return lines
	case sectionInbox:
		lines := make([]string, 0, len(m.inboxList))
		for _, message := range m.inboxList {
			marker := "  "
			if !message.Read {
				marker = "* "
			}
			lines = append(lines, marker+message.Subject)
		}
		return lines
	default:
		list := m.notes.Notes()
		lines := make([]string, 0, len(list))
		for _, note := range list {
			title := note.DisplayTitle()
			if note.Public {
				title += " ⇗"
			}
			lines = append(lines, title)
		}
		return lines
	}
}

func (m *Model) browsePreview() string {
	width := max(minContentWidth, m.width-m.listWidth()-3)
	cursor := m.cursor[m.section]
	switch m.section {
	case sectionNotes:
		note := m.selectedNote()
		if note == nil {
			return itemMetaStyle.Render("No note selected.")
		}
		header := headerStyle.Render(truncateToWidth(note.DisplayTitle(), width))
		meta := itemMetaStyle.Render("updated " + relativeTime(note.UpdatedAt))
		if note.Public {
			meta += "  " + publicMarkStyle.Render("⇗ public")
		}
		body := renderMarkdown(note.Content, width)
		return lipgloss.JoinVertical(lipgloss.Left, header, meta, "", body)
	case sectionFeeds:
		if cursor < 0 || cursor >= len(m.feedList) {
			return itemMetaStyle.Render("No feed selected.")
		}
		feed := m.feedList[cursor]
		return lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render(truncateToWidth(feed.Title, width)),
			itemMetaStyle.Render(feed.URL),
		)
	case sectionArticles:
		if cursor < 0 || cursor >= len(m.articleList) {
			return itemMetaStyle.Render("No article selected.")
		}
		article := m.articleList[cursor]
		return lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render(truncateToWidth(article.Title, width)),
			itemMetaStyle.Render(article.URL),
			"",
			article.Excerpt,
		)
	default:
		if cursor < 0 || cursor >= len(m.inboxList) {
			return itemMetaStyle.Render("No message selected.")
		}
		message := m.inboxList[cursor]
		return lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render(truncateToWidth(message.Subject, width)),
			itemMetaStyle.Render("from "+message.From),
		)
	}
}

func relativeTime(at time.Time) string {
	if at.IsZero() {
		return "never"
	}
	delta := time.Since(at)
	switch {
	case delta < time.Minute:
		return "just now"
	case delta < time.Hour:
		return fmt.Sprintf("%dm ago", int(delta.Minutes()))
	case delta < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(delta.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(delta.Hours()/24))
	}
}

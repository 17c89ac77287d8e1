package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quill/internal/client"
	"quill/internal/editor"
	"quill/internal/logging"
	"quill/internal/store"
	"quill/internal/types"
)

const (
	tickInterval     = 100 * time.Millisecond
	maxChunksPerTick = 64
	minListWidth     = 24
	maxListWidth     = 40
	minContentWidth  = 20
	minContentHeight = 6
)

type uiMode int

const (
	uiModeBrowse uiMode = iota
	uiModeEditor
	uiModeAssistant
	uiModeReader
)

type Model struct {
	notes     NoteStore
	feeds     FeedAPI
	articles  ArticleAPI
	inbox     InboxAPI
	assistant AssistantAPI
	states    store.AppStateStore
	log       logging.Logger

	session *editor.Session
	doc     *editor.TextDocument
	stream  *ChunkStreamController

	mode    uiMode
	section sidebarSection
	cursor  map[sidebarSection]int

	feedList    []*types.Feed
	articleList []*types.Article
	inboxList   []*types.InboxMessage

	titleInput  textinput.Model
	body        textarea.Model
	promptInput textinput.Model
	viewport    viewport.Model

	promptMode editor.InsertMode
	promptText string
	streaming  bool
	history    []types.ChatMessage

	readerTitle  string
	readerSource string

	appState     types.AppState
	hasAppState  bool
	status       string
	lastStoreErr string
	width        int
	height       int
	focusTitle   bool

	toast         toast
	startupToasts []toast
}

// Options wires the model's collaborators. Notes and States are required;
// the client covers the remaining product surface.
type Options struct {
	Client           *client.Client
	Notes            NoteStore
	States           store.AppStateStore
	DebounceInterval time.Duration
	Log              logging.Logger
}

func NewModel(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	api := NewClientAPI(opts.Client)

	doc := editor.NewTextDocument("")
	saver := editor.NewSaver(opts.Notes, opts.DebounceInterval)
	session := editor.NewSession(opts.Notes, saver, doc)

	title := textinput.New()
	title.Placeholder = types.UntitledTitle
	title.CharLimit = 200

	body := textarea.New()
	body.Placeholder = "Start writing…"
	body.ShowLineNumbers = false

	prompt := textinput.New()
	prompt.Placeholder = "Ask the assistant…"
	prompt.CharLimit = 500

	vp := viewport.New(minContentWidth, minContentHeight)

	return Model{
		notes:       opts.Notes,
		feeds:       api,
		articles:    api,
		inbox:       api,
		assistant:   api,
		states:      opts.States,
		log:         log,
		session:     session,
		doc:         doc,
		stream:      NewChunkStreamController(maxChunksPerTick),
		mode:        uiModeBrowse,
		section:     sectionNotes,
		cursor:      map[sidebarSection]int{},
		titleInput:  title,
		body:        body,
		promptInput: prompt,
		viewport:    vp,
	}
}

func Run(opts Options) error {
	model := NewModel(opts)
	p := tea.NewProgram(&model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		loadAppStateCmd(m.states),
		fetchNotesCmd(m.notes),
		fetchFeedsCmd(m.feeds),
		fetchArticlesCmd(m.articles),
		fetchInboxCmd(m.inbox),
		tickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd()
	case appStateMsg:
		if msg.err != nil {
			m.enqueueStartupToast(toastLevelWarning, "state load failed: "+msg.err.Error())
			return m, nil
		}
		if msg.state != nil {
			m.appState = *msg.state
			m.hasAppState = true
			m.applyTheme(m.appState.Theme)
			if id := m.appState.LastNoteID; id != "" && m.mode == uiModeBrowse {
				if _, ok := m.notes.Get(id); ok {
					return m, m.openNote(id)
				}
				// The list fetch may still be in flight; deep-link the note.
				return m, fetchNoteCmd(m.notes, id)
			}
		}
		return m, nil
	case appStateSavedMsg:
		if msg.err != nil {
			m.showWarningToast("state save failed: " + msg.err.Error())
		}
		return m, nil
	case notesLoadedMsg:
		if msg.err != nil {
			m.enqueueStartupToast(toastLevelError, "notes load failed")
			return m, nil
		}
		m.clampCursors()
		m.status = "notes loaded"
		return m, nil
	case noteFetchedMsg:
		if msg.err != nil {
			m.showWarningToast("could not reopen last note: " + msg.err.Error())
			return m, nil
		}
		if msg.note != nil && m.mode == uiModeBrowse {
			return m, m.openNote(msg.note.ID)
		}
		return m, nil
	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorToast("delete failed: " + msg.err.Error())
			return m, nil
		}
		m.clampCursors()
		m.showInfoToast("note deleted")
		return m, nil
	case shareToggledMsg:
		return m, m.handleShareToggled(msg)
	case feedsMsg:
		if msg.err != nil {
			m.enqueueStartupToast(toastLevelWarning, "feeds load failed")
			return m, nil
		}
		m.feedList = msg.feeds
		m.clampCursors()
		return m, nil
	case feedDeletedMsg:
		if msg.err != nil {
			m.showErrorToast("feed delete failed: " + msg.err.Error())
			return m, nil
		}
		m.showInfoToast("feed removed")
		return m, fetchFeedsCmd(m.feeds)
	case articlesMsg:
		if msg.err != nil {
			m.enqueueStartupToast(toastLevelWarning, "articles load failed")
			return m, nil
		}
		m.articleList = msg.articles
		m.clampCursors()
		return m, nil
	case articleMsg:
		if msg.err != nil {
			m.showErrorToast("article load failed: " + msg.err.Error())
			return m, nil
		}
		m.openReader(msg.article.Title, msg.article.Content)
		return m, nil
	case inboxMsg:
		if msg.err != nil {
			m.enqueueStartupToast(toastLevelWarning, "inbox load failed")
			return m, nil
		}
		m.inboxList = msg.messages
		m.clampCursors()
		return m, nil
	case inboxMessageMsg:
		if msg.err != nil {
			m.showErrorToast("message load failed: " + msg.err.Error())
			return m, nil
		}
		m.openReader(msg.message.Subject, msg.message.Body)
		return m, nil
	case assistantStreamMsg:
		m.handleAssistantStream(msg)
		return m, nil
	case shareLinkCopiedMsg:
		if msg.err != nil {
			m.showErrorToast("copy failed: " + msg.err.Error())
			return m, nil
		}
		if msg.method == clipboardMethodOSC52 {
			m.showInfoToast("public link sent to terminal clipboard")
			return m, nil
		}
		m.showInfoToast("public link copied")
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == uiModeReader {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case uiModeEditor:
		return m.handleEditorKey(msg)
	case uiModeAssistant:
		return m.handleAssistantKey(msg)
	case uiModeReader:
		return m.handleReaderKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m *Model) handleTick(now time.Time) {
	if m.stream.Active() {
		changed, done := m.stream.ConsumeTick()
		if changed {
			m.syncEditorFromDocument()
		}
		if done {
			m.finishAssistant()
		}
	}
	if err := m.notes.Err(); err != "" && err != m.lastStoreErr {
		m.showErrorToast(err)
	}
	m.lastStoreErr = m.notes.Err()
	if m.toast.text != "" && !m.toast.active(now) {
		m.clearToast()
	}
	m.maybeShowNextStartupToast(now)
}

func (m *Model) applyTheme(theme string) {
	setMarkdownBackgroundDark(theme != "light")
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	contentHeight := max(minContentHeight, height-3)
	contentWidth := max(minContentWidth, width-m.listWidth()-3)

	m.titleInput.Width = contentWidth - 2
	m.promptInput.Width = contentWidth - 2
	m.body.SetWidth(max(minContentWidth, width-2))
	m.body.SetHeight(contentHeight - 2)
	m.viewport.Width = max(minContentWidth, width-2)
	m.viewport.Height = contentHeight
	if m.mode == uiModeReader && m.readerSource != "" {
		m.viewport.SetContent(renderMarkdown(m.readerSource, m.viewport.Width))
	}
}

func (m *Model) listWidth() int {
	if m.width <= 0 {
		return minListWidth
	}
	w := m.width / 3
	if w < minListWidth {
		w = minListWidth
	}
	if w > maxListWidth {
		w = maxListWidth
	}
	return w
}

func (m *Model) View() string {
	var body string
	switch m.mode {
	case uiModeEditor:
		body = m.viewEditor()
	case uiModeAssistant:
		body = m.viewAssistant()
	case uiModeReader:
		body = m.viewReader()
	default:
		body = m.viewBrowse()
	}

	help := helpStyle.Render(m.helpText())
	status := statusStyle.Render(m.status)
	statusLine := renderStatusLine(m.width, help, status)
	toast := m.toastLine(m.width)

	lines := []string{body}
	if toast != "" {
		lines = append(lines, toast)
	}
	lines = append(lines, statusLine)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) helpText() string {
	switch m.mode {
	case uiModeEditor:
		if m.streaming {
			return "esc cancel assistant"
		}
		return "tab title/body · ctrl+a assistant · esc back"
	case uiModeAssistant:
		return "enter send · esc cancel"
	case uiModeReader:
		return "j/k scroll · esc back"
	default:
		return "h/l section · j/k move · enter open · n new · d delete · s share · t theme · r refresh · q quit"
	}
}

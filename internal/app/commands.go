package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quill/internal/client"
	"quill/internal/store"
	"quill/internal/types"
)

func fetchNotesCmd(notes NoteStore) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		err := notes.FetchAll(ctx)
		return notesLoadedMsg{err: err}
	}
}

func fetchNoteCmd(notes NoteStore, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		note, err := notes.FetchOne(ctx, id)
		return noteFetchedMsg{note: note, err: err}
	}
}

func deleteNoteCmd(notes NoteStore, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		err := notes.Delete(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

// toggleShareCmd flips the note's public flag. Publishing returns the note
// with server-assigned public_id and public_url.
func toggleShareCmd(notes NoteStore, note *types.Note) tea.Cmd {
	return func() tea.Msg {
		if note == nil {
			return shareToggledMsg{}
		}
		update := types.CloneNote(note)
		update.Public = !update.Public
		ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
		defer cancel()
		saved, err := notes.Upsert(ctx, update)
		return shareToggledMsg{note: saved, err: err}
	}
}

func fetchFeedsCmd(api FeedAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		feeds, err := api.ListFeeds(ctx)
		return feedsMsg{feeds: feeds, err: err}
	}
}

func deleteFeedCmd(api FeedAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		err := api.DeleteFeed(ctx, id)
		return feedDeletedMsg{id: id, err: err}
	}
}

func fetchArticlesCmd(api ArticleAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		articles, err := api.ListArticles(ctx)
		return articlesMsg{articles: articles, err: err}
	}
}

func fetchArticleCmd(api ArticleAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
		defer cancel()
		article, err := api.GetArticle(ctx, id)
		return articleMsg{article: article, err: err}
	}
}

func fetchInboxCmd(api InboxAPI) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		messages, err := api.ListInbox(ctx)
		return inboxMsg{messages: messages, err: err}
	}
}

func fetchInboxMessageCmd(api InboxAPI, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Second)
		defer cancel()
		message, err := api.GetInboxMessage(ctx, id)
		return inboxMessageMsg{message: message, err: err}
	}
}

func loadAppStateCmd(states store.AppStateStore) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		state, err := states.Load(ctx)
		return appStateMsg{state: state, err: err}
	}
}

func saveAppStateCmd(states store.AppStateStore, state types.AppState) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		err := states.Save(ctx, &state)
		return appStateSavedMsg{err: err}
	}
}

// openAssistantStreamCmd starts a completion request. The stream must outlive
// this command, so cancellation is owned by the returned cancel func, not a
// deadline.
func openAssistantStreamCmd(api AssistantAPI, noteID string, req client.AssistantRequest) tea.Cmd {
	return func() tea.Msg {
		ch, cancel, err := api.AssistantStream(context.Background(), req)
		return assistantStreamMsg{noteID: noteID, ch: ch, cancel: cancel, err: err}
	}
}

// copyShareLinkCmd puts the public URL on the clipboard and reports which
// path took it, so the toast can say where the link landed.
func copyShareLinkCmd(url string) tea.Cmd {
	return func() tea.Msg {
		method, err := copyShareLink(url)
		return shareLinkCopiedMsg{method: method, err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

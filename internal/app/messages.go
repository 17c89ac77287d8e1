package app

import (
	"time"

	"quill/internal/types"
)

type notesLoadedMsg struct {
	err error
}

type noteFetchedMsg struct {
	note *types.Note
	err  error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type shareToggledMsg struct {
	note *types.Note
	err  error
}

type feedsMsg struct {
	feeds []*types.Feed
	err   error
}

type feedDeletedMsg struct {
	id  string
	err error
}

type articlesMsg struct {
	articles []*types.Article
	err      error
}

type articleMsg struct {
	article *types.Article
	err     error
}

type inboxMsg struct {
	messages []*types.InboxMessage
	err      error
}

type inboxMessageMsg struct {
	message *types.InboxMessage
	err     error
}

type appStateMsg struct {
	state *types.AppState
	err   error
}

type appStateSavedMsg struct {
	err error
}

type assistantStreamMsg struct {
	noteID string
	ch     <-chan string
	cancel func()
	err    error
}

type shareLinkCopiedMsg struct {
	method clipboardMethod
	err    error
}

type tickMsg time.Time

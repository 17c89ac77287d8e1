package app

import (
	"context"

	"quill/internal/client"
	"quill/internal/types"
)

type FeedAPI interface {
	ListFeeds(ctx context.Context) ([]*types.Feed, error)
	AddFeed(ctx context.Context, feed *types.Feed) (*types.Feed, error)
	DeleteFeed(ctx context.Context, id string) error
}

type ArticleAPI interface {
	ListArticles(ctx context.Context) ([]*types.Article, error)
	GetArticle(ctx context.Context, id string) (*types.Article, error)
	SaveArticle(ctx context.Context, pageURL string) (*types.Article, error)
}

type InboxAPI interface {
	ListInbox(ctx context.Context) ([]*types.InboxMessage, error)
	GetInboxMessage(ctx context.Context, id string) (*types.InboxMessage, error)
}

type AssistantAPI interface {
	AssistantStream(ctx context.Context, req client.AssistantRequest) (<-chan string, func(), error)
}

// NoteStore is the slice of the notes collection store the UI drives.
type NoteStore interface {
	FetchAll(ctx context.Context) error
	FetchOne(ctx context.Context, id string) (*types.Note, error)
	Upsert(ctx context.Context, note *types.Note) (*types.Note, error)
	Delete(ctx context.Context, id string) error
	Notes() []*types.Note
	Get(id string) (*types.Note, bool)
	SetCurrent(id string)
	Err() string
	Loading() bool
}

type ClientAPI struct {
	client *client.Client
}

func NewClientAPI(client *client.Client) *ClientAPI {
	return &ClientAPI{client: client}
}

func (a *ClientAPI) ListFeeds(ctx context.Context) ([]*types.Feed, error) {
	return a.client.ListFeeds(ctx)
}

func (a *ClientAPI) AddFeed(ctx context.Context, feed *types.Feed) (*types.Feed, error) {
	return a.client.AddFeed(ctx, feed)
}

func (a *ClientAPI) DeleteFeed(ctx context.Context, id string) error {
	return a.client.DeleteFeed(ctx, id)
}

func (a *ClientAPI) ListArticles(ctx context.Context) ([]*types.Article, error) {
	return a.client.ListArticles(ctx)
}

func (a *ClientAPI) GetArticle(ctx context.Context, id string) (*types.Article, error) {
	return a.client.GetArticle(ctx, id)
}

func (a *ClientAPI) SaveArticle(ctx context.Context, pageURL string) (*types.Article, error) {
	return a.client.SaveArticle(ctx, pageURL)
}

func (a *ClientAPI) ListInbox(ctx context.Context) ([]*types.InboxMessage, error) {
	return a.client.ListInbox(ctx)
}

func (a *ClientAPI) GetInboxMessage(ctx context.Context, id string) (*types.InboxMessage, error) {
	return a.client.GetInboxMessage(ctx, id)
}

func (a *ClientAPI) AssistantStream(ctx context.Context, req client.AssistantRequest) (<-chan string, func(), error) {
	return a.client.AssistantStream(ctx, req)
}

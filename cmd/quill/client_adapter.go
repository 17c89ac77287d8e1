package main

import (
	"context"
	"os"
	"path/filepath"

	"quill/internal/app"
	quillclient "quill/internal/client"
	"quill/internal/config"
	"quill/internal/logging"
	"quill/internal/notes"
	"quill/internal/store"
	"quill/internal/types"
)

type clientFactory func() (commandClient, error)

type commandClient interface {
	ListNotes(ctx context.Context) ([]*types.Note, error)
	GetNote(ctx context.Context, id string) (*types.Note, error)
	GetPublicNote(ctx context.Context, publicID string) (*types.Note, error)
	UpsertNote(ctx context.Context, note *types.Note) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
	GetArticle(ctx context.Context, id string) (*types.Article, error)
	SaveArticle(ctx context.Context, pageURL string) (*types.Article, error)
	AddFeed(ctx context.Context, feed *types.Feed) (*types.Feed, error)
	RunUI() error
}

type quillClientAdapter struct {
	client   *quillclient.Client
	settings config.Settings
	log      logging.Logger
}

func newQuillClient() (commandClient, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, logging.ParseLevel(settings.LogLevel()))
	client, err := quillclient.New(settings, log)
	if err != nil {
		return nil, err
	}
	return &quillClientAdapter{client: client, settings: settings, log: log}, nil
}

func (c *quillClientAdapter) ListNotes(ctx context.Context) ([]*types.Note, error) {
	return c.client.ListNotes(ctx)
}

func (c *quillClientAdapter) GetNote(ctx context.Context, id string) (*types.Note, error) {
	return c.client.GetNote(ctx, id)
}

func (c *quillClientAdapter) GetPublicNote(ctx context.Context, publicID string) (*types.Note, error) {
	return c.client.GetPublicNote(ctx, publicID)
}

func (c *quillClientAdapter) UpsertNote(ctx context.Context, note *types.Note) (*types.Note, error) {
	return c.client.UpsertNote(ctx, note)
}

func (c *quillClientAdapter) DeleteNote(ctx context.Context, id string) error {
	return c.client.DeleteNote(ctx, id)
}

func (c *quillClientAdapter) GetArticle(ctx context.Context, id string) (*types.Article, error) {
	return c.client.GetArticle(ctx, id)
}

func (c *quillClientAdapter) SaveArticle(ctx context.Context, pageURL string) (*types.Article, error) {
	return c.client.SaveArticle(ctx, pageURL)
}

func (c *quillClientAdapter) AddFeed(ctx context.Context, feed *types.Feed) (*types.Feed, error) {
	return c.client.AddFeed(ctx, feed)
}

func (c *quillClientAdapter) RunUI() error {
	statePath, err := config.StatePath()
	if err != nil {
		return err
	}
	// Stderr is the terminal while the UI runs; log to a file instead.
	log := uiLogger(c.settings)
	client, err := quillclient.New(c.settings, log)
	if err != nil {
		return err
	}
	return app.Run(app.Options{
		Client:           client,
		Notes:            notes.NewStore(client, log),
		States:           store.NewFileAppStateStore(statePath),
		DebounceInterval: c.settings.DebounceInterval(),
		Log:              log,
	})
}

func uiLogger(settings config.Settings) logging.Logger {
	dataDir, err := config.DataDir()
	if err != nil {
		return logging.Nop()
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return logging.Nop()
	}
	file, err := os.OpenFile(filepath.Join(dataDir, "ui.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logging.Nop()
	}
	return logging.New(file, logging.ParseLevel(settings.LogLevel()))
}

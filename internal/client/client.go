package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quill/internal/config"
	"quill/internal/logging"
	"quill/internal/types"
)

type Client struct {
	baseURL string
	tokens  TokenSource
	http    *http.Client
	log     logging.Logger
}

// New builds a client from settings: env token first, then the session
// provider's token file.
func New(settings config.Settings, log logging.Logger) (*Client, error) {
	var tokens TokenSource
	if token := config.EnvToken(); token != "" {
		tokens = StaticTokenSource(token)
	} else {
		tokenPath, err := config.TokenPath()
		if err != nil {
			return nil, err
		}
		tokens = NewFileTokenSource(tokenPath)
	}
	return NewWithBaseURL(settings.BaseURL(), tokens, settings.RequestTimeout(), log), nil
}

func NewWithBaseURL(baseURL string, tokens TokenSource, timeout time.Duration, log logging.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) ListNotes(ctx context.Context) ([]*types.Note, error) {
	var notes []*types.Note
	if err := c.doJSON(ctx, http.MethodGet, "/notes/all", nil, true, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (*types.Note, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("note id is required")
	}
	var note types.Note
	if err := c.doJSON(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), nil, true, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// GetPublicNote fetches the read-only view of a shared note. No auth.
func (c *Client) GetPublicNote(ctx context.Context, publicID string) (*types.Note, error) {
	if strings.TrimSpace(publicID) == "" {
		return nil, errors.New("public id is required")
	}
	var note types.Note
	if err := c.doJSON(ctx, http.MethodGet, "/notes/public/"+url.PathEscape(publicID), nil, false, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpsertNote creates or updates a note keyed by its client-minted id and
// returns the server's saved copy with authoritative timestamps.
func (c *Client) UpsertNote(ctx context.Context, note *types.Note) (*types.Note, error) {
	if note == nil {
		return nil, errors.New("note is required")
	}
	if strings.TrimSpace(note.ID) == "" {
		return nil, errors.New("note id is required")
	}
	var saved types.Note
	if err := c.doJSON(ctx, http.MethodPost, "/notes/upsert", note, true, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("note id is required")
	}
	var ack DeleteResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil, true, &ack); err != nil {
		return err
	}
	if !ack.OK {
		return fmt.Errorf("delete of note %s not acknowledged", id)
	}
	return nil
}

func (c *Client) ListFeeds(ctx context.Context) ([]*types.Feed, error) {
	var feeds []*types.Feed
	if err := c.doJSON(ctx, http.MethodGet, "/feeds/all", nil, true, &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

func (c *Client) AddFeed(ctx context.Context, feed *types.Feed) (*types.Feed, error) {
	if feed == nil {
		return nil, errors.New("feed is required")
	}
	var saved types.Feed
	if err := c.doJSON(ctx, http.MethodPost, "/feeds", feed, true, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) DeleteFeed(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("feed id is required")
	}
	return c.doJSON(ctx, http.MethodDelete, "/feeds/"+url.PathEscape(id), nil, true, nil)
}

func (c *Client) ListArticles(ctx context.Context) ([]*types.Article, error) {
	var articles []*types.Article
	if err := c.doJSON(ctx, http.MethodGet, "/articles/all", nil, true, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (c *Client) GetArticle(ctx context.Context, id string) (*types.Article, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("article id is required")
	}
	var article types.Article
	if err := c.doJSON(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil, true, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *Client) SaveArticle(ctx context.Context, pageURL string) (*types.Article, error) {
	if strings.TrimSpace(pageURL) == "" {
		return nil, errors.New("url is required")
	}
	var article types.Article
	req := SaveArticleRequest{URL: strings.TrimSpace(pageURL)}
	if err := c.doJSON(ctx, http.MethodPost, "/articles", req, true, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (c *Client) ListInbox(ctx context.Context) ([]*types.InboxMessage, error) {
	var messages []*types.InboxMessage
	if err := c.doJSON(ctx, http.MethodGet, "/inbox/all", nil, true, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) GetInboxMessage(ctx context.Context, id string) (*types.InboxMessage, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("message id is required")
	}
	var message types.InboxMessage
	if err := c.doJSON(ctx, http.MethodGet, "/inbox/"+url.PathEscape(id), nil, true, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, requireAuth bool, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requireAuth {
		token, err := c.tokens.Token()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp)
		c.log.Debug("api error", logging.F("method", method), logging.F("path", path), logging.F("status", resp.StatusCode))
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	type errorPayload struct {
		Error string `json:"error"`
	}
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.StatusCode == http.StatusNotFound
}

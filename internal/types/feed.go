package types

import "time"

type Feed struct {
	ID      string    `json:"id"`
	UserID  string    `json:"user_id,omitempty"`
	Title   string    `json:"title"`
	URL     string    `json:"url"`
	SiteURL string    `json:"site_url,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

type Article struct {
	ID      string     `json:"id"`
	UserID  string     `json:"user_id,omitempty"`
	FeedID  string     `json:"feed_id,omitempty"`
	Title   string     `json:"title"`
	URL     string     `json:"url"`
	Author  string     `json:"author,omitempty"`
	Excerpt string     `json:"excerpt,omitempty"`
	Content string     `json:"content"`
	SavedAt time.Time  `json:"saved_at"`
	ReadAt  *time.Time `json:"read_at,omitempty"`
}

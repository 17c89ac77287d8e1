package client

import "quill/internal/types"

type AssistantRequest struct {
	Prompt   string              `json:"prompt"`
	Content  string              `json:"content"`
	Messages []types.ChatMessage `json:"messages"`
}

type SaveArticleRequest struct {
	URL string `json:"url"`
}

type DeleteResponse struct {
	OK bool `json:"ok"`
}

package types

// ChatMessage is one turn of prior assistant conversation sent along with a
// completion request for context.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

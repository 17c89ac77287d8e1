package client

import (
	"errors"
	"os"
	"strings"
)

// TokenSource supplies the bearer token for authenticated calls. Tokens are
// minted by the external session provider and may rotate, so the source is
// consulted on every request instead of cached in the client.
type TokenSource interface {
	Token() (string, error)
}

// StaticTokenSource returns a fixed token. Used for tests and for tokens
// passed via environment.
type StaticTokenSource string

func (s StaticTokenSource) Token() (string, error) {
	token := strings.TrimSpace(string(s))
	if token == "" {
		return "", errors.New("token is empty")
	}
	return token, nil
}

// FileTokenSource reads the token file maintained by the session provider's
// login helper on every call.
type FileTokenSource struct {
	path string
}

func NewFileTokenSource(path string) *FileTokenSource {
	return &FileTokenSource{path: path}
}

func (s *FileTokenSource) Token() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New("not signed in; token file missing")
		}
		return "", err
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", errors.New("not signed in; token file empty")
	}
	return token, nil
}

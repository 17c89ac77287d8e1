package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultBaseURL        = "http://127.0.0.1:8080"
	defaultTimeoutSeconds = 10
	defaultDebounceMS     = 1000
	defaultAssistantModel = "standard"
)

// Environment variables override file settings. A .env file in the working
// directory is honored so dev setups match the hosted product's config style.
const (
	envBaseURL = "QUILL_API_URL"
	envToken   = "QUILL_TOKEN"
)

type Settings struct {
	API       APISettings       `toml:"api"`
	Editor    EditorSettings    `toml:"editor"`
	Assistant AssistantSettings `toml:"assistant"`
	Logging   LoggingSettings   `toml:"logging"`
}

type APISettings struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type EditorSettings struct {
	DebounceMS int `toml:"debounce_ms"`
}

type AssistantSettings struct {
	Model string `toml:"model"`
}

type LoggingSettings struct {
	Level string `toml:"level"`
}

func DefaultSettings() Settings {
	return Settings{
		API: APISettings{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Editor: EditorSettings{
			DebounceMS: defaultDebounceMS,
		},
		Assistant: AssistantSettings{
			Model: defaultAssistantModel,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// LoadSettings reads settings.toml from the data directory. A missing file
// yields defaults; environment variables still apply on top.
func LoadSettings() (Settings, error) {
	_ = godotenv.Load()
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	return loadSettingsFromPath(path)
}

func loadSettingsFromPath(path string) (Settings, error) {
	settings := DefaultSettings()
	if err := readTOML(path, &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (s Settings) BaseURL() string {
	if fromEnv := strings.TrimSpace(os.Getenv(envBaseURL)); fromEnv != "" {
		return strings.TrimRight(fromEnv, "/")
	}
	url := strings.TrimSpace(s.API.BaseURL)
	if url == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(url, "/")
}

// EnvToken returns a token supplied via environment, if any. It takes
// precedence over the token file from the session provider.
func EnvToken() string {
	return strings.TrimSpace(os.Getenv(envToken))
}

func (s Settings) RequestTimeout() time.Duration {
	seconds := s.API.TimeoutSeconds
	if seconds <= 0 {
		seconds = defaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

func (s Settings) DebounceInterval() time.Duration {
	ms := s.Editor.DebounceMS
	if ms <= 0 {
		ms = defaultDebounceMS
	}
	return time.Duration(ms) * time.Millisecond
}

func (s Settings) AssistantModel() string {
	model := strings.TrimSpace(s.Assistant.Model)
	if model == "" {
		return defaultAssistantModel
	}
	return model
}

func (s Settings) LogLevel() string {
	level := strings.TrimSpace(s.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

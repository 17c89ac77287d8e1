package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"

	"quill/internal/config"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{stdout: stdout, stderr: stderr}
}

type configOutput struct {
	SettingsPath string `json:"settings_path" toml:"settings_path"`
	TokenPath    string `json:"token_path" toml:"token_path"`
	StatePath    string `json:"state_path" toml:"state_path"`

	BaseURL    string `json:"base_url" toml:"base_url"`
	TimeoutSec int    `json:"timeout_seconds" toml:"timeout_seconds"`
	DebounceMS int    `json:"debounce_ms" toml:"debounce_ms"`
	Model      string `json:"assistant_model" toml:"assistant_model"`
	LogLevel   string `json:"log_level" toml:"log_level"`
}

// Run prints the effective configuration: file settings with environment
// overrides already applied.
func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	format := fs.String("format", "toml", "output format: toml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	settingsPath, err := config.SettingsPath()
	if err != nil {
		return err
	}
	tokenPath, err := config.TokenPath()
	if err != nil {
		return err
	}
	statePath, err := config.StatePath()
	if err != nil {
		return err
	}

	out := configOutput{
		SettingsPath: settingsPath,
		TokenPath:    tokenPath,
		StatePath:    statePath,
		BaseURL:      settings.BaseURL(),
		TimeoutSec:   int(settings.RequestTimeout().Seconds()),
		DebounceMS:   int(settings.DebounceInterval().Milliseconds()),
		Model:        settings.AssistantModel(),
		LogLevel:     settings.LogLevel(),
	}

	switch *format {
	case "json":
		encoder := json.NewEncoder(c.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(out)
	case "toml":
		encoded, err := toml.Marshal(out)
		if err != nil {
			return err
		}
		_, err = c.stdout.Write(encoded)
		return err
	default:
		return fmt.Errorf("unknown format: %s", *format)
	}
}

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"gopkg.in/yaml.v3"

	"github.com/sjwayrhz/Lankalive/internal/api"
	"github.com/sjwayrhz/Lankalive/internal/config"
	"github.com/sjwayrhz/Lankalive/internal/logger"
	"github.com/sjwayrhz/Lankalive/internal/session"
)

// tokenStore is swapped out in tests; every command reads and writes the
// session through it.
var tokenStore session.Store = session.NewKeyringStore()

// newClient builds the API client shared by all commands: config from the
// environment, keyring-backed session, zerolog request tracing.
func newClient() (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	client := api.New(cfg.BaseURL(), tokenStore)
	client.SetLogger(log)
	client.OnAuthExpired(func() {
		log.Warn().Msg("session expired; stored token cleared")
	})
	client.OnForbidden(func() {
		log.Warn().Msg("insufficient permission for this operation")
	})
	return client, nil
}

// confirm asks before destructive operations. Pass --yes to skip.
func confirm(label string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return false
	}
	return true
}

// readPayloadFile decodes a YAML or JSON payload file into out. The YAML is
// re-encoded as JSON first so the API structs' json tags apply to both
// formats (yaml.v3 would otherwise ignore them).
func readPayloadFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse payload file %s: %w", path, err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert payload: %w", err)
	}
	if err := json.Unmarshal(jsonData, out); err != nil {
		return fmt.Errorf("failed to parse payload file %s: %w", path, err)
	}
	return nil
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL_Resolution(t *testing.T) {
	tests := []struct {
		name    string
		apiBase string
		domain  string
		want    string
	}{
		{
			name:    "explicit base wins over domain",
			apiBase: "http://localhost:5000",
			domain:  "lankalive.lk",
			want:    "http://localhost:5000",
		},
		{
			name:   "domain builds https base",
			domain: "lankalive.lk",
			want:   "https://lankalive.lk",
		},
		{
			name: "default is same-origin",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{APIBase: tt.apiBase, Domain: tt.domain}
			assert.Equal(t, tt.want, cfg.BaseURL())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Logging.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LANKALIVE_API_BASE", "https://staging.lankalive.lk")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.lankalive.lk", cfg.BaseURL())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

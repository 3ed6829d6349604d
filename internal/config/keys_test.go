package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscraperpro/jobview/internal/config"
)

func TestGetSet(t *testing.T) {
	setHome(t)

	tests := []struct {
		key   string
		value string
		want  string
	}{
		{key: "api.base_url", value: "https://x.example.com", want: "https://x.example.com"},
		{key: "api.timeout", value: "1m30s", want: "1m30s"},
		{key: "api.timeout", value: "20", want: "20s"},
		{key: "api.rate_limit", value: "2.5", want: "2.5"},
		{key: "api.burst", value: "3", want: "3"},
		{key: "api.user_agent", value: "bot/1", want: "bot/1"},
		{key: "output.default_format", value: "JSON", want: "json"},
		{key: "logging.level", value: "Debug", want: "debug"},
		{key: "logging.format", value: "json", want: "json"},
		{key: "logging.file", value: "/tmp/jv.log", want: "/tmp/jv.log"},
		{key: "ui.show_filters", value: "true", want: "true"},
		{key: "UI.Date_Format", value: "absolute", want: "absolute"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := config.Default()
			require.NoError(t, cfg.Set(tt.key, tt.value))
			got, err := cfg.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_InvalidValues(t *testing.T) {
	setHome(t)
	cfg := config.Default()

	for key, value := range map[string]string{
		"api.timeout":     "later",
		"api.rate_limit":  "fast",
		"api.burst":       "many",
		"ui.show_filters": "maybe",
	} {
		err := cfg.Set(key, value)
		require.ErrorIs(t, err, config.ErrInvalidValue, key)
		assert.Contains(t, err.Error(), key)
	}
}

func TestGetSet_UnknownKey(t *testing.T) {
	setHome(t)
	cfg := config.Default()

	_, err := cfg.Get("api.password")
	require.ErrorIs(t, err, config.ErrInvalidConfigKey)
	require.ErrorIs(t, cfg.Set("nope", "1"), config.ErrInvalidConfigKey)
}

func TestList(t *testing.T) {
	setHome(t)
	cfg := config.Default()

	list := cfg.List()
	require.Len(t, list, len(config.Keys))
	assert.Equal(t, [2]string{"api.base_url", config.DefaultBaseURL}, list[0])
	for i, kv := range list {
		assert.Equal(t, config.Keys[i], kv[0])
	}
}

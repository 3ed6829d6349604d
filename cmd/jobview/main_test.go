package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobscraperpro/jobview/internal/cli"
	"github.com/jobscraperpro/jobview/internal/config"
	"github.com/jobscraperpro/jobview/pkg/version"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Cleanup(config.ResetGlobalConfigForTest)
}

func TestRun(t *testing.T) {
	isolate(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 1, "title": "Go Developer, Mumbai", "location": "Mumbai"}]`))
	}))
	t.Cleanup(srv.Close)

	t.Run("success", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := run(context.Background(), []string{"--api-url", srv.URL, "jobs", "list"}, &out, &errOut)
		assert.Equal(t, exitOK, code, errOut.String())
		assert.Contains(t, out.String(), "Go Developer")
		assert.NotContains(t, out.String(), "Go Developer, Mumbai")
	})

	t.Run("failure", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := run(context.Background(), []string{"jobs", "list", "--output", "xml"}, &out, &errOut)
		assert.Equal(t, exitError, code)
		assert.Contains(t, errOut.String(), "unsupported output format")
	})

	t.Run("interrupted", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var out, errOut bytes.Buffer
		code := run(ctx, []string{"--api-url", srv.URL, "jobs", "list"}, &out, &errOut)
		assert.Equal(t, exitInterrupted, code)
	})
}

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "jobview", root.Use)
		assert.Equal(t, version.GetVersion(), root.Version)
	})
}

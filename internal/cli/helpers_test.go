package cli_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jobscraperpro/jobview/internal/cli"
	"github.com/jobscraperpro/jobview/internal/config"
)

// setupCLITest isolates config and output from the developer's machine.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv("NO_COLOR", "1")
	for _, env := range []string{
		config.EnvConfig, config.EnvAPIURL, config.EnvTimeout,
		config.EnvLogLevel, config.EnvLogFormat, config.EnvOutput,
	} {
		t.Setenv(env, "")
	}
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// executeCmd runs the root command with args and returns stdout and stderr.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const jobListJSON = `[
  {"id": 1, "title": "Golang Developer, Mumbai", "location": "Mumbai", "experience": "2-4 Yrs",
   "salary": "12-18 LPA", "openings": 3, "posted_date": "2025-03-08", "url": "https://jobs.example.com/1"},
  {"id": "2", "title": "Data Engineer", "location": "Pune", "experience": "0-1 Yrs",
   "apply_link": "https://jobs.example.com/2"},
  {"id": 3, "title": "Frontend Developer", "location": "Remote"}
]`

// jobServer is a fake job board API.
type jobServer struct {
	*httptest.Server

	listHits    atomic.Int32
	summaryHits atomic.Int32
	failList    atomic.Bool
}

func newJobServer(t *testing.T) *jobServer {
	t.Helper()
	s := &jobServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/jobs/{$}", func(w http.ResponseWriter, _ *http.Request) {
		s.listHits.Add(1)
		if s.failList.Load() {
			http.Error(w, "database unavailable", http.StatusInternalServerError)
			return
		}
		writeJSON(w, jobListJSON)
	})
	mux.HandleFunc("GET /api/jobs/{id}/{$}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "1":
			writeJSON(w, `{"id": 1, "title": "Golang Developer, Mumbai", "location": "Mumbai",
				"experience": "2-4 Yrs", "url": "https://jobs.example.com/1"}`)
		case "500":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("GET /api/jobs/{id}/summary/{$}", func(w http.ResponseWriter, r *http.Request) {
		s.summaryHits.Add(1)
		switch r.PathValue("id") {
		case "1":
			writeJSON(w, `{"summary": "<p>Build <b>APIs</b> in Go.</p>", "skills": ["Go", "SQL"]}`)
		case "3":
			writeJSON(w, `{}`)
		default:
			http.Error(w, "summary generation failed", http.StatusBadGateway)
		}
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

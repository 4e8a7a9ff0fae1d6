package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(n int) string {
	records := make([]string, n)
	for i := range records {
		records[i] = fmt.Sprintf(`{"s.no": %d, "amt.pledged": %d, "percentage.funded": 186, "title": "Project %d", "currency": "usd"}`,
			i, 1000*(i+1), i+1)
	}
	return "[" + strings.Join(records, ",") + "]"
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	root, c := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "kickview.log")))
	err := root.Execute()
	c.teardown()
	return out.String(), err
}

func TestPrint_Page(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feed(7))
	}))
	defer srv.Close()

	out, err := runCLI(t, "print", "--endpoint", srv.URL, "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Project 6")
	assert.Contains(t, out, "Project 7")
	assert.Contains(t, out, "$6,000")
	assert.Contains(t, out, "Page 2 of 2")
	assert.NotContains(t, out, "Project 5")
}

func TestPrint_PageClamped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"projects": `+feed(3)+`}`)
	}))
	defer srv.Close()

	out, err := runCLI(t, "print", "--endpoint", srv.URL, "--page", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Project 3")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestPrint_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := runCLI(t, "print", "--endpoint", srv.URL)
	require.Error(t, err)
	assert.Equal(t, "Error: 404 Not Found", err.Error())
}

func TestRoot_InvalidEndpoint(t *testing.T) {
	_, err := runCLI(t, "print", "--endpoint", "not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestStoppedBySignal(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	killed := fmt.Errorf("%w: %w", tea.ErrProgramKilled, context.Canceled)

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want bool
	}{
		{"signal cancelled the program", cancelled, killed, true},
		{"killed without cancellation", context.Background(), killed, false},
		{"other error after cancellation", cancelled, errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stoppedBySignal(tt.ctx, tt.err))
		})
	}
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchcast/internal/domain"
)

type stubRunner struct {
	summary *domain.RunSummary
	err     error
	calls   []string
}

func (s *stubRunner) run(name string) (*domain.RunSummary, error) {
	s.calls = append(s.calls, name)
	return s.summary, s.err
}

func (s *stubRunner) RunDaily(context.Context) (*domain.RunSummary, error)   { return s.run("daily") }
func (s *stubRunner) RunHourly(context.Context) (*domain.RunSummary, error)  { return s.run("hourly") }
func (s *stubRunner) RunUrgent(context.Context) (*domain.RunSummary, error)  { return s.run("urgent") }
func (s *stubRunner) RunCoupons(context.Context) (*domain.RunSummary, error) { return s.run("coupons") }

func newTestServer(runner Runner, accessKey string) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewServer(NewHandler(runner, nil, logger, time.Minute, accessKey))
}

func TestTriggerEndpointsRunTheMatchingCycle(t *testing.T) {
	runner := &stubRunner{summary: &domain.RunSummary{
		ID:      "run-1",
		Trigger: "hourly",
		Sent:    3,
		Success: true,
	}}
	srv := newTestServer(runner, "")

	for _, name := range []string{"daily", "hourly", "urgent", "coupons"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/triggers/"+name, nil)
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, name)

		var body struct {
			Success bool `json:"success"`
			Summary struct {
				RunID string `json:"run_id"`
				Sent  int    `json:"sent"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "run-1", body.Summary.RunID)
		assert.Equal(t, 3, body.Summary.Sent)
	}

	assert.Equal(t, []string{"daily", "hourly", "urgent", "coupons"}, runner.calls)
}

func TestTriggerReportsRunFailureWithSummary(t *testing.T) {
	runner := &stubRunner{
		summary: &domain.RunSummary{ID: "run-2", Trigger: "daily", Error: "fetch fixtures: upstream down"},
		err:     errors.New("fetch fixtures: upstream down"),
	}
	srv := newTestServer(runner, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/triggers/daily", nil)
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, "fetch fixtures")
}

func TestAccessKeyGuardsTriggers(t *testing.T) {
	runner := &stubRunner{summary: &domain.RunSummary{Success: true}}
	srv := newTestServer(runner, "secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/triggers/hourly", nil)
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, runner.calls)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/triggers/hourly", nil)
	req.Header.Set("X-Access-Key", "secret")
	srv.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"hourly"}, runner.calls)
}

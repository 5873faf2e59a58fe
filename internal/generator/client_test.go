package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchcast/internal/config"
	"matchcast/internal/domain"
)

func testClient(baseURL string) *Client {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     5 * time.Millisecond,
		},
	}, logger)
}

func TestGeneratePostsRequestAndDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.ContentBetting, req.ContentType)
		assert.Equal(t, "en", req.Language)
		assert.Equal(t, []int64{1, 2}, req.ChannelIDs)

		fmt.Fprint(w, `{
			"items": [{"title": "Tip", "body": "Back the home side"}],
			"fallback_used": false,
			"data_source": "odds_feed"
		}`)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.Generate(context.Background(), Request{
		ContentType: domain.ContentBetting,
		Language:    "en",
		ChannelIDs:  []int64{1, 2},
		MaxItems:    1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Tip", resp.Items[0].Title)
	assert.Equal(t, "odds_feed", resp.DataSource)
}

func TestGenerateEmptyItemsIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": [], "data_source": "odds_feed"}`)
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).Generate(context.Background(), Request{ContentType: domain.ContentBetting})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestGenerateRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"items": [{"title": "T", "body": "B"}]}`)
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).Generate(context.Background(), Request{ContentType: domain.ContentNews})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerateGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Generate(context.Background(), Request{ContentType: domain.ContentNews})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}

func TestGenerateHonoursContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	c.initialBackoff = time.Minute // force the retry wait to block on ctx

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Generate(ctx, Request{ContentType: domain.ContentNews})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoffDoublesAndCaps(t *testing.T) {
	c := testClient("http://unused")
	c.initialBackoff = time.Second
	c.maxBackoff = 3 * time.Second

	assert.Equal(t, time.Second, c.calculateBackoff(1))
	assert.Equal(t, 2*time.Second, c.calculateBackoff(2))
	assert.Equal(t, 3*time.Second, c.calculateBackoff(3))
}

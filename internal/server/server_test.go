package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moodtube/internal/ai"
	"moodtube/internal/config"
	"moodtube/internal/playlist"
	"moodtube/internal/youtube"
)

type fakeAssembler struct {
	resp  playlist.Response
	err   error
	calls int
}

func (f *fakeAssembler) Generate(ctx context.Context, prompt, region string) (playlist.Response, error) {
	f.calls++
	return f.resp, f.err
}

func newTestServer(gen PlaylistGenerator) *Server {
	return New(gen, Options{GeminiConfigured: true, YouTubeConfigured: true})
}

func postPlaylist(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-playlist", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestEmptyPromptRejectedBeforeUpstream(t *testing.T) {
	t.Parallel()

	gen := &fakeAssembler{}
	rec := postPlaylist(t, newTestServer(gen), `{"prompt": "   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rec.Code)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no upstream calls, got %d", gen.calls)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("expected explanatory error, got %v", body)
	}
}

func TestInvalidBodyRejected(t *testing.T) {
	t.Parallel()

	gen := &fakeAssembler{}
	rec := postPlaylist(t, newTestServer(gen), `{"prompt": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", rec.Code)
	}
	if gen.calls != 0 {
		t.Fatalf("expected no upstream calls")
	}
}

func TestMissingCredentialsReturn500(t *testing.T) {
	t.Parallel()

	gen := &fakeAssembler{}
	srv := New(gen, Options{GeminiConfigured: false, YouTubeConfigured: true})
	rec := postPlaylist(t, srv, `{"prompt": "anything"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Gemini API key not configured") {
		t.Fatalf("body: %s", rec.Body.String())
	}

	srv = New(gen, Options{GeminiConfigured: true, YouTubeConfigured: false})
	rec = postPlaylist(t, srv, `{"prompt": "anything"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "YouTube API key not configured") {
		t.Fatalf("body: %s", rec.Body.String())
	}
	if gen.calls != 0 {
		t.Fatalf("expected no upstream calls")
	}
}

func TestNoResultsReturns404(t *testing.T) {
	t.Parallel()

	gen := &fakeAssembler{err: playlist.ErrNoResults}
	rec := postPlaylist(t, newTestServer(gen), `{"prompt": "obscure"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "different prompt") {
		t.Fatalf("body: %s", rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeAssembler{})
	req := httptest.NewRequest(http.MethodGet, "/api/generate-playlist", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeAssembler{})
	req := httptest.NewRequest(http.MethodOptions, "/api/generate-playlist", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&fakeAssembler{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
}

// Failing text service, video search that resolves every query variant. The
// whole fallback chain runs end to end through real generator and resolver.

type failingText struct{}

func (failingText) GenerateText(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("service unavailable")
}

type alwaysHitSearch struct{}

func (alwaysHitSearch) Search(ctx context.Context, query string, opts youtube.SearchOptions) ([]youtube.SearchResult, error) {
	return []youtube.SearchResult{{
		VideoID:       "hit-" + query[:3],
		Title:         query,
		ChannelTitle:  "SomeVEVO Official",
		ThumbnailHigh: "https://i.ytimg.com/hi.jpg",
	}}, nil
}

func (alwaysHitSearch) Duration(ctx context.Context, videoID string) (string, error) {
	return "PT3M30S", nil
}

func TestEndToEndFallbackPlaylist(t *testing.T) {
	t.Parallel()

	assembler := &playlist.Assembler{
		Source:   ai.NewGenerator(failingText{}),
		Resolver: youtube.NewResolver(alwaysHitSearch{}, config.DefaultScoring(), "US"),
	}
	rec := postPlaylist(t, newTestServer(assembler), `{"prompt": "energetic workout music"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp playlist.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success")
	}
	if len(resp.Playlist) < 6 || len(resp.Playlist) > 8 {
		t.Fatalf("expected 6-8 items, got %d", len(resp.Playlist))
	}
	wantTitles := []string{"Espresso", "Physical", "Blinding Lights", "Paint The Town Red", "rockstar", "SICKO MODE"}
	for i, item := range resp.Playlist {
		if item.Title == "" || item.Artist == "" {
			t.Fatalf("item %d missing fields: %+v", i, item)
		}
		if item.Title != wantTitles[i] {
			t.Fatalf("item %d: got %q, want %q", i, item.Title, wantTitles[i])
		}
		if item.VideoID == "" {
			t.Fatalf("item %d unresolved: %+v", i, item)
		}
	}
	if resp.Title != `Your "energetic workout music" Playlist` {
		t.Fatalf("title: %q", resp.Title)
	}
}

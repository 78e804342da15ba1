package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"moodtube/internal/playlist"
)

// PlaylistGenerator is what the HTTP surface needs from the pipeline.
type PlaylistGenerator interface {
	Generate(ctx context.Context, prompt, region string) (playlist.Response, error)
}

type Server struct {
	assembler PlaylistGenerator
	log       *slog.Logger

	// Credential presence is checked per request so a misconfigured process
	// serves an explicit 500 instead of refusing to start.
	geminiConfigured  bool
	youtubeConfigured bool
}

type Options struct {
	GeminiConfigured  bool
	YouTubeConfigured bool
	Logger            *slog.Logger
}

func New(assembler PlaylistGenerator, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		assembler:         assembler,
		log:               log,
		geminiConfigured:  opts.GeminiConfigured,
		youtubeConfigured: opts.YouTubeConfigured,
	}
}

type generateRequest struct {
	Prompt  string `json:"prompt"`
	Country string `json:"country"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate-playlist", s.handleGeneratePlaylist)
	mux.HandleFunc("/health", s.handleHealth)
	return corsMiddleware(s.loggingMiddleware(mux))
}

func (s *Server) handleGeneratePlaylist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if !s.geminiConfigured {
		s.respondError(w, http.StatusInternalServerError, "Gemini API key not configured")
		return
	}
	if !s.youtubeConfigured {
		s.respondError(w, http.StatusInternalServerError, "YouTube API key not configured")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		s.respondError(w, http.StatusBadRequest, "Please provide a valid prompt")
		return
	}

	s.log.Info("generating playlist", "prompt", prompt, "country", req.Country)

	resp, err := s.assembler.Generate(r.Context(), prompt, req.Country)
	if err != nil {
		if errors.Is(err, playlist.ErrNoResults) {
			s.respondError(w, http.StatusNotFound, "No songs found. Please try a different prompt.")
			return
		}
		s.log.Error("playlist generation failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Failed to generate playlist. Please try again.")
		return
	}

	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, errorResponse{Error: message})
}

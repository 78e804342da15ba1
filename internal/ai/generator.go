package ai

import (
	"context"
	"log/slog"
)

const (
	// MaxSongCandidates bounds song-object mode output.
	MaxSongCandidates = 8
	// MaxSearchQueries bounds query-string mode output.
	MaxSearchQueries = 12
)

// Generator turns a free-text mood prompt into song candidates. It never
// returns an error or an empty list: any upstream failure falls back to the
// static candidate tables.
type Generator struct {
	Text TextGenerator
}

func NewGenerator(text TextGenerator) *Generator {
	return &Generator{Text: text}
}

// SongCandidates asks the text service for up to MaxSongCandidates
// {title, artist} pairs matching the prompt.
func (g *Generator) SongCandidates(ctx context.Context, prompt, region string) []Song {
	reply, err := g.Text.GenerateText(ctx, buildSongPrompt(prompt, region, MaxSongCandidates))
	if err != nil {
		slog.Warn("text generation failed, using fallback songs", "error", err)
		return fallbackSongs(prompt, region)
	}
	songs, err := parseSongs(reply)
	if err != nil {
		slog.Warn("unparseable ai reply, using fallback songs", "error", err)
		return fallbackSongs(prompt, region)
	}
	if len(songs) > MaxSongCandidates {
		songs = songs[:MaxSongCandidates]
	}
	return songs
}

// SearchQueries asks the text service for up to MaxSearchQueries raw YouTube
// search strings matching the prompt. Used by the single-call batch pipeline.
func (g *Generator) SearchQueries(ctx context.Context, prompt, region string) []string {
	reply, err := g.Text.GenerateText(ctx, buildQueryPrompt(prompt, region, MaxSearchQueries))
	if err != nil {
		slog.Warn("text generation failed, using fallback queries", "error", err)
		return fallbackQueries(prompt, region)
	}
	queries, err := parseQueries(reply)
	if err != nil {
		slog.Warn("unparseable ai reply, using fallback queries", "error", err)
		return fallbackQueries(prompt, region)
	}
	if len(queries) > MaxSearchQueries {
		queries = queries[:MaxSearchQueries]
	}
	return queries
}

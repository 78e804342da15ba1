package playlist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"moodtube/internal/ai"
	"moodtube/internal/youtube"
)

// ErrNoResults means zero candidates were generated or zero songs survived
// resolution. Surfaced to callers as a not-found condition.
var ErrNoResults = errors.New("no songs found")

// CandidateSource produces song candidates or raw search queries for a prompt.
// Implementations never return empty lists.
type CandidateSource interface {
	SongCandidates(ctx context.Context, prompt, region string) []ai.Song
	SearchQueries(ctx context.Context, prompt, region string) []string
}

// VideoResolver maps candidates to playable videos.
type VideoResolver interface {
	Resolve(ctx context.Context, cand ai.Song, region string) youtube.ResolvedSong
	ResolveBatch(ctx context.Context, queries []string, region string) []youtube.ResolvedSong
}

type Item struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Artist       string `json:"artist"`
	VideoID      string `json:"videoId,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Duration     string `json:"duration"`
	Genre        string `json:"genre"`
}

type APICalls struct {
	Gemini  int `json:"gemini"`
	YouTube int `json:"youtube"`
}

type Response struct {
	Success      bool     `json:"success"`
	Playlist     []Item   `json:"playlist"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	APICallsUsed APICalls `json:"apiCallsUsed"`
}

// Assembler orchestrates candidate generation and video resolution into the
// final playlist payload.
type Assembler struct {
	Source    CandidateSource
	Resolver  VideoResolver
	BatchMode bool
}

// Generate builds a playlist for the prompt. All entities are scoped to this
// one call; nothing is persisted.
func (a *Assembler) Generate(ctx context.Context, prompt, region string) (Response, error) {
	var resolved []youtube.ResolvedSong
	calls := APICalls{Gemini: 1}

	if a.BatchMode {
		queries := a.Source.SearchQueries(ctx, prompt, region)
		if len(queries) == 0 {
			return Response{}, ErrNoResults
		}
		resolved = a.Resolver.ResolveBatch(ctx, queries, region)
		calls.YouTube = 1
	} else {
		candidates := a.Source.SongCandidates(ctx, prompt, region)
		if len(candidates) == 0 {
			return Response{}, ErrNoResults
		}
		resolved = a.resolveAll(ctx, candidates, region)
		calls.YouTube = len(candidates)
	}

	if len(resolved) == 0 {
		return Response{}, ErrNoResults
	}

	now := time.Now().UnixMilli()
	items := make([]Item, 0, len(resolved))
	for i, song := range resolved {
		items = append(items, Item{
			ID:           fmt.Sprintf("%d-%d", now, i),
			Title:        song.Title,
			Artist:       song.Artist,
			VideoID:      song.VideoID,
			ThumbnailURL: song.ThumbnailURL,
			Duration:     song.Duration,
			Genre:        "Music",
		})
	}

	return Response{
		Success:      true,
		Playlist:     items,
		Title:        fmt.Sprintf("Your %q Playlist", prompt),
		Description:  fmt.Sprintf("%d AI-curated songs with trending context", len(items)),
		APICallsUsed: calls,
	}, nil
}

// resolveAll fans out one resolution per candidate. Results land in an
// index-addressed slice so output order matches candidate order regardless of
// completion order, and one candidate's miss never affects the others.
func (a *Assembler) resolveAll(ctx context.Context, candidates []ai.Song, region string) []youtube.ResolvedSong {
	resolved := make([]youtube.ResolvedSong, len(candidates))
	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func(i int, cand ai.Song) {
			defer wg.Done()
			resolved[i] = a.Resolver.Resolve(ctx, cand, region)
		}(i, cand)
	}
	wg.Wait()
	return resolved
}

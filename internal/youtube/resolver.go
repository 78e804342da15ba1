package youtube

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"moodtube/internal/ai"
	"moodtube/internal/config"
)

const (
	maxSearchResults = 15
	// Anything longer is assumed to be a mix/compilation rather than a song.
	maxSongMinutes = 10

	// PlaceholderThumbnail is served when the search item carries no usable
	// thumbnail URL.
	PlaceholderThumbnail = "/placeholder.svg?height=200&width=200"
)

// ResolvedSong is a candidate after video lookup. VideoID is empty when no
// acceptable match was found; the song is still kept in the playlist.
type ResolvedSong struct {
	Title        string
	Artist       string
	VideoID      string
	ThumbnailURL string
	Duration     string
}

// Resolver maps song candidates to playable videos. Resolve never returns an
// error: a failed lookup is a per-song miss, not a pipeline failure.
type Resolver struct {
	Client        SearchClient
	Scoring       config.Scoring
	DefaultRegion string
}

func NewResolver(client SearchClient, scoring config.Scoring, defaultRegion string) *Resolver {
	return &Resolver{Client: client, Scoring: scoring, DefaultRegion: defaultRegion}
}

func queryVariants(cand ai.Song) []string {
	base := fmt.Sprintf("%s %s", cand.Title, cand.Artist)
	return []string{
		base + " official music video",
		base + " official video",
		base + " music video",
		base,
	}
}

// Resolve tries each query variant in order and returns the best-scoring
// result of the first variant that yields anything.
func (r *Resolver) Resolve(ctx context.Context, cand ai.Song, region string) ResolvedSong {
	out := ResolvedSong{
		Title:        cand.Title,
		Artist:       cand.Artist,
		ThumbnailURL: PlaceholderThumbnail,
		Duration:     DefaultDuration,
	}
	if region == "" {
		region = r.DefaultRegion
	}

	for _, query := range queryVariants(cand) {
		results, err := r.Client.Search(ctx, query, SearchOptions{Region: region, MaxResults: maxSearchResults})
		if err != nil {
			slog.Debug("search variant failed", "query", query, "error", err)
			continue
		}
		if len(results) == 0 {
			continue
		}
		best := r.pickBest(results)
		out.VideoID = best.VideoID
		out.ThumbnailURL = bestThumbnail(best)
		r.fillDuration(ctx, &out)
		return out
	}
	return out
}

// pickBest returns the first result scoring above the configured threshold,
// defaulting to the top relevance hit.
func (r *Resolver) pickBest(results []SearchResult) SearchResult {
	for _, item := range results {
		if r.score(item) > r.Scoring.Threshold {
			return item
		}
	}
	return results[0]
}

var (
	officialMarkers   = []string{"official", "records", "music"}
	musicVideoMarkers = []string{"music video", "mv", "official video"}
	offTypeMarkers    = []string{"live", "cover", "reaction", "karaoke"}
)

func (r *Resolver) score(item SearchResult) int {
	title := strings.ToLower(item.Title)
	channel := strings.ToLower(item.ChannelTitle)

	score := 0
	if containsAny(channel, officialMarkers) || containsAny(title, officialMarkers) {
		score += r.Scoring.OfficialMarker
	}
	if containsAny(title, musicVideoMarkers) {
		score += r.Scoring.MusicVideoTitle
	}
	if containsAny(title, offTypeMarkers) {
		score -= r.Scoring.LivePenalty
	}
	if item.ThumbnailHigh != "" {
		score += r.Scoring.HighThumbnail
	}
	return score
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func bestThumbnail(item SearchResult) string {
	if item.ThumbnailHigh != "" {
		return item.ThumbnailHigh
	}
	if item.ThumbnailDefault != "" {
		return item.ThumbnailDefault
	}
	return PlaceholderThumbnail
}

// fillDuration fetches exact duration metadata for the chosen video. Long-form
// content keeps the default duration, as do lookup failures.
func (r *Resolver) fillDuration(ctx context.Context, out *ResolvedSong) {
	if out.VideoID == "" {
		return
	}
	raw, err := r.Client.Duration(ctx, out.VideoID)
	if err != nil {
		slog.Debug("duration lookup failed", "videoId", out.VideoID, "error", err)
		return
	}
	h, m, _, ok := parseISODuration(raw)
	if !ok {
		return
	}
	if h*60+m > maxSongMinutes {
		return
	}
	out.Duration = DecodeDuration(raw)
}

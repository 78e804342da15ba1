package youtube

import (
	"context"
	"log/slog"
	"strings"
)

const (
	maxBatchQueries = 10
	maxBatchResults = 12
)

// nonMusicKeywords filters obvious non-song uploads out of the combined
// result set.
var nonMusicKeywords = []string{"reaction", "tutorial", "gameplay", "review"}

// ResolveBatch runs a single combined search over up to maxBatchQueries
// queries and recovers (artist, title) pairs from the surviving items. Used
// when API-call budget matters more than per-song accuracy; no duration
// lookups are made.
func (r *Resolver) ResolveBatch(ctx context.Context, queries []string, region string) []ResolvedSong {
	if len(queries) == 0 {
		return nil
	}
	if len(queries) > maxBatchQueries {
		queries = queries[:maxBatchQueries]
	}
	if region == "" {
		region = r.DefaultRegion
	}

	combined := strings.Join(queries, " | ")
	results, err := r.Client.Search(ctx, combined, SearchOptions{Region: region, MaxResults: maxSearchResults})
	if err != nil {
		slog.Warn("batch search failed", "error", err)
		return nil
	}

	out := make([]ResolvedSong, 0, maxBatchResults)
	for _, item := range results {
		if len(out) >= maxBatchResults {
			break
		}
		if containsAny(strings.ToLower(item.Title), nonMusicKeywords) {
			continue
		}
		artist, title := ParseTitle(item.Title, item.ChannelTitle)
		out = append(out, ResolvedSong{
			Title:        title,
			Artist:       artist,
			VideoID:      item.VideoID,
			ThumbnailURL: bestThumbnail(item),
			Duration:     DefaultDuration,
		})
	}
	return out
}

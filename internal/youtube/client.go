package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

const (
	musicCategoryID = "10"
	searchTimeout   = 10 * time.Second
)

type SearchOptions struct {
	Region     string
	MaxResults int64
}

type SearchResult struct {
	VideoID          string
	Title            string
	ChannelTitle     string
	Description      string
	ThumbnailHigh    string
	ThumbnailDefault string
}

// SearchClient is the slice of the video-search service the resolver uses.
type SearchClient interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
	Duration(ctx context.Context, videoID string) (string, error)
}

// DataAPIClient implements SearchClient over the YouTube Data API v3.
type DataAPIClient struct {
	service *ytapi.Service
}

func NewDataAPIClient(ctx context.Context, apiKey string) (*DataAPIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube api key not configured")
	}
	service, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &DataAPIClient{service: service}, nil
}

func (c *DataAPIClient) Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	resp, err := c.service.Search.List([]string{"id", "snippet"}).
		Q(query).
		MaxResults(opts.MaxResults).
		Type("video").
		VideoCategoryId(musicCategoryID).
		RegionCode(opts.Region).
		SafeSearch("moderate").
		Order("relevance").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube search error: %w", err)
	}

	results := make([]SearchResult, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		r := SearchResult{
			VideoID:      item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			Description:  item.Snippet.Description,
		}
		if t := item.Snippet.Thumbnails; t != nil {
			if t.High != nil {
				r.ThumbnailHigh = t.High.Url
			}
			if t.Default != nil {
				r.ThumbnailDefault = t.Default.Url
			}
		}
		results = append(results, r)
	}
	return results, nil
}

func (c *DataAPIClient) Duration(ctx context.Context, videoID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	resp, err := c.service.Videos.List([]string{"contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("youtube videos error: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil {
		return "", fmt.Errorf("no metadata for video %s", videoID)
	}
	return resp.Items[0].ContentDetails.Duration, nil
}

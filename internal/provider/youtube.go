package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/octobees/brand-equity/api/internal/dto"
)

const defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

// YouTubeClient fetches channel statistics from the YouTube Data API.
type YouTubeClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewYouTubeClient builds a YouTube adapter. A nil client gets a 10s timeout.
func NewYouTubeClient(client *http.Client, apiKey, baseURL string) *YouTubeClient {
	if client == nil {
		client = defaultClient(10 * time.Second)
	}
	if baseURL == "" {
		baseURL = defaultYouTubeBaseURL
	}
	return &YouTubeClient{client: client, apiKey: apiKey, baseURL: baseURL}
}

// ChannelStats looks up the statistics for one channel id. The API encodes
// counters as strings; unparseable counters stay nil.
func (y *YouTubeClient) ChannelStats(ctx context.Context, channelID string) (*dto.YouTubeChannelStats, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel id is required")
	}
	if y.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/channels?part=snippet,statistics&id=%s&key=%s",
		y.baseURL, url.QueryEscape(channelID), url.QueryEscape(y.apiKey))

	var resp struct {
		Items []struct {
			ID      string `json:"id"`
			Snippet struct {
				Title string `json:"title"`
			} `json:"snippet"`
			Statistics struct {
				SubscriberCount string `json:"subscriberCount"`
				ViewCount       string `json:"viewCount"`
				VideoCount      string `json:"videoCount"`
			} `json:"statistics"`
		} `json:"items"`
	}
	if err := getJSON(ctx, y.client, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("youtube channels: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("youtube channel %s not found", channelID)
	}

	item := resp.Items[0]
	return &dto.YouTubeChannelStats{
		ChannelID:   item.ID,
		Title:       item.Snippet.Title,
		Subscribers: parseCount(item.Statistics.SubscriberCount),
		Views:       parseCount(item.Statistics.ViewCount),
		Videos:      parseCount(item.Statistics.VideoCount),
	}, nil
}

func parseCount(raw string) *int64 {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

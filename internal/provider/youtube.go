package provider

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const youtubeBaseURL = "https://www.googleapis.com/youtube/v3"

type YouTubeClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	cache   Cache
	logger  *log.Logger
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

func NewYouTubeClient(apiKey string, cache Cache, logger *log.Logger) *YouTubeClient {
	return &YouTubeClient{
		baseURL: youtubeBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
		client:  newHTTPClient(),
		cache:   cache,
		logger:  logger,
	}
}

func NewYouTubeClientWithBaseURL(baseURL, apiKey string, cache Cache, logger *log.Logger) *YouTubeClient {
	c := NewYouTubeClient(apiKey, cache, logger)
	baseURL = strings.TrimSpace(baseURL)
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

func (c *YouTubeClient) SearchVideos(ctx context.Context, query string, maxResults int) ([]Video, error) {
	if c == nil {
		return []Video{}, newProviderError("youtube", "search_videos", fmt.Errorf("nil client"))
	}

	key := cacheKey("youtube", "search_videos", query, strconv.Itoa(maxResults))
	var cached []Video
	if c.cache != nil {
		if hit, err := c.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", strings.TrimSpace(query)+" tutorial")
	params.Set("type", "video")
	params.Set("videoDuration", "medium")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("key", c.apiKey)
	params.Set("relevanceLanguage", "en")

	var raw youtubeSearchResponse
	if err := getJSON(ctx, c.client, c.baseURL+"/search", params, &raw); err != nil {
		if c.logger != nil {
			c.logger.Printf("[YouTube] SearchVideos error query=%q err=%v", query, err)
		}
		return []Video{}, newProviderError("youtube", "search_videos", err)
	}

	videos := make([]Video, 0, len(raw.Items))
	for _, it := range raw.Items {
		videos = append(videos, Video{
			ID:          it.ID.VideoID,
			Title:       it.Snippet.Title,
			Description: it.Snippet.Description,
			Channel:     it.Snippet.ChannelTitle,
			PublishedAt: it.Snippet.PublishedAt,
			Thumbnail:   it.Snippet.Thumbnails.High.URL,
			URL:         "https://www.youtube.com/watch?v=" + it.ID.VideoID,
			Duration:    "10-30 minutes",
			Free:        true,
		})
	}

	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, key, videos, TTLVideos)
	}
	return videos, nil
}

var _ VideoClient = (*YouTubeClient)(nil)

package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/iby-sports/gridiron-analytics/internal/models"
)

const newsAPIBaseURL = "https://newsapi.org/v2"

// NewsAPISource adapts newsapi.org headlines. Second candidate behind ESPN
// for the news kind.
type NewsAPISource struct {
	baseURL string
	apiKey  string
}

// NewNewsAPISource creates a newsapi.org adapter
func NewNewsAPISource(apiKey string) *NewsAPISource {
	return &NewsAPISource{baseURL: newsAPIBaseURL, apiKey: apiKey}
}

func (s *NewsAPISource) Name() string {
	return "newsapi"
}

func (s *NewsAPISource) Supports(kind models.DataKind, league models.League) bool {
	return kind == models.KindNews
}

func (s *NewsAPISource) NewRequest(ctx context.Context, kind models.DataKind, params models.FetchParams) (*http.Request, error) {
	if kind != models.KindNews {
		return nil, fmt.Errorf("newsapi: unsupported kind %s", kind)
	}
	topic := "NFL football"
	if params.League == models.LeagueNCAA {
		topic = "college football"
	}
	query := url.Values{}
	query.Set("q", topic)
	query.Set("language", "en")
	query.Set("sortBy", "publishedAt")
	query.Set("pageSize", "20")
	endpoint := fmt.Sprintf("%s/everything?%s", s.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", s.apiKey)
	return req, nil
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

func (s *NewsAPISource) Parse(kind models.DataKind, body []byte) (*models.Result, error) {
	var resp newsAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("%w: response status %q", ErrMalformed, resp.Status)
	}

	result := &models.Result{Kind: models.KindNews}
	for _, article := range resp.Articles {
		item := models.NewsItem{
			Title:   article.Title,
			Summary: article.Description,
			URL:     article.URL,
			Outlet:  article.Source.Name,
		}
		if published, err := time.Parse(time.RFC3339, article.PublishedAt); err == nil {
			item.Published = published
		}
		result.News = append(result.News, item)
	}
	return result, nil
}

// IsQuotaError recognizes newsapi.org rate/plan exhaustion responses
func (s *NewsAPISource) IsQuotaError(statusCode int, body []byte) bool {
	if statusCode != http.StatusTooManyRequests && statusCode != http.StatusUnauthorized {
		return false
	}
	return bytes.Contains(body, []byte("rateLimited")) || bytes.Contains(body, []byte("maximumResultsReached"))
}

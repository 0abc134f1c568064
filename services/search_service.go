package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// ItemDto is one product snapshot from the external shopping-search API.
type ItemDto struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Image  string `json:"image"`
	Lprice int    `json:"lprice"`
}

// SearchService queries the external shopping-search API for product
// snapshots. It only fetches; applying a snapshot to a stored product is
// the product service's job.
type SearchService struct {
	client       *http.Client
	baseURL      string
	clientID     string
	clientSecret string
}

func NewSearchService() *SearchService {
	baseURL := os.Getenv("SEARCH_API_URL")
	if baseURL == "" {
		baseURL = "https://openapi.naver.com/v1/search/shop.json"
	}
	return &SearchService{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      baseURL,
		clientID:     os.Getenv("SEARCH_CLIENT_ID"),
		clientSecret: os.Getenv("SEARCH_CLIENT_SECRET"),
	}
}

// searchResponse matches the API's wire format; prices come back as strings.
type searchResponse struct {
	Items []struct {
		Title  string `json:"title"`
		Link   string `json:"link"`
		Image  string `json:"image"`
		Lprice string `json:"lprice"`
	} `json:"items"`
}

func (s *SearchService) Search(ctx context.Context, query string) ([]ItemDto, error) {
	if query == "" {
		return nil, errors.New("search query must not be empty")
	}

	reqURL := s.baseURL + "?query=" + url.QueryEscape(query) + "&display=15"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Naver-Client-Id", s.clientID)
	req.Header.Set("X-Naver-Client-Secret", s.clientSecret)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	items := make([]ItemDto, 0, len(body.Items))
	for _, it := range body.Items {
		lprice, err := strconv.Atoi(it.Lprice)
		if err != nil {
			// some listings carry no usable price, skip them
			continue
		}
		items = append(items, ItemDto{
			Title:  it.Title,
			Link:   it.Link,
			Image:  it.Image,
			Lprice: lprice,
		})
	}
	return items, nil
}

// Package omdb is a thin client for the OMDb API (http://www.omdbapi.com).
//
// Two endpoints are used: title search (s=) and detail by imdb ID (i=).
// OMDb signals "no results" and other soft failures with Response: "False"
// and an Error message in an otherwise 200 body.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-watchlist/pkg/utils"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(config utils.OMDbConfig) *Client {
	timeout := defaultTimeout
	if config.TimeoutSeconds > 0 {
		timeout = time.Duration(config.TimeoutSeconds) * time.Second
	}

	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchResult is one entry of a search page
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// SearchResponse is the response of the s= endpoint
type SearchResponse struct {
	Search       []SearchResult `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error,omitempty"`
}

// Found reports whether OMDb returned any results
func (r *SearchResponse) Found() bool {
	return r.Response == "True"
}

// TotalResultsInt parses OMDb's string-typed result count
func (r *SearchResponse) TotalResultsInt() int {
	n, err := strconv.Atoi(r.TotalResults)
	if err != nil {
		return 0
	}
	return n
}

// Detail is the response of the i= endpoint
type Detail struct {
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	Plot       string `json:"Plot"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Genre      string `json:"Genre"`
	ImdbRating string `json:"imdbRating"`
	Runtime    string `json:"Runtime"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Response   string `json:"Response"`
	Error      string `json:"Error,omitempty"`
}

// Found reports whether OMDb resolved the imdb ID
func (d *Detail) Found() bool {
	return d.Response == "True"
}

// Search queries OMDb by free-text title
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchResponse, error) {
	if page <= 0 {
		page = 1
	}

	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))

	var result SearchResponse
	if err := c.get(ctx, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Detail fetches full metadata for one imdb ID
func (c *Client) Detail(ctx context.Context, imdbID string) (*Detail, error) {
	params := url.Values{}
	params.Set("i", imdbID)

	var result Detail
	if err := c.get(ctx, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	requestURL := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("omdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("omdb request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode omdb response: %w", err)
	}

	return nil
}

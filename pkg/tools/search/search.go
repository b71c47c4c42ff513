package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/baize-ai/skills/skill"
)

// DefaultBaseURL is the Brave Search web endpoint.
const DefaultBaseURL = "https://api.search.brave.com/res/v1/web/search"

const defaultCount = 5

// Config carries everything the search skill needs. It is built once in
// main and injected, so nothing in this package reads the environment.
type Config struct {
	// APIKey is the Brave subscription token, sent as X-Subscription-Token.
	APIKey string
	// BaseURL overrides the search endpoint, mainly for tests.
	BaseURL string
	// HTTPClient overrides the client used for the outbound call.
	HTTPClient *http.Client
}

// Client performs web searches against the Brave Search API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// New creates a search client from cfg, applying defaults for the endpoint
// and HTTP client.
func New(cfg Config) *Client {
	c := &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http:    cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	return c
}

// Handle implements the skill contract: validate the params, run the search,
// and wrap the outcome in a result envelope. Validation failures never reach
// the network.
func (c *Client) Handle(ctx context.Context, params json.RawMessage) skill.Envelope {
	var args SearchArgs
	if err := json.Unmarshal(params, &args); err != nil {
		return skill.Failf("invalid parameters: %v", err)
	}
	if strings.TrimSpace(args.Query) == "" {
		return skill.Fail("missing search query (query)")
	}
	if c.apiKey == "" {
		return skill.Fail("BRAVE_API_KEY is not set; add BRAVE_API_KEY=your_key to your .env file")
	}

	results, err := c.Search(ctx, args)
	if err != nil {
		log.Printf("search: %v", err)
		return skill.Fail(err.Error())
	}
	return skill.OK(SearchData{Results: results}, fmt.Sprintf("found %d results", len(results)))
}

// Search issues one GET to the web search endpoint and returns the
// flattened result list.
func (c *Client) Search(ctx context.Context, args SearchArgs) ([]SearchResult, error) {
	count := args.Count
	if count <= 0 {
		count = defaultCount
	}
	offset := args.Offset
	if offset < 0 {
		offset = 0
	}

	q := url.Values{}
	q.Set("q", args.Query)
	q.Set("count", strconv.Itoa(count))
	q.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed braveResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if parsed.Web.Results == nil {
		return []SearchResult{}, nil
	}
	return parsed.Web.Results, nil
}

// Manifest describes the skill for the caller framework.
func Manifest() skill.Manifest {
	return skill.Manifest{
		Name:        "brave-search",
		Version:     "1.0.0",
		Description: "Search the web using the Brave Search API. Returns titles, URLs, and descriptions.",
		Params: []skill.ParamSpec{
			{Name: "query", Type: "string", Description: "The search query", Required: true},
			{Name: "count", Type: "integer", Description: "Number of results to return", Default: defaultCount},
			{Name: "offset", Type: "integer", Description: "Result offset", Default: 0},
		},
	}
}

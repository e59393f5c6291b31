package extractor

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lysyi3m/reddit-pulse/app/sources"
	"github.com/mmcdole/gofeed"
)

const redditListingURL = "https://www.reddit.com/r/%s/hot.json?limit=%d"

type Extractor struct {
	httpClient *http.Client
	rssParser  *gofeed.Parser
	userAgent  string
	timeout    time.Duration
	baseURL    string
}

func NewExtractor(httpClient *http.Client, userAgent string, timeout time.Duration) *Extractor {
	rssParser := gofeed.NewParser()
	rssParser.Client = httpClient
	rssParser.UserAgent = userAgent

	return &Extractor{
		httpClient: httpClient,
		rssParser:  rssParser,
		userAgent:  userAgent,
		timeout:    timeout,
		baseURL:    redditListingURL,
	}
}

// Fetch retrieves the raw items for one source. Any transport or parse
// failure comes back as a SourceUnavailableError; the extractor has no
// side effects beyond the read itself.
func (e *Extractor) Fetch(ctx context.Context, source sources.Source) ([]RawItem, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var items []RawItem
	var err error

	switch source.Type {
	case sources.TypeRSS:
		items, err = e.fetchRSS(timeoutCtx, source)
	default:
		items, err = e.fetchReddit(timeoutCtx, source)
	}

	if err != nil {
		return nil, &SourceUnavailableError{Source: source.Name, Err: err}
	}

	return items, nil
}

func (e *Extractor) fetchReddit(ctx context.Context, source sources.Source) ([]RawItem, error) {
	url := fmt.Sprintf(e.baseURL, source.Name, source.Limit)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var listing redditListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}

	items := make([]RawItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		items = append(items, child.Data)
	}

	return items, nil
}

// fetchRSS maps feed entries onto raw items. Feeds carry no vote data,
// so score, comment count, and upvote ratio stay absent and take the
// documented defaults during normalization.
func (e *Extractor) fetchRSS(ctx context.Context, source sources.Source) ([]RawItem, error) {
	feed, err := e.rssParser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := feed.Items
	if len(entries) > source.Limit {
		entries = entries[:source.Limit]
	}

	items := make([]RawItem, 0, len(entries))
	for _, entry := range entries {
		item := RawItem{}

		if guid := cmp.Or(entry.GUID, entry.Link); guid != "" {
			item.ID = &guid
		}
		if entry.Title != "" {
			title := entry.Title
			item.Title = &title
		}
		if entry.Author != nil && entry.Author.Name != "" {
			author := entry.Author.Name
			item.Author = &author
		}

		items = append(items, item)
	}

	return items, nil
}

// Package reddit fetches a subject's public account metadata and activity
// from the Reddit JSON API. It is the retrieval collaborator of the analysis
// pipeline: fallible, paced, and fully replaceable in tests.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/personalens/internal/config"
	"github.com/heartmarshall/personalens/internal/domain"
)

// Client fetches public user data from the Reddit JSON endpoints.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	pacer      Pacer
	log        *slog.Logger
}

// NewClient creates a Client from config with the given pacing policy.
func NewClient(cfg config.RedditConfig, pacer Pacer, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		pacer:      pacer,
		log:        logger.With("adapter", "reddit"),
	}
}

// NewClientWithURL creates a Client against a custom base URL (for testing).
func NewClientWithURL(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  "personalens-test",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		pacer:      NoopPacer{},
		log:        logger.With("adapter", "reddit"),
	}
}

// ExtractUsername pulls the username out of a Reddit profile URL such as
// https://www.reddit.com/user/<name>/ (or the /u/<name> shorthand).
// A bare username without slashes is returned as-is.
func ExtractUsername(raw string) (string, error) {
	if !strings.Contains(raw, "/") {
		return raw, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("reddit: parse profile URL: %w", err)
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, part := range parts {
		if (part == "user" || part == "u") && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}

	return "", fmt.Errorf("reddit: could not extract username from URL %q", raw)
}

// FetchAccountMetadata fetches /user/<name>/about/.json and maps it to
// domain.AccountMetadata.
func (c *Client) FetchAccountMetadata(ctx context.Context, username string) (domain.AccountMetadata, error) {
	c.pacer.Wait()

	reqURL := fmt.Sprintf("%s/user/%s/about/.json", c.baseURL, url.PathEscape(username))

	var about aboutResponse
	if err := c.getJSON(ctx, reqURL, &about); err != nil {
		return domain.AccountMetadata{}, fmt.Errorf("reddit: fetch account metadata: %w", err)
	}

	data := about.Data
	meta := domain.AccountMetadata{
		PostKarma:    data.LinkKarma,
		CommentKarma: data.CommentKarma,
		TotalKarma:   data.TotalKarma,
		Verified:     data.Verified,
		Premium:      data.IsGold,
		Bio:          data.Subreddit.PublicDescription,
		Description:  data.Subreddit.Description,
		AvatarURL:    strings.ReplaceAll(data.IconImg, "&amp;", "&"),
		BannerURL:    data.BannerImg,
	}
	if data.CreatedUTC > 0 {
		meta.CreatedAt = time.Unix(int64(data.CreatedUTC), 0).UTC()
	}

	c.log.DebugContext(ctx, "account metadata fetched",
		slog.String("username", username),
		slog.Int("total_karma", meta.TotalKarma),
	)

	return meta, nil
}

// FetchActivity fetches the subject's submitted posts and comments (up to
// limit each) and returns them as activity records in retrieval order:
// posts first, then comments, as the API returns them.
func (c *Client) FetchActivity(ctx context.Context, username string, limit int) ([]domain.ActivityRecord, error) {
	var records []domain.ActivityRecord

	c.pacer.Wait()
	postsURL := fmt.Sprintf("%s/user/%s/submitted/.json?limit=%d", c.baseURL, url.PathEscape(username), limit)
	var submitted listingResponse
	if err := c.getJSON(ctx, postsURL, &submitted); err != nil {
		return nil, fmt.Errorf("reddit: fetch submitted posts: %w", err)
	}
	for _, child := range submitted.Data.Children {
		records = append(records, c.toRecord(child.Data, domain.KindPost))
	}

	c.pacer.Wait()
	commentsURL := fmt.Sprintf("%s/user/%s/comments/.json?limit=%d", c.baseURL, url.PathEscape(username), limit)
	var comments listingResponse
	if err := c.getJSON(ctx, commentsURL, &comments); err != nil {
		return nil, fmt.Errorf("reddit: fetch comments: %w", err)
	}
	for _, child := range comments.Data.Children {
		records = append(records, c.toRecord(child.Data, domain.KindComment))
	}

	c.log.DebugContext(ctx, "activity fetched",
		slog.String("username", username),
		slog.Int("records", len(records)),
	)

	return records, nil
}

// toRecord maps one raw listing item to an ActivityRecord.
func (c *Client) toRecord(item itemData, kind domain.RecordKind) domain.ActivityRecord {
	body := item.SelfText
	if kind == domain.KindComment {
		body = item.Body
	}

	rec := domain.ActivityRecord{
		ID:        item.ID,
		Title:     item.Title,
		Body:      body,
		Community: item.Subreddit,
		Score:     item.Score,
		Kind:      kind,
		Permalink: c.baseURL + item.Permalink,
	}
	if kind == domain.KindComment {
		rec.Title = "" // comments never carry titles
	}
	if item.CreatedUTC > 0 {
		rec.CreatedAt = time.Unix(int64(item.CreatedUTC), 0).UTC()
	}
	return rec
}

// getJSON performs a GET with a single retry on 5xx or network errors and
// decodes the body into out.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w", domain.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "reddit retry", slog.String("url", req.URL.Path), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.httpClient.Do(req)
}

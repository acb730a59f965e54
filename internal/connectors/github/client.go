package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/addonkit/expressdocs/internal/logger"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Client wraps the go-github client with helper methods.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a GitHub API client. With an empty token the
// client proceeds unauthenticated at GitHub's lower rate limits;
// that is a warning, not an error.
func NewClient(ctx context.Context, token string) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		logger.Warn("No GitHub token configured; using unauthenticated access")
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout

	return &Client{
		gh:          gh.NewClient(hc),
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a client with a custom http.Client.
// Useful for tests pointing at a stub server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL string) (*Client, error) {
	ghc := gh.NewClient(httpClient)
	if baseURL != "" {
		var err error
		ghc, err = ghc.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("set base URL: %w", err)
		}
	}
	return &Client{
		gh:          ghc,
		rateLimiter: NewRateLimiter(),
	}, nil
}

// SearchCode runs a code search and returns the raw result page.
// The query should carry repo:/path:/extension: qualifiers.
func (c *Client) SearchCode(ctx context.Context, query string, perPage int) (*gh.CodeSearchResult, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.SearchOptions{
		TextMatch:   true,
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	result, resp, err := c.gh.Search.Code(ctx, query, opts)
	if err != nil {
		return nil, c.wrapError(err, "search code")
	}

	c.updateRateLimitFromResponse(resp)
	return result, nil
}

// GetFileContent fetches and decodes the content of a file.
// For files < 1MB, content is base64 encoded in the response.
func (c *Client) GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	content, _, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return "", c.wrapError(err, "get contents")
	}

	c.updateRateLimitFromResponse(resp)

	if content == nil {
		return "", fmt.Errorf("path %q is a directory, not a file", path)
	}

	decoded, err := content.GetContent()
	if err != nil {
		return "", fmt.Errorf("decode content: %w", err)
	}
	return decoded, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
			URL:        ghErr.Response.Request.URL.String(),
		}
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   c.rateLimiter.ResetTime(),
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}

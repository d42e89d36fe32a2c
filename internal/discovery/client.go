package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"trf/navmenu/internal/domain"
)

type Client interface {
	// Fetch performs one GET against the discovery service and normalizes the configured group.
	Fetch(ctx context.Context, cfg Config) (*FetchResult, error)
	FetchMenuItems(ctx context.Context, cfg Config) ([]domain.MenuItem, error)
}

// FetchResult is a normalized menu together with the response validator.
type FetchResult struct {
	Items []domain.MenuItem
	ETag  string
	Group string
}

// StatusError is returned for any non-2xx response. The client never retries it.
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("discovery menu request failed: %d %s", e.Code, e.Text)
}

// ClientOptions tunes the underlying HTTP client.
type ClientOptions struct {
	Timeout              time.Duration
	MaxRequestsPerSecond int
	Proxy                string
	UserAgent            string
	Normalize            NormalizeOptions
}

type discoveryClient struct {
	rl         ratelimit.Limiter
	httpClient *resty.Client
	normalize  NormalizeOptions
}

func NewClient(opts ClientOptions) Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Proxy != "" {
		client.SetProxy(opts.Proxy)
		log.Infof("🔗 Discovery requests go through proxy: %s", opts.Proxy)
	}

	return NewClientWithResty(client, opts)
}

// NewClientWithResty wraps an existing resty client, which lets callers supply their own transport.
func NewClientWithResty(client *resty.Client, opts ClientOptions) Client {
	rl := ratelimit.NewUnlimited()
	if opts.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(opts.MaxRequestsPerSecond)
	}

	normalize := opts.Normalize
	if normalize == (NormalizeOptions{}) {
		normalize = DefaultNormalizeOptions()
	}

	return &discoveryClient{
		rl:         rl,
		httpClient: client,
		normalize:  normalize,
	}
}

func (c *discoveryClient) FetchMenuItems(ctx context.Context, cfg Config) ([]domain.MenuItem, error) {
	res, err := c.Fetch(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (c *discoveryClient) Fetch(ctx context.Context, cfg Config) (*FetchResult, error) {
	cfg = cfg.WithDefaults()

	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("discovery menu request cancelled: %w", err)
	}

	req := c.httpClient.R().SetContext(ctx)

	if token, ok := ResolveAuthToken(cfg); ok {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if cfg.IfMatch != "" {
		req.SetHeader("If-Match", cfg.IfMatch)
	}
	if cookies := forwardedCookies(cfg); len(cookies) > 0 {
		req.SetCookies(cookies)
	}

	resp, err := req.Get(cfg.MenuURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("discovery menu request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("discovery menu request failed: %w", err)
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &StatusError{Code: resp.StatusCode(), Text: statusText(resp.StatusCode(), resp.Status())}
	}

	var payload domain.DiscoveryMenuResponse
	if err := json.Unmarshal([]byte(resp.String()), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode discovery menu response: %w", err)
	}

	items := Normalize(&payload, cfg.MenuGroup, cfg.FallbackGroup, c.normalize)
	log.Debugf("Fetched %d discovery menu items for group %s", len(items), cfg.MenuGroup)

	return &FetchResult{
		Items: items,
		ETag:  resp.Header().Get("ETag"),
		Group: cfg.MenuGroup,
	}, nil
}

// wait takes a limiter slot, giving up as soon as ctx is done.
func (c *discoveryClient) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	taken := make(chan struct{})
	go func() {
		c.rl.Take()
		close(taken)
	}()

	select {
	case <-taken:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// forwardedCookies applies the credentials mode to the ambient cookie store.
func forwardedCookies(cfg Config) []*http.Cookie {
	if cfg.Cookies == nil {
		return nil
	}

	switch cfg.Credentials {
	case CredentialsInclude:
		return cfg.Cookies.Cookies()
	case CredentialsSameOrigin:
		if sameOrigin(cfg.MenuURL, cfg.Origin) {
			return cfg.Cookies.Cookies()
		}
	}

	return nil
}

func sameOrigin(target, origin string) bool {
	if origin == "" {
		return false
	}

	t, err := url.Parse(target)
	if err != nil {
		return false
	}
	o, err := url.Parse(origin)
	if err != nil {
		return false
	}

	return strings.EqualFold(t.Scheme, o.Scheme) && strings.EqualFold(t.Host, o.Host)
}

// statusText strips the numeric code from a status line such as "404 Not Found".
func statusText(code int, status string) string {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(status), strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return text
}

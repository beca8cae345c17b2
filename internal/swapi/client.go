package swapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"holocron/internal/domain"
)

// DefaultBaseURL is the public SWAPI mirror.
const DefaultBaseURL = "https://swapi.py4e.com/api/"

// maxSearchPages bounds pagination when following "next" links.
const maxSearchPages = 20

// ErrNotFound is returned for 404 responses.
var ErrNotFound = errors.New("swapi: resource not found")

// StatusError reports a non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("swapi %s %s: %s", strings.ToLower(e.Method), e.URL, e.Status)
}

// Is lets errors.Is(err, ErrNotFound) match 404s.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Client fetches SWAPI resources.
type Client struct {
	base  *url.URL
	http  *http.Client
	log   *zap.Logger
	cache domain.ResourceCache

	mu    sync.Mutex
	memo  map[string]domain.Record
	group singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithCache keeps responses in cache between runs.
func WithCache(cache domain.ResourceCache) Option {
	return func(c *Client) { c.cache = cache }
}

// New returns a Client for the API rooted at base. A nil httpClient uses
// http.DefaultClient.
func New(base string, httpClient *http.Client, opts ...Option) (*Client, error) {
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse swapi base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("swapi base url %q: scheme must be http or https", base)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		base: u,
		http: httpClient,
		log:  zap.NewNop(),
		memo: make(map[string]domain.Record),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Resolve turns ref into an absolute resource URL. Absolute http(s) URLs
// are returned unchanged; anything else resolves against the API root.
func (c *Client) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("swapi: empty resource reference")
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("swapi: parse %q: %w", ref, err)
	}
	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", fmt.Errorf("swapi: unsupported scheme in %q", ref)
		}
		return u.String(), nil
	}
	return c.base.ResolveReference(&url.URL{
		Path:     strings.TrimPrefix(u.Path, "/"),
		RawQuery: u.RawQuery,
	}).String(), nil
}

// GetResource fetches the resource at ref. The returned record is a copy
// the caller may modify.
func (c *Client) GetResource(ctx context.Context, ref string) (domain.Record, error) {
	u, err := c.Resolve(ref)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	rec, ok := c.memo[u]
	c.mu.Unlock()
	if ok {
		return rec.Clone(), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// The shared fetch outlives any one caller; each caller stops waiting
	// on its own context. The HTTP client timeout still bounds the fetch.
	ch := c.group.DoChan(u, func() (any, error) {
		return c.load(context.WithoutCancel(ctx), u)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(domain.Record).Clone(), nil
	}
}

func (c *Client) load(ctx context.Context, u string) (domain.Record, error) {
	if c.cache != nil {
		rec, ok, err := c.cache.LoadResource(u)
		if err != nil {
			c.log.Warn("swapi cache read failed", zap.String("url", u), zap.Error(err))
		} else if ok {
			c.log.Debug("swapi cache hit", zap.String("url", u))
			c.remember(u, rec)
			return rec, nil
		}
	}

	var rec domain.Record
	if err := c.getJSON(ctx, u, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("swapi get %s: empty body", u)
	}
	c.remember(u, rec)
	if c.cache != nil {
		if err := c.cache.SaveResource(u, rec); err != nil {
			c.log.Warn("swapi cache write failed", zap.String("url", u), zap.Error(err))
		}
	}
	return rec, nil
}

func (c *Client) remember(u string, rec domain.Record) {
	c.mu.Lock()
	c.memo[u] = rec
	c.mu.Unlock()
}

// searchPage is one page of a SWAPI collection.
type searchPage struct {
	Count   int             `json:"count"`
	Next    *string         `json:"next"`
	Results []domain.Record `json:"results"`
}

// Search returns every record of resource ("people", "planets", ...)
// whose searchable fields match term.
func (c *Client) Search(ctx context.Context, resource, term string) ([]domain.Record, error) {
	resource = strings.Trim(resource, "/")
	if resource == "" {
		return nil, errors.New("swapi: empty resource name")
	}
	next := c.base.ResolveReference(&url.URL{
		Path:     resource + "/",
		RawQuery: url.Values{"search": {term}}.Encode(),
	}).String()

	var out []domain.Record
	for page := 0; next != "" && page < maxSearchPages; page++ {
		var p searchPage
		if err := c.getJSON(ctx, next, &p); err != nil {
			return nil, err
		}
		out = append(out, p.Results...)
		next = ""
		if p.Next != nil {
			next = *p.Next
		}
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("swapi request", zap.String("url", u))
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("swapi get %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: req.Method, URL: u, Status: resp.Status, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("swapi get %s: read body: %w", u, err)
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("swapi get %s: decode: %w", u, err)
	}
	return nil
}

var _ domain.ResourceClient = (*Client)(nil)

// Package zentao fetches and submits the pages of a Zentao instance on behalf
// of the user session.
package zentao

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/slok/zentao/internal/image"
	"github.com/slok/zentao/internal/locale"
	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/scrape"
	"github.com/slok/zentao/internal/storage"
)

const (
	acceptHTMLHeader     = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8"
	acceptAnyHeader      = "*/*"
	acceptJSONHeader     = "application/json, text/javascript, */*; q=0.01"
	acceptLanguageHeader = "en-US,en;q=0.9,zh-CN;q=0.8,zh;q=0.7"
	userAgentHeader      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"

	taskListPath = "/my-work-task-assignedTo-0-id_desc-19-100-1.html"
	bugListPath  = "/my-work-bug-assignedTo-0-id_desc-41-100-1.html"
	refreshPath  = "/user-refreshRandom.html"
	loginPath    = "/user-login.html"
)

// CredentialsProvider returns the credentials used on each request.
type CredentialsProvider interface {
	Credentials(ctx context.Context) (model.Credentials, error)
}

// CredentialsProviderFunc is a helper to use functions as CredentialsProvider.
type CredentialsProviderFunc func(ctx context.Context) (model.Credentials, error)

// Credentials satisfies CredentialsProvider interface.
func (f CredentialsProviderFunc) Credentials(ctx context.Context) (model.Credentials, error) {
	return f(ctx)
}

// StaticCredentials returns a provider that always returns the same credentials.
func StaticCredentials(creds model.Credentials) CredentialsProvider {
	return CredentialsProviderFunc(func(context.Context) (model.Credentials, error) { return creds, nil })
}

// ClientConfig is the configuration of the client.
type ClientConfig struct {
	Credentials CredentialsProvider
	HTTPClient  *http.Client
	// ImageProcessor materializes bug narrative images, defaults to an image.Materializer.
	ImageProcessor image.Processor
	// Diagnostics receives a copy of every raw response.
	Diagnostics storage.ResponseRepository
	Locale      *locale.Locale
	Logger      log.Logger
}

func (c *ClientConfig) defaults() error {
	if c.Credentials == nil {
		return fmt.Errorf("credentials provider is required")
	}

	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}

	if c.Locale == nil {
		c.Locale = &locale.ZhCN
	}

	if c.Diagnostics == nil {
		c.Diagnostics = storage.NoopResponseRepository
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "zentao.Client"})

	if c.ImageProcessor == nil {
		m, err := image.NewMaterializer(image.MaterializerConfig{
			HTTPClient: c.HTTPClient,
			Locale:     c.Locale,
			Logger:     c.Logger,
		})
		if err != nil {
			return fmt.Errorf("could not create image materializer: %w", err)
		}
		c.ImageProcessor = m
	}

	return nil
}

// Client talks with Zentao as the user of the credentials.
// It holds no session state, every call reads the credentials again and
// nothing is retried.
type Client struct {
	credentials CredentialsProvider
	httpClient  *http.Client
	images      image.Processor
	diagnostics storage.ResponseRepository
	locale      *locale.Locale
	logger      log.Logger
}

// NewClient returns a new Zentao client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		credentials: cfg.Credentials,
		httpClient:  cfg.HTTPClient,
		images:      cfg.ImageProcessor,
		diagnostics: cfg.Diagnostics,
		locale:      cfg.Locale,
		logger:      cfg.Logger,
	}, nil
}

// session holds what a single call needs.
type session struct {
	creds  model.Credentials
	parser *scrape.Parser
}

func (c *Client) session(ctx context.Context) (*session, error) {
	creds, err := c.credentials.Credentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get credentials: %w", err)
	}

	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	p, err := scrape.NewParser(scrape.ParserConfig{
		BaseURL: creds.BaseURL,
		Locale:  c.locale,
		Logger:  c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create parser: %w", err)
	}

	return &session{creds: creds, parser: p}, nil
}

// cookie returns the cookie header the web UI sends.
func cookie(creds model.Credentials, withUser bool) string {
	c := fmt.Sprintf("%s=%s; lang=zh-cn; device=desktop; theme=default; keepLogin=on", creds.SessionCookieName, creds.SessionID)
	if withUser {
		c += "; za=" + creds.Username
	}
	return c
}

type request struct {
	method      string
	path        string
	accept      string
	contentType string
	body        io.Reader
	ajax        bool
	withUser    bool
	// diagnostics is the name used to save the raw response.
	diagnostics string
}

// do executes the request and returns the response body. Non 2xx responses fail
// with a model.TransportError.
func (c *Client) do(ctx context.Context, s *session, r request) (string, error) {
	u := s.creds.BaseURL + r.path
	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}

	req.Header.Set("Accept", r.accept)
	req.Header.Set("Accept-Language", acceptLanguageHeader)
	req.Header.Set("User-Agent", userAgentHeader)
	req.Header.Set("Cookie", cookie(s.creds, r.withUser))
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.ajax {
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
		req.Header.Set("Referer", s.creds.BaseURL+loginPath)
	}
	if r.method == http.MethodPost {
		req.Header.Set("Origin", s.creds.BaseURL)
	}

	logger := c.logger.WithCtxValues(ctx)
	logger.Debugf("%s %s", r.method, u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &model.TransportError{StatusCode: resp.StatusCode, URL: u}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response: %w", err)
	}

	if r.diagnostics != "" {
		if err := c.diagnostics.SaveResponse(ctx, r.diagnostics, string(body)); err != nil {
			logger.Warningf("could not save %s response: %s", r.diagnostics, err)
		}
	}

	return string(body), nil
}

// getPage gets an authenticated HTML page, expired sessions fail with model.ErrSessionExpired.
func (c *Client) getPage(ctx context.Context, s *session, path, diagnostics string) (string, error) {
	body, err := c.do(ctx, s, request{
		method:      http.MethodGet,
		path:        path,
		accept:      acceptHTMLHeader,
		withUser:    true,
		diagnostics: diagnostics,
	})
	if err != nil {
		return "", err
	}

	if scrape.IsSessionExpired(body) {
		c.logger.WithCtxValues(ctx).Warningf("session expired requesting %s", path)
		return "", model.ErrSessionExpired
	}

	return body, nil
}

func validID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("id is required: %w", model.ErrNotValid)
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return fmt.Errorf("id %q must be numeric: %w", id, model.ErrNotValid)
		}
	}
	return nil
}

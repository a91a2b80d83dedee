// Package image makes the images of bug narratives displayable without a
// Zentao session.
package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/slok/zentao/internal/locale"
	"github.com/slok/zentao/internal/log"
)

const (
	// DefaultMaxConcurrency is the number of images fetched at the same time.
	DefaultMaxConcurrency = 8

	acceptHeader         = "image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.9,zh-CN;q=0.8,zh;q=0.7"
	userAgentHeader      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/138.0.0.0 Safari/537.36"
)

// Processor processes the image urls of a bug.
type Processor interface {
	// Process returns one displayable source per url, in the same order.
	// It never fails, images that can't be processed become placeholders.
	Process(ctx context.Context, cookie string, urls []string) []string
}

// MaterializerConfig is the configuration of the materializer.
type MaterializerConfig struct {
	HTTPClient *http.Client
	// Locale is used for the placeholder label, defaults to zh-CN.
	Locale *locale.Locale
	// MaxConcurrency limits the images fetched at the same time.
	MaxConcurrency int
	Logger         log.Logger
}

func (c *MaterializerConfig) defaults() error {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}

	if c.Locale == nil {
		c.Locale = &locale.ZhCN
	}

	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = DefaultMaxConcurrency
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max concurrency can't be negative")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "image.Materializer"})

	return nil
}

// Materializer inlines plain http images as base64 data URIs so they can be
// rendered by clients that block mixed content. Other urls are kept as they are.
type Materializer struct {
	httpClient     *http.Client
	locale         *locale.Locale
	maxConcurrency int
	logger         log.Logger
}

// NewMaterializer returns a new image materializer.
func NewMaterializer(cfg MaterializerConfig) (*Materializer, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Materializer{
		httpClient:     cfg.HTTPClient,
		locale:         cfg.Locale,
		maxConcurrency: cfg.MaxConcurrency,
		logger:         cfg.Logger,
	}, nil
}

// Process satisfies Processor interface.
func (m *Materializer) Process(ctx context.Context, cookie string, urls []string) []string {
	if len(urls) == 0 {
		return []string{}
	}

	result := make([]string, len(urls))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.maxConcurrency)

	for i, u := range urls {
		if !strings.HasPrefix(u, "http://") {
			result[i] = u
			continue
		}

		g.Go(func() error {
			result[i] = m.materialize(ctx, cookie, u)
			return nil
		})
	}

	// Goroutines never return errors, failures are placeholders.
	_ = g.Wait()

	return result
}

func (m *Materializer) materialize(ctx context.Context, cookie, u string) string {
	logger := m.logger.WithCtxValues(ctx).WithValues(log.Kv{"url": u})

	data, contentType, err := m.fetch(ctx, cookie, u)
	if err != nil {
		logger.Warningf("could not materialize image: %s", err)
		return m.placeholder(u)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

func (m *Materializer) fetch(ctx context.Context, cookie, u string) (data []byte, contentType string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguageHeader)
	req.Header.Set("User-Agent", userAgentHeader)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, u)
	}

	// Expired sessions answer 200 with the login page.
	contentType = resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("response is not an image, content type: %q", contentType)
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading image: %w", err)
	}

	return data, contentType, nil
}

func (m *Materializer) placeholder(u string) string {
	return fmt.Sprintf("[📷 %s](%s)", m.locale.ImagePlaceholder, u)
}

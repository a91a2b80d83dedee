// Package scrape extracts Zentao records from server rendered HTML pages.
//
// Parsers never fail on a single row or field: missing markup degrades to empty
// values or the enum default and is logged.
package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/slok/zentao/internal/locale"
	"github.com/slok/zentao/internal/log"
)

// ParserConfig is the configuration of the parser.
type ParserConfig struct {
	// BaseURL is used to resolve relative image urls (e.g. http://zentao.local/zentao).
	BaseURL string
	// Locale is the language the Zentao instance renders, defaults to zh-CN.
	Locale *locale.Locale
	Logger log.Logger
}

func (c *ParserConfig) defaults() error {
	if c.Locale == nil {
		c.Locale = &locale.ZhCN
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "scrape.Parser"})

	return nil
}

// Parser parses Zentao pages into model records.
// It has no mutable state and is safe for concurrent use.
type Parser struct {
	baseURL *url.URL
	locale  *locale.Locale
	logger  log.Logger
}

// NewParser returns a new parser.
func NewParser(cfg ParserConfig) (*Parser, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var base *url.URL
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
		}
		// Relative paths must resolve under the base path, not replace its last segment.
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		base = u
	}

	return &Parser{
		baseURL: base,
		locale:  cfg.Locale,
		logger:  cfg.Logger,
	}, nil
}

func loadDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("could not load html document: %w", err)
	}
	return doc, nil
}

// resolveURL resolves an image source against the base url.
func (p *Parser) resolveURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "data:") {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		p.logger.Warningf("invalid image url %q: %s", raw, err)
		return raw
	}
	if u.IsAbs() || p.baseURL == nil {
		return raw
	}

	return p.baseURL.ResolveReference(u).String()
}

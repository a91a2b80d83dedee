package buglist

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/search"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/zentao"
)

// ServiceConfig is the configuration for the bug list service.
type ServiceConfig struct {
	Zentao zentao.Service
	// Guard handles the session expiration, by default expired sessions are returned as errors.
	Guard  *session.Guard
	Logger log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Zentao == nil {
		return fmt.Errorf("zentao service is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.BugList"})

	if c.Guard == nil {
		g, err := session.NewGuard(session.GuardConfig{Reloginer: c.Zentao, Logger: c.Logger})
		if err != nil {
			return fmt.Errorf("could not create session guard: %w", err)
		}
		c.Guard = g
	}

	return nil
}

// Service lists the bugs assigned to the user.
type Service struct {
	zentao zentao.Service
	guard  *session.Guard
	logger log.Logger
}

// NewService creates a new bug list service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		zentao: cfg.Zentao,
		guard:  cfg.Guard,
		logger: cfg.Logger,
	}, nil
}

// Request represents the bug list request parameters.
type Request struct {
	// Product is an optional filter to only show the bugs of this product.
	Product string
	// Query is an optional fuzzy and pinyin search.
	Query string
	Sort  search.SortOrder
}

// Response is the bug list result.
type Response struct {
	Bugs []model.Bug
	// Products are all the products of the user bugs, before filtering.
	Products []model.Group
}

// Run lists the bugs, optionally filtered, searched and sorted.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	var bugs []model.Bug
	err := s.guard.Do(ctx, func(ctx context.Context) (err error) {
		bugs, err = s.zentao.FetchBugList(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch bug list: %w", err)
	}

	products := make([]string, 0, len(bugs))
	for _, b := range bugs {
		products = append(products, b.Product)
	}
	resp := &Response{Products: model.GroupCounts(products)}

	if req.Product != "" {
		filtered := make([]model.Bug, 0, len(bugs))
		for _, b := range bugs {
			if b.Product == req.Product {
				filtered = append(filtered, b)
			}
		}
		bugs = filtered
	}

	bugs = search.Bugs(bugs, req.Query)
	resp.Bugs = search.SortBugs(bugs, req.Sort)

	s.logger.Debugf("found %d bugs", len(resp.Bugs))
	return resp, nil
}

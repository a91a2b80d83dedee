package relogin

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/zentao"
)

// ServiceConfig is the configuration for the relogin service.
type ServiceConfig struct {
	Zentao zentao.Service
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Relogin"})

	if c.Guard == nil {
		g, err := session.NewGuard(session.GuardConfig{Reloginer: c.Zentao, Logger: c.Logger})
		if err != nil {
			return fmt.Errorf("could not create session guard: %w", err)
		}
		c.Guard = g
	}

	return nil
}

// Service refreshes the user session logging in again with the user password.
type Service struct {
	guard  *session.Guard
	logger log.Logger
}

// NewService creates a new relogin service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		guard:  cfg.Guard,
		logger: cfg.Logger,
	}, nil
}

// Run logs in again. Login errors are returned as they are so the caller
// can tell a rejected login from a broken one.
func (s *Service) Run(ctx context.Context) error {
	if err := s.guard.Relogin(ctx); err != nil {
		return err
	}

	s.logger.Infof("session refreshed")
	return nil
}

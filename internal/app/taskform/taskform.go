package taskform

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/zentao"
)

// ServiceConfig is the configuration for the task form service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.TaskForm"})

	if c.Guard == nil {
		g, err := session.NewGuard(session.GuardConfig{Reloginer: c.Zentao, Logger: c.Logger})
		if err != nil {
			return fmt.Errorf("could not create session guard: %w", err)
		}
		c.Guard = g
	}

	return nil
}

// Service gets the values to fill the task finish form.
type Service struct {
	zentao zentao.Service
	guard  *session.Guard
	logger log.Logger
}

// NewService creates a new task form service.
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

// Request represents the task form request parameters.
type Request struct {
	ID string
}

// Run gets the finish form details of the task.
func (s *Service) Run(ctx context.Context, req Request) (*model.TaskForm, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("id is required: %w", model.ErrNotValid)
	}

	var res model.TaskForm
	err := s.guard.Do(ctx, func(ctx context.Context) (err error) {
		res, err = s.zentao.FetchTaskForm(ctx, req.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch task form %s: %w", req.ID, err)
	}

	return &res, nil
}

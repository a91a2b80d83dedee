package tasklist

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/search"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/zentao"
)

// ServiceConfig is the configuration for the task list service.
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
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.TaskList"})

	if c.Guard == nil {
		g, err := session.NewGuard(session.GuardConfig{Reloginer: c.Zentao, Logger: c.Logger})
		if err != nil {
			return fmt.Errorf("could not create session guard: %w", err)
		}
		c.Guard = g
	}

	return nil
}

// Service lists the tasks assigned to the user.
type Service struct {
	zentao zentao.Service
	guard  *session.Guard
	logger log.Logger
}

// NewService creates a new task list service.
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

// Request represents the task list request parameters.
type Request struct {
	// Project is an optional filter to only show the tasks of this project.
	Project string
	// Query is an optional fuzzy and pinyin search.
	Query string
	Sort  search.SortOrder
}

// Response is the task list result.
type Response struct {
	Tasks []model.Task
	// Projects are all the projects of the user tasks, before filtering.
	Projects []model.Group
}

// Run lists the tasks, optionally filtered, searched and sorted.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	var tasks []model.Task
	err := s.guard.Do(ctx, func(ctx context.Context) (err error) {
		tasks, err = s.zentao.FetchTaskList(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch task list: %w", err)
	}

	projects := make([]string, 0, len(tasks))
	for _, t := range tasks {
		projects = append(projects, t.Project)
	}
	resp := &Response{Projects: model.GroupCounts(projects)}

	if req.Project != "" {
		filtered := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Project == req.Project {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	tasks = search.Tasks(tasks, req.Query)
	resp.Tasks = search.SortTasks(tasks, req.Sort)

	s.logger.Debugf("found %d tasks", len(resp.Tasks))
	return resp, nil
}

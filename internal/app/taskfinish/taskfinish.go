package taskfinish

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/worktime"
	"github.com/slok/zentao/internal/zentao"
)

const (
	// DefaultComment is the comment sent when the user doesn't set one.
	DefaultComment = "client: zentao-cli"
	// DefaultConsumedHours are the consumed hours used when the task has no estimation.
	DefaultConsumedHours = "8"
)

// ServiceConfig is the configuration for the task finish service.
type ServiceConfig struct {
	Zentao zentao.Service
	Guard  *session.Guard
	// TimeNow returns the current time, used for the default dates.
	TimeNow func() time.Time
	Logger  log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Zentao == nil {
		return fmt.Errorf("zentao service is required")
	}

	if c.TimeNow == nil {
		c.TimeNow = time.Now
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.TaskFinish"})

	if c.Guard == nil {
		g, err := session.NewGuard(session.GuardConfig{Reloginer: c.Zentao, Logger: c.Logger})
		if err != nil {
			return fmt.Errorf("could not create session guard: %w", err)
		}
		c.Guard = g
	}

	return nil
}

// Service finishes tasks filling the finish form like a user would.
type Service struct {
	zentao  zentao.Service
	guard   *session.Guard
	timeNow func() time.Time
	logger  log.Logger
}

// NewService creates a new task finish service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		zentao:  cfg.Zentao,
		guard:   cfg.Guard,
		timeNow: cfg.TimeNow,
		logger:  cfg.Logger,
	}, nil
}

// Request represents the task finish request parameters, all the fields
// except the task ID are optional.
type Request struct {
	TaskID string
	// CurrentConsumed are the hours consumed in this work, by default the task estimation.
	CurrentConsumed string
	// AssignTo is the team member value, label or title. By default the member Zentao preselects.
	AssignTo string
	// RealStarted uses the `YYYY-MM-DD HH:mm` format. By default the task real start or
	// the estimated start day at the start of the workday.
	RealStarted string
	// FinishedDate uses the `YYYY-MM-DD HH:mm` format. By default it's calculated
	// from the real start and the current consumed hours.
	FinishedDate string
	Comment      string
}

// Run finishes the task and returns the values that were submitted.
func (s *Service) Run(ctx context.Context, req Request) (*model.FinishTaskRequest, error) {
	if req.TaskID == "" {
		return nil, fmt.Errorf("task id is required: %w", model.ErrNotValid)
	}

	var task model.Task
	err := s.guard.Do(ctx, func(ctx context.Context) (err error) {
		task, err = s.zentao.FetchTaskDetail(ctx, req.TaskID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch task %s: %w", req.TaskID, err)
	}

	var form model.TaskForm
	err = s.guard.Do(ctx, func(ctx context.Context) (err error) {
		form, err = s.zentao.FetchTaskForm(ctx, req.TaskID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch task %s finish form: %w", req.TaskID, err)
	}

	r, err := s.finishRequest(req, task, form)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("finishing task %s with %sh consumed (total %sh), finished at %s", r.TaskID, r.CurrentConsumed, r.Consumed, r.FinishedDate)

	err = s.guard.Do(ctx, func(ctx context.Context) error {
		return s.zentao.FinishTask(ctx, r)
	})
	if err != nil {
		return nil, fmt.Errorf("could not finish task %s: %w", req.TaskID, err)
	}

	return &r, nil
}

func (s *Service) finishRequest(req Request, task model.Task, form model.TaskForm) (model.FinishTaskRequest, error) {
	current := strings.TrimSpace(req.CurrentConsumed)
	if current == "" {
		current = DefaultConsumedHours
		if worktime.ParseHours(task.Estimate) > 0 {
			current = task.Estimate
		}
	}
	currentHours := worktime.ParseHours(current)
	if currentHours <= 0 {
		return model.FinishTaskRequest{}, fmt.Errorf("consumed hours must be a positive number, got %q: %w", current, model.ErrNotValid)
	}

	previous := form.TotalConsumed
	if previous == "" {
		previous = task.Consumed
	}

	realStarted, err := s.realStarted(req, task, form)
	if err != nil {
		return model.FinishTaskRequest{}, err
	}

	finished := req.FinishedDate
	if finished == "" {
		finished = worktime.FinishTime(realStarted, currentHours).Format(worktime.Layout)
	} else if _, err := time.Parse(worktime.Layout, finished); err != nil {
		return model.FinishTaskRequest{}, fmt.Errorf("finished date %q must use the %q format: %w", finished, worktime.Layout, model.ErrNotValid)
	}

	assignedTo, err := assignee(req.AssignTo, form)
	if err != nil {
		return model.FinishTaskRequest{}, err
	}

	comment := req.Comment
	if comment == "" {
		comment = DefaultComment
	}

	return model.FinishTaskRequest{
		TaskID:          req.TaskID,
		CurrentConsumed: current,
		Consumed:        worktime.AddHours(previous, current),
		AssignedTo:      assignedTo,
		RealStarted:     realStarted.Format(worktime.Layout),
		FinishedDate:    finished,
		Status:          model.FinishTaskStatusDone,
		UID:             form.UID,
		Comment:         comment,
	}, nil
}

func (s *Service) realStarted(req Request, task model.Task, form model.TaskForm) (time.Time, error) {
	now := s.timeNow()

	if req.RealStarted != "" {
		t, err := time.ParseInLocation(worktime.Layout, req.RealStarted, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("real started %q must use the %q format: %w", req.RealStarted, worktime.Layout, model.ErrNotValid)
		}
		return t, nil
	}

	// Zentao fills the form with the real start when the task was started.
	if t, err := time.ParseInLocation(worktime.Layout, form.RealStarted, now.Location()); err == nil {
		return t, nil
	}

	return worktime.DefaultStart(task.EstimatedStart, now), nil
}

// assignee resolves the member to assign the task to after finishing.
func assignee(to string, form model.TaskForm) (string, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		if m, ok := form.SelectedMember(); ok {
			return m.Value, nil
		}
		return form.AssignedTo, nil
	}

	for _, m := range form.Members {
		if m.Value == to || m.Label == to || m.Title == to {
			return m.Value, nil
		}
	}

	return "", fmt.Errorf("%q is not a member of the task team: %w", to, model.ErrNotValid)
}

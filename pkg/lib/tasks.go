package lib

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/app/taskdetail"
	"github.com/slok/zentao/internal/app/taskfinish"
	"github.com/slok/zentao/internal/app/taskform"
	"github.com/slok/zentao/internal/app/tasklist"
)

// FetchTaskList returns the tasks assigned to the user.
// Pass nil opts to get them as Zentao sends them.
func (c *Client) FetchTaskList(ctx context.Context, opts *ListOpts) ([]Task, error) {
	svc, err := tasklist.NewService(tasklist.ServiceConfig{
		Zentao: c.zentao,
		Guard:  c.guard,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	var req tasklist.Request
	if opts != nil {
		req = tasklist.Request{Project: opts.Group, Query: opts.Query, Sort: opts.Sort}
	}

	resp, err := svc.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp.Tasks, nil
}

// FetchTaskDetail returns a task with the details only its page has,
// like the estimated and real start.
func (c *Client) FetchTaskDetail(ctx context.Context, id string) (*Task, error) {
	svc, err := taskdetail.NewService(taskdetail.ServiceConfig{
		Zentao: c.zentao,
		Guard:  c.guard,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	return svc.Run(ctx, taskdetail.Request{ID: id})
}

// FetchTaskFormDetails returns the current values of the task finish form.
func (c *Client) FetchTaskFormDetails(ctx context.Context, id string) (*TaskForm, error) {
	svc, err := taskform.NewService(taskform.ServiceConfig{
		Zentao: c.zentao,
		Guard:  c.guard,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	return svc.Run(ctx, taskform.Request{ID: id})
}

// FinishTask finishes a task and returns the submitted values.
// Pass nil opts to use the calculated values for all of them.
func (c *Client) FinishTask(ctx context.Context, id string, opts *FinishTaskOpts) (*FinishTaskRequest, error) {
	svc, err := taskfinish.NewService(taskfinish.ServiceConfig{
		Zentao: c.zentao,
		Guard:  c.guard,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	req := taskfinish.Request{TaskID: id}
	if opts != nil {
		req.CurrentConsumed = opts.CurrentConsumed
		req.AssignTo = opts.AssignTo
		req.RealStarted = opts.RealStarted
		req.FinishedDate = opts.FinishedDate
		req.Comment = opts.Comment
	}

	return svc.Run(ctx, req)
}

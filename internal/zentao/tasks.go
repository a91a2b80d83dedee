package zentao

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/model"
)

// FetchTaskList returns the tasks assigned to the user.
func (c *Client) FetchTaskList(ctx context.Context) ([]model.Task, error) {
	s, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	body, err := c.getPage(ctx, s, taskListPath, "my-task.html")
	if err != nil {
		return nil, fmt.Errorf("could not fetch task list: %w", err)
	}

	tasks := s.parser.ParseTaskList(body)
	c.logger.WithCtxValues(ctx).Debugf("fetched %d tasks", len(tasks))

	return tasks, nil
}

// FetchTaskDetail returns a task with the detail only fields.
func (c *Client) FetchTaskDetail(ctx context.Context, id string) (model.Task, error) {
	if err := validID(id); err != nil {
		return model.Task{}, err
	}

	s, err := c.session(ctx)
	if err != nil {
		return model.Task{}, err
	}

	body, err := c.getPage(ctx, s, fmt.Sprintf("/task-view-%s.html", id), fmt.Sprintf("task-%s.html", id))
	if err != nil {
		return model.Task{}, fmt.Errorf("could not fetch task %s: %w", id, err)
	}

	task, err := s.parser.ParseTaskDetail(body, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("could not parse task %s: %w", id, err)
	}

	return task, nil
}

package zentao

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/scrape"
)

func taskFinishPath(id string) string {
	return fmt.Sprintf("/task-finish-%s.html?onlybody=yes", id)
}

// FetchTaskForm returns the details required to finish a task.
func (c *Client) FetchTaskForm(ctx context.Context, id string) (model.TaskForm, error) {
	if err := validID(id); err != nil {
		return model.TaskForm{}, err
	}

	s, err := c.session(ctx)
	if err != nil {
		return model.TaskForm{}, err
	}

	body, err := c.getPage(ctx, s, taskFinishPath(id), fmt.Sprintf("task-finish-%s.html", id))
	if err != nil {
		return model.TaskForm{}, fmt.Errorf("could not fetch task %s finish form: %w", id, err)
	}

	form, err := s.parser.ParseTaskForm(body)
	if err != nil {
		return model.TaskForm{}, fmt.Errorf("could not parse task %s finish form: %w", id, err)
	}

	return form, nil
}

// FinishTask submits the finish form of a task. Rejections fail with a
// model.SubmissionFailedError.
func (c *Client) FinishTask(ctx context.Context, r model.FinishTaskRequest) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("invalid finish request: %w", err)
	}
	if err := validID(r.TaskID); err != nil {
		return err
	}

	s, err := c.session(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"currentConsumed", r.CurrentConsumed},
		{"consumed", r.Consumed},
		{"assignedTo", r.AssignedTo},
		{"realStarted", r.RealStarted},
		{"finishedDate", r.FinishedDate},
		{"status", r.Status},
		{"comment", r.Comment},
		{"uid", r.UID},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("could not write %s field: %w", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not build form: %w", err)
	}

	body, err := c.do(ctx, s, request{
		method:      http.MethodPost,
		path:        taskFinishPath(r.TaskID),
		accept:      acceptHTMLHeader,
		contentType: w.FormDataContentType(),
		body:        &buf,
		withUser:    true,
		diagnostics: fmt.Sprintf("task-finish-%s-submit.html", r.TaskID),
	})
	if err != nil {
		return fmt.Errorf("could not submit task %s finish form: %w", r.TaskID, err)
	}

	if scrape.IsSessionExpired(body) {
		return fmt.Errorf("could not submit task %s finish form: %w", r.TaskID, model.ErrSessionExpired)
	}

	if err := s.parser.ParseFinishResponse(body); err != nil {
		return fmt.Errorf("task %s was not finished: %w", r.TaskID, err)
	}

	c.logger.WithCtxValues(ctx).Infof("task %s finished", r.TaskID)
	return nil
}

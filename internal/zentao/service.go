package zentao

import (
	"context"

	"github.com/slok/zentao/internal/model"
)

// Service are the Zentao operations available for the user session.
type Service interface {
	FetchTaskList(ctx context.Context) ([]model.Task, error)
	FetchTaskDetail(ctx context.Context, id string) (model.Task, error)
	FetchBugList(ctx context.Context) ([]model.Bug, error)
	FetchBugDetail(ctx context.Context, id string) (model.BugDetail, error)
	FetchTaskForm(ctx context.Context, id string) (model.TaskForm, error)
	FinishTask(ctx context.Context, r model.FinishTaskRequest) error
	Relogin(ctx context.Context) error
}

//go:generate mockery --case underscore --output zentaomock --outpkg zentaomock --name Service --structname MockService

var _ Service = &Client{}

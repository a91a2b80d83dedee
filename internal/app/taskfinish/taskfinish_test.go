package taskfinish_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/zentao/internal/app/taskfinish"
	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/zentao/zentaomock"
)

func TestNewService(t *testing.T) {
	_, err := taskfinish.NewService(taskfinish.ServiceConfig{})
	assert.Error(t, err)
}

func TestService_Run(t *testing.T) {
	now := time.Date(2026, 10, 17, 16, 30, 0, 0, time.UTC)

	task := model.Task{ID: "42", Estimate: "12", Consumed: "2", EstimatedStart: "2026-10-12"}
	form := func() model.TaskForm {
		return model.TaskForm{
			Members: []model.TeamMember{
				{Value: "alice", Label: "A:Alice", Title: "Alice"},
				{Value: "bob", Label: "B:Bob", Title: "Bob", Selected: true},
			},
			TotalConsumed: "3",
			AssignedTo:    "bob",
			UID:           "5f1a",
		}
	}

	tests := map[string]struct {
		mock   func(m *zentaomock.MockService)
		req    taskfinish.Request
		expReq   *model.FinishTaskRequest
		expErr   bool
		expErrIs error
	}{
		"finish with all the defaults": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskDetail", mock.Anything, "42").Once().Return(task, nil)
				m.On("FetchTaskForm", mock.Anything, "42").Once().Return(form(), nil)
				m.On("FinishTask", mock.Anything, model.FinishTaskRequest{
					TaskID:          "42",
					CurrentConsumed: "12",
					Consumed:        "15",
					AssignedTo:      "bob",
					RealStarted:     "2026-10-12 09:00",
					FinishedDate:    "2026-10-13 13:00",
					Status:          "done",
					UID:             "5f1a",
					Comment:         "client: zentao-cli",
				}).Once().Return(nil)
			},
			req: taskfinish.Request{TaskID: "42"},
			expReq: &model.FinishTaskRequest{
				TaskID:          "42",
				CurrentConsumed: "12",
				Consumed:        "15",
				AssignedTo:      "bob",
				RealStarted:     "2026-10-12 09:00",
				FinishedDate:    "2026-10-13 13:00",
				Status:          "done",
				UID:             "5f1a",
				Comment:         "client: zentao-cli",
			},
		},

		"finish with user values": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskDetail", mock.Anything, "42").Once().Return(task, nil)
				m.On("FetchTaskForm", mock.Anything, "42").Once().Return(form(), nil)
				m.On("FinishTask", mock.Anything, mock.Anything).Once().Return(nil)
			},
			req: taskfinish.Request{
				TaskID:          "42",
				CurrentConsumed: "1.5",
				AssignTo:        "Alice",
				RealStarted:     "2026-10-16 14:00",
				FinishedDate:    "2026-10-16 15:30",
				Comment:         "done",
			},
			expReq: &model.FinishTaskRequest{
				TaskID:          "42",
				CurrentConsumed: "1.5",
				Consumed:        "4.5",
				AssignedTo:      "alice",
				RealStarted:     "2026-10-16 14:00",
				FinishedDate:    "2026-10-16 15:30",
				Status:          "done",
				UID:             "5f1a",
				Comment:         "done",
			},
		},

		"the form real start should be used when the task was started": {
			mock: func(m *zentaomock.MockService) {
				f := form()
				f.RealStarted = "2026-10-15 10:00"
				m.On("FetchTaskDetail", mock.Anything, "42").Once().Return(model.Task{ID: "42"}, nil)
				m.On("FetchTaskForm", mock.Anything, "42").Once().Return(f, nil)
				m.On("FinishTask", mock.Anything, mock.Anything).Once().Return(nil)
			},
			req: taskfinish.Request{TaskID: "42"},
			expReq: &model.FinishTaskRequest{
				TaskID:          "42",
				CurrentConsumed: "8",
				Consumed:        "11",
				AssignedTo:      "bob",
				RealStarted:     "2026-10-15 10:00",
				FinishedDate:    "2026-10-15 18:00",
				Status:          "done",
				UID:             "5f1a",
				Comment:         "client: zentao-cli",
			},
		},

		"without estimated start the default start should be today": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskDetail", mock.Anything, "42").Once().Return(model.Task{ID: "42", Estimate: "4"}, nil)
				m.On("FetchTaskForm", mock.Anything, "42").Once().Return(model.TaskForm{UID: "5f1a"}, nil)
				m.On("FinishTask", mock.Anything, mock.Anything).Once().Return(nil)
			},
			req: taskfinish.Request{TaskID: "42"},
			expReq: &model.FinishTaskRequest{
				TaskID:          "42",
				CurrentConsumed: "4",
				Consumed:        "4",
				RealStarted:     "2026-10-17 09:00",
				FinishedDate:    "2026-10-17 13:00",
				Status:          "done",
				UID:             "5f1a",
				Comment:         "client: zentao-cli",
			},
		},

		"unknown assignee should fail without submitting": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskDetail", mock.Anything, "42").Once().Return(task, nil)
				m.On("FetchTaskForm", mock.Anything, "42").Once().Return(form(), nil)
			},
			req:      taskfinish.Request{TaskID: "42", AssignTo: "mallory"},
			expErr:   true,
			expErrIs: model.ErrNotValid,
		},

		"invalid consumed hours should fail without submitting": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskDetail", mock.Anything, "42").Once().Return(task, nil)
				m.On("FetchTaskForm", mock.Anything, "42").Once().Return(form(), nil)
			},
			req:      taskfinish.Request{TaskID: "42", CurrentConsumed: "-1"},
			expErr:   true,
			expErrIs: model.ErrNotValid,
		},

		"invalid finished date should fail without submitting": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskDetail", mock.Anything, "42").Once().Return(task, nil)
				m.On("FetchTaskForm", mock.Anything, "42").Once().Return(form(), nil)
			},
			req:      taskfinish.Request{TaskID: "42", FinishedDate: "tomorrow"},
			expErr:   true,
			expErrIs: model.ErrNotValid,
		},

		"missing task id should fail": {
			mock:     func(m *zentaomock.MockService) {},
			req:      taskfinish.Request{},
			expErr:   true,
			expErrIs: model.ErrNotValid,
		},

		"rejected submission should fail": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskDetail", mock.Anything, "42").Once().Return(task, nil)
				m.On("FetchTaskForm", mock.Anything, "42").Once().Return(form(), nil)
				m.On("FinishTask", mock.Anything, mock.Anything).Once().Return(&model.SubmissionFailedError{Message: "consumed must be positive"})
			},
			req:    taskfinish.Request{TaskID: "42"},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			m := &zentaomock.MockService{}
			test.mock(m)

			svc, err := taskfinish.NewService(taskfinish.ServiceConfig{
				Zentao:  m,
				TimeNow: func() time.Time { return now },
				Logger:  log.Noop,
			})
			require.NoError(err)

			got, err := svc.Run(context.Background(), test.req)

			if test.expErr {
				assert.Error(err)
				if test.expErrIs != nil {
					assert.ErrorIs(err, test.expErrIs)
				}
			} else if assert.NoError(err) {
				assert.Equal(test.expReq, got)
			}

			m.AssertExpectations(t)
		})
	}
}

package tasklist_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/zentao/internal/app/tasklist"
	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/search"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/zentao/zentaomock"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config tasklist.ServiceConfig
		expErr bool
	}{
		"valid config should create service": {
			config: tasklist.ServiceConfig{
				Zentao: &zentaomock.MockService{},
				Logger: log.Noop,
			},
			expErr: false,
		},
		"missing zentao service should fail": {
			config: tasklist.ServiceConfig{
				Logger: log.Noop,
			},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			svc, err := tasklist.NewService(test.config)

			if test.expErr {
				require.Error(err)
				require.Nil(svc)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestService_Run(t *testing.T) {
	tasks := func() []model.Task {
		return []model.Task{
			{ID: "1", Title: "Fix login page", Project: "Portal", Priority: model.PriorityLow, Status: model.TaskStatusDoing},
			{ID: "2", Title: "Write release notes", Project: "Docs", Priority: model.PriorityCritical, Status: model.TaskStatusWait},
			{ID: "3", Title: "Fix logout page", Project: "Portal", Priority: model.PriorityHigh, Status: model.TaskStatusWait},
		}
	}

	tests := map[string]struct {
		autoRelogin bool
		mock        func(m *zentaomock.MockService)
		req         tasklist.Request
		expIDs      []string
		expProjects []model.Group
		expErr      bool
		expErrIs    error
	}{
		"list all tasks without filter": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskList", mock.Anything).Once().Return(tasks(), nil)
			},
			req:    tasklist.Request{},
			expIDs: []string{"1", "2", "3"},
			expProjects: []model.Group{
				{Name: "Docs", Count: 1},
				{Name: "Portal", Count: 2},
			},
		},
		"filter by project": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskList", mock.Anything).Once().Return(tasks(), nil)
			},
			req:    tasklist.Request{Project: "Portal"},
			expIDs: []string{"1", "3"},
			expProjects: []model.Group{
				{Name: "Docs", Count: 1},
				{Name: "Portal", Count: 2},
			},
		},
		"filter by project and sort by priority": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskList", mock.Anything).Once().Return(tasks(), nil)
			},
			req:    tasklist.Request{Project: "Portal", Sort: search.SortPriorityAsc},
			expIDs: []string{"3", "1"},
			expProjects: []model.Group{
				{Name: "Docs", Count: 1},
				{Name: "Portal", Count: 2},
			},
		},
		"search by query": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskList", mock.Anything).Once().Return(tasks(), nil)
			},
			req:    tasklist.Request{Query: "release"},
			expIDs: []string{"2"},
			expProjects: []model.Group{
				{Name: "Docs", Count: 1},
				{Name: "Portal", Count: 2},
			},
		},
		"expired session without auto relogin should fail": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskList", mock.Anything).Once().Return(nil, model.ErrSessionExpired)
			},
			req:      tasklist.Request{},
			expErr:   true,
			expErrIs: model.ErrSessionExpired,
		},
		"expired session with auto relogin should retry": {
			autoRelogin: true,
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskList", mock.Anything).Once().Return(nil, model.ErrSessionExpired)
				m.On("Relogin", mock.Anything).Once().Return(nil)
				m.On("FetchTaskList", mock.Anything).Once().Return(tasks()[:1], nil)
			},
			req:         tasklist.Request{},
			expIDs:      []string{"1"},
			expProjects: []model.Group{{Name: "Portal", Count: 1}},
		},
		"zentao error should propagate": {
			mock: func(m *zentaomock.MockService) {
				m.On("FetchTaskList", mock.Anything).Once().Return(nil, fmt.Errorf("something"))
			},
			req:    tasklist.Request{},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			// Setup
			m := &zentaomock.MockService{}
			test.mock(m)

			guard, err := session.NewGuard(session.GuardConfig{Reloginer: m, AutoRelogin: test.autoRelogin})
			require.NoError(err)

			svc, err := tasklist.NewService(tasklist.ServiceConfig{
				Zentao: m,
				Guard:  guard,
				Logger: log.Noop,
			})
			require.NoError(err)

			// Execute
			resp, err := svc.Run(context.Background(), test.req)

			// Verify
			if test.expErr {
				assert.Error(err)
				if test.expErrIs != nil {
					assert.ErrorIs(err, test.expErrIs)
				}
			} else if assert.NoError(err) {
				ids := []string{}
				for _, t := range resp.Tasks {
					ids = append(ids, t.ID)
				}
				assert.Equal(test.expIDs, ids)
				assert.Equal(test.expProjects, resp.Projects)
			}

			m.AssertExpectations(t)
		})
	}
}

package scrape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zentao/internal/model"
)

const taskDetailPage = `<html><head><title>TASK #101 Write the docs - 禅道</title></head><body>
<div id="mainMenu"><div class="page-title"><span class="label label-id">101</span><span class="text" title="Write the docs">Write the docs</span></div></div>
<div id="mainContent" class="main-row">
  <div class="side-col col-4">
    <details id="legendBasicInfo"><table class="table table-data"><tbody>
      <tr><th>所属执行</th><td><a href="/execution-task-3.html">Platform</a> <span class="label">sprint</span></td></tr>
      <tr><th>指派给</th><td>Alice 于 2024-04-20 10:00</td></tr>
      <tr><th>任务状态</th><td><span class="status-task status-done">已完成</span></td></tr>
      <tr><th>优先级</th><td><span class="label-pri label-pri-3" title="3">3</span></td></tr>
    </tbody></table></details>
    <details id="legendEffort"><table class="table table-data"><tbody>
      <tr><th>预计开始</th><td>2024-04-21</td></tr>
      <tr><th>实际开始</th><td>2024-04-22 09:00:00</td></tr>
      <tr><th>截止日期</th><td>2024-05-01</td></tr>
      <tr><th>最初预计</th><td>8 工时</td></tr>
      <tr><th>总计消耗</th><td>8 工时</td></tr>
      <tr><th>预计剩余</th><td>0 工时</td></tr>
    </tbody></table></details>
  </div>
</div></body></html>`

func TestParseTaskDetail(t *testing.T) {
	tests := map[string]struct {
		html    string
		expTask model.Task
		expErr  error
	}{
		"A task page should be parsed.": {
			html: taskDetailPage,
			expTask: model.Task{
				ID:             "101",
				Title:          "Write the docs",
				Status:         model.TaskStatusDone,
				Project:        "Platform",
				AssignedTo:     "Alice",
				Deadline:       "2024-05-01",
				Priority:       model.PriorityMedium,
				Estimate:       "8 工时",
				Consumed:       "8 工时",
				Left:           "0 工时",
				EstimatedStart: "2024-04-21",
				ActualStart:    "2024-04-22 09:00:00",
			},
		},

		"A page with only the title should degrade the fields.": {
			html: `<html><head><title>TASK #101 Bare task</title></head><body></body></html>`,
			expTask: model.Task{
				ID:       "101",
				Title:    "Bare task",
				Status:   model.TaskStatusUnknown,
				Priority: model.PriorityUnknown,
			},
		},

		"A page without title should fail as unrecognized.": {
			html:   `<html><body><div>nothing</div></body></html>`,
			expErr: model.ErrDocumentUnrecognized,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p := newParser(t)

			gotTask, err := p.ParseTaskDetail(test.html, "101")

			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expTask, gotTask)
		})
	}
}

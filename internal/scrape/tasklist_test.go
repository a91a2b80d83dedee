package scrape_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/zentao/internal/model"
)

func taskListPage(rows ...string) string {
	return `<html><body><form id="myTaskForm"><table id="taskTable" class="table"><thead><tr><th>ID</th><th>P</th></tr></thead><tbody>` +
		strings.Join(rows, "\n") +
		`</tbody></table></form></body></html>`
}

const taskRowFull = `<tr data-id="101">
  <td class="c-id"><input type="checkbox" name="taskIDList[]" value="101"> 101</td>
  <td class="c-pri"><span class="label-pri label-pri-2" title="2">2</span></td>
  <td class="c-project"><a href="/project-view-3.html">Platform</a></td>
  <td class="c-name"><a href="/task-view-101.html">Write   the
    docs</a></td>
  <td class="c-user">Alice</td>
  <td class="text-center"><span>2024-05-01</span></td>
  <td class="c-hours">8</td>
  <td class="c-hours">2</td>
  <td class="c-hours">6</td>
  <td class="c-status"><span class="status-task status-doing">进行中</span></td>
</tr>`

const taskRowFallbacks = `<tr data-id="102">
  <td class="c-pri"><span class="label-pri">?</span></td>
  <td class="c-project">Infra</td>
  <td class="c-name">Plain title</td>
  <td class="c-assignedTo">Bob</td>
  <td class="c-status"><span class="status-task status-pause">Paused</span></td>
</tr>`

func TestParseTaskList(t *testing.T) {
	tests := map[string]struct {
		html     string
		expTasks []model.Task
	}{
		"A row with all the fields should be parsed.": {
			html: taskListPage(taskRowFull),
			expTasks: []model.Task{
				{
					ID:         "101",
					Title:      "Write the docs",
					Status:     model.TaskStatusDoing,
					Project:    "Platform",
					AssignedTo: "Alice",
					Deadline:   "2024-05-01",
					Priority:   model.PriorityHigh,
					Estimate:   "8",
					Consumed:   "2",
					Left:       "6",
				},
			},
		},

		"A row with missing or unknown fields should fallback to defaults.": {
			html: taskListPage(taskRowFallbacks),
			expTasks: []model.Task{
				{
					ID:         "102",
					Title:      "Plain title",
					Status:     model.TaskStatusPause,
					Project:    "Infra",
					AssignedTo: "Bob",
					Priority:   model.PriorityUnknown,
				},
			},
		},

		"A row with an unknown status text and class should have the unknown status.": {
			html: taskListPage(`<tr data-id="103"><td class="c-name">x</td><td class="c-status"><span class="status-task status-weird">Weird</span></td></tr>`),
			expTasks: []model.Task{
				{
					ID:       "103",
					Title:    "x",
					Status:   model.TaskStatusUnknown,
					Priority: model.PriorityUnknown,
				},
			},
		},

		"Rows without id should be skipped.": {
			html: taskListPage(
				`<tr><td class="c-id"><input type="checkbox" name="taskIDList[]" value="7"></td><td class="c-name">seven</td></tr>`,
				`<tr><td colspan="10">No more tasks</td></tr>`,
				`<tr><td class="c-id"><input type="checkbox" name="taskIDList[]" value="8"></td><td class="c-name">eight</td></tr>`,
				`<tr><td class="c-id"><input type="checkbox" name="taskIDList[]" value=" "></td><td class="c-name">blank</td></tr>`,
			),
			expTasks: []model.Task{
				{ID: "7", Title: "seven", Status: model.TaskStatusUnknown, Priority: model.PriorityUnknown},
				{ID: "8", Title: "eight", Status: model.TaskStatusUnknown, Priority: model.PriorityUnknown},
			},
		},

		"A page without rows should return an empty list.": {
			html:     `<html><body><div class="table-empty-tip">No tasks</div></body></html>`,
			expTasks: []model.Task{},
		},

		"An empty document should return an empty list.": {
			html:     "",
			expTasks: []model.Task{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p := newParser(t)

			gotTasks := p.ParseTaskList(test.html)
			assert.Equal(t, test.expTasks, gotTasks)
		})
	}
}

func TestParseTaskListSkipsRowsWithoutID(t *testing.T) {
	for n := 0; n <= 3; n++ {
		for m := 0; m <= 3; m++ {
			t.Run(fmt.Sprintf("%d rows with id and %d without should return %d tasks.", n, m, n), func(t *testing.T) {
				rows := []string{}
				for i := 0; i < n; i++ {
					rows = append(rows, fmt.Sprintf(`<tr data-id="%d"><td class="c-name">task</td></tr>`, i+1))
				}
				for i := 0; i < m; i++ {
					rows = append(rows, `<tr><td class="c-name">no id</td></tr>`)
				}

				p := newParser(t)
				tasks := p.ParseTaskList(taskListPage(rows...))
				assert.Len(t, tasks, n)
				for _, task := range tasks {
					assert.NotEmpty(t, task.ID)
				}
			})
		}
	}
}

package printer

import "github.com/slok/zentao/internal/model"

// Printer knows how to print Zentao information in different formats.
type Printer interface {
	PrintTaskList(tasks []model.Task) error
	PrintTask(task model.Task) error
	PrintBugList(bugs []model.Bug) error
	PrintBug(bug model.BugDetail) error
	PrintTaskForm(form model.TaskForm) error
	PrintFinish(r model.FinishTaskRequest) error
	PrintChecks(results []model.CheckResult) error
	PrintMessage(msg string) error
}

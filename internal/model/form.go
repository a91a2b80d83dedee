package model

import "fmt"

// TeamMember is an option of the "assign to" dropdown of the task finish form.
type TeamMember struct {
	// Value is the token submitted with the form.
	Value    string
	Label    string
	Title    string
	Selected bool
}

// TaskForm are the details required to fill the task finish form.
type TaskForm struct {
	Members         []TeamMember
	CurrentConsumed string
	TotalConsumed   string
	AssignedTo      string
	// RealStarted and FinishedDate use the `YYYY-MM-DD HH:mm` format.
	RealStarted  string
	FinishedDate string
	// UID identifies the form instance and must be sent back on submit.
	UID string
}

// SelectedMember returns the preselected team member.
func (t TaskForm) SelectedMember() (TeamMember, bool) {
	for _, m := range t.Members {
		if m.Selected {
			return m, true
		}
	}
	return TeamMember{}, false
}

// FinishTaskStatusDone is the only status the finish form submits.
const FinishTaskStatusDone = "done"

// FinishTaskRequest are the values submitted to finish a task.
type FinishTaskRequest struct {
	TaskID          string
	CurrentConsumed string
	Consumed        string
	AssignedTo      string
	RealStarted     string
	FinishedDate    string
	Status          string
	UID             string
	Comment         string
}

// Validate validates the finish request.
func (r *FinishTaskRequest) Validate() error {
	if r.TaskID == "" {
		return fmt.Errorf("task id is required: %w", ErrNotValid)
	}
	if r.CurrentConsumed == "" {
		return fmt.Errorf("current consumed hours are required: %w", ErrNotValid)
	}
	if r.FinishedDate == "" {
		return fmt.Errorf("finished date is required: %w", ErrNotValid)
	}
	if r.Status == "" {
		r.Status = FinishTaskStatusDone
	}
	return nil
}

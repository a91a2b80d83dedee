package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zentao/internal/app/taskform"
)

type TaskFormCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id     string
	format string
}

// NewTaskFormCommand returns the task-form command.
func NewTaskFormCommand(rootCmd *RootCommand, app *kingpin.Application) *TaskFormCommand {
	c := &TaskFormCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("task-form", "Show the finish form values of a task, team members included.")
	c.Cmd.Arg("id", "Task ID.").Required().StringVar(&c.id)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c TaskFormCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskFormCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.newZentaoClient()
	if err != nil {
		return err
	}

	guard, err := c.rootCmd.newSessionGuard(client)
	if err != nil {
		return fmt.Errorf("could not create session guard: %w", err)
	}

	svc, err := taskform.NewService(taskform.ServiceConfig{
		Zentao: client,
		Guard:  guard,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	form, err := svc.Run(ctx, taskform.Request{ID: c.id})
	if err != nil {
		return err
	}

	if err := c.rootCmd.printer(c.format).PrintTaskForm(*form); err != nil {
		return fmt.Errorf("could not print task form: %w", err)
	}

	return nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zentao/internal/app/taskdetail"
)

type TaskCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id     string
	format string
}

// NewTaskCommand returns the task command.
func NewTaskCommand(rootCmd *RootCommand, app *kingpin.Application) *TaskCommand {
	c := &TaskCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("task", "Get the details of a task.")
	c.Cmd.Arg("id", "Task ID.").Required().StringVar(&c.id)
	c.Cmd.Flag("format", "Output format (table, json, markdown, raw-markdown).").Default("table").EnumVar(&c.format, "table", "json", "markdown", "raw-markdown")

	return c
}

func (c TaskCommand) Name() string { return c.Cmd.FullCommand() }

func (c TaskCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.newZentaoClient()
	if err != nil {
		return err
	}

	guard, err := c.rootCmd.newSessionGuard(client)
	if err != nil {
		return fmt.Errorf("could not create session guard: %w", err)
	}

	svc, err := taskdetail.NewService(taskdetail.ServiceConfig{
		Zentao: client,
		Guard:  guard,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	task, err := svc.Run(ctx, taskdetail.Request{ID: c.id})
	if err != nil {
		return err
	}

	if err := c.rootCmd.printer(c.format).PrintTask(*task); err != nil {
		return fmt.Errorf("could not print task: %w", err)
	}

	return nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zentao/internal/app/taskfinish"
)

type FinishCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id           string
	consumed     string
	assignTo     string
	realStarted  string
	finishedDate string
	comment      string
	format       string
}

// NewFinishCommand returns the finish command.
func NewFinishCommand(rootCmd *RootCommand, app *kingpin.Application) *FinishCommand {
	c := &FinishCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("finish", "Finish a task. Missing values are calculated from the task and the 09:00-18:00 workday.")
	c.Cmd.Arg("id", "Task ID.").Required().StringVar(&c.id)
	c.Cmd.Flag("consumed", "Hours consumed in this work (default: the task estimate or 8).").StringVar(&c.consumed)
	c.Cmd.Flag("assign-to", "Team member account or name to assign the task to (default: the one Zentao selects).").StringVar(&c.assignTo)
	c.Cmd.Flag("started", "Real start, YYYY-MM-DD HH:mm (default: the estimated start at 09:00).").StringVar(&c.realStarted)
	c.Cmd.Flag("finished", "Finish date, YYYY-MM-DD HH:mm (default: calculated from the start and consumed hours).").StringVar(&c.finishedDate)
	c.Cmd.Flag("comment", "Finish comment.").Default(taskfinish.DefaultComment).StringVar(&c.comment)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c FinishCommand) Name() string { return c.Cmd.FullCommand() }

func (c FinishCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.newZentaoClient()
	if err != nil {
		return err
	}

	guard, err := c.rootCmd.newSessionGuard(client)
	if err != nil {
		return fmt.Errorf("could not create session guard: %w", err)
	}

	svc, err := taskfinish.NewService(taskfinish.ServiceConfig{
		Zentao: client,
		Guard:  guard,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	r, err := svc.Run(ctx, taskfinish.Request{
		TaskID:          c.id,
		CurrentConsumed: c.consumed,
		AssignTo:        c.assignTo,
		RealStarted:     c.realStarted,
		FinishedDate:    c.finishedDate,
		Comment:         c.comment,
	})
	if err != nil {
		return err
	}

	if err := c.rootCmd.printer(c.format).PrintFinish(*r); err != nil {
		return fmt.Errorf("could not print result: %w", err)
	}

	return nil
}

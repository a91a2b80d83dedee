package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zentao/internal/app/bugdetail"
)

type BugCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	id     string
	format string
}

// NewBugCommand returns the bug command.
func NewBugCommand(rootCmd *RootCommand, app *kingpin.Application) *BugCommand {
	c := &BugCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("bug", "Get the details of a bug, steps, result and expected result included.")
	c.Cmd.Arg("id", "Bug ID.").Required().StringVar(&c.id)
	c.Cmd.Flag("format", "Output format (markdown, raw-markdown, json, table). Raw markdown embeds the images.").Default("markdown").EnumVar(&c.format, "markdown", "raw-markdown", "json", "table")

	return c
}

func (c BugCommand) Name() string { return c.Cmd.FullCommand() }

func (c BugCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.newZentaoClient()
	if err != nil {
		return err
	}

	guard, err := c.rootCmd.newSessionGuard(client)
	if err != nil {
		return fmt.Errorf("could not create session guard: %w", err)
	}

	svc, err := bugdetail.NewService(bugdetail.ServiceConfig{
		Zentao: client,
		Guard:  guard,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	bug, err := svc.Run(ctx, bugdetail.Request{ID: c.id})
	if err != nil {
		return err
	}

	if err := c.rootCmd.printer(c.format).PrintBug(*bug); err != nil {
		return fmt.Errorf("could not print bug: %w", err)
	}

	return nil
}

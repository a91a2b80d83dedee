package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zentao/internal/app/relogin"
	"github.com/slok/zentao/internal/model"
)

type ReloginCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewReloginCommand returns the relogin command.
func NewReloginCommand(rootCmd *RootCommand, app *kingpin.Application) *ReloginCommand {
	c := &ReloginCommand{rootCmd: rootCmd}
	c.Cmd = app.Command("relogin", "Refresh the session logging in again with the configured password.")
	return c
}

func (c ReloginCommand) Name() string { return c.Cmd.FullCommand() }

func (c ReloginCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.newZentaoClient()
	if err != nil {
		return err
	}

	svc, err := relogin.NewService(relogin.ServiceConfig{
		Zentao: client,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Run(ctx); err != nil {
		var parseErr *model.LoginResponseParseError
		if errors.As(err, &parseErr) {
			c.rootCmd.Logger.Debugf("login response: %s", parseErr.Raw)
		}
		return err
	}

	return c.rootCmd.printer("table").PrintMessage("Session refreshed.")
}

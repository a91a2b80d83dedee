package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zentao/internal/app/doctor"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/zentao"
)

type DoctorCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewDoctorCommand returns the doctor command.
func NewDoctorCommand(rootCmd *RootCommand, app *kingpin.Application) *DoctorCommand {
	c := &DoctorCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("doctor", "Check the preferences and the Zentao session.")
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c DoctorCommand) Name() string { return c.Cmd.FullCommand() }

func (c DoctorCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.newZentaoClient()
	if err != nil {
		return err
	}

	svc, err := doctor.NewService(doctor.ServiceConfig{
		Credentials: zentao.CredentialsProviderFunc(c.rootCmd.Credentials),
		Zentao:      client,
		Logger:      c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	results := svc.Run(ctx)
	if err := c.rootCmd.printer(c.format).PrintChecks(results); err != nil {
		return fmt.Errorf("could not print checks: %w", err)
	}

	if s := model.SummarizeChecks(results); s.Errors > 0 {
		return fmt.Errorf("checks failed with %d error(s)", s.Errors)
	}

	return nil
}

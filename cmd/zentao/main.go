package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/slok/zentao/cmd/zentao/commands"
	"github.com/slok/zentao/internal/log"
	loglogrus "github.com/slok/zentao/internal/log/logrus"
	"github.com/slok/zentao/internal/model"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// printerCommands are the commands that print Zentao data.
var printerCommands = map[string]bool{
	"tasks":     true,
	"task":      true,
	"bugs":      true,
	"bug":       true,
	"task-form": true,
	"doctor":    true,
}

// silentLogs returns true when the command output owns the terminal, their logs are opt-in with --debug.
func silentLogs(cmdName string, debug bool) bool {
	return printerCommands[cmdName] && !debug
}

// Run runs the main application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := kingpin.New("zentao", "Zentao client for the tasks and bugs assigned to me.")
	app.Version(Version)
	app.DefaultEnvars()
	rootCmd := commands.NewRootCommand(app)

	cmds := map[string]commands.Command{}
	for _, cmd := range []commands.Command{
		commands.NewTasksCommand(rootCmd, app),
		commands.NewTaskCommand(rootCmd, app),
		commands.NewBugsCommand(rootCmd, app),
		commands.NewBugCommand(rootCmd, app),
		commands.NewTaskFormCommand(rootCmd, app),
		commands.NewFinishCommand(rootCmd, app),
		commands.NewReloginCommand(rootCmd, app),
		commands.NewDoctorCommand(rootCmd, app),
	} {
		cmds[cmd.Name()] = cmd
	}

	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr
	rootCmd.RunID = ulid.Make().String()

	if silentLogs(cmdName, rootCmd.Debug) {
		rootCmd.NoLog = true
	}
	rootCmd.Logger = newLogger(*rootCmd)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g run.Group
	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	g.Add(
		func() error {
			if err := cmds[cmdName].Run(ctx); err != nil {
				return fmt.Errorf("%q command failed: %w", cmdName, err)
			}
			return nil
		},
		func(_ error) { cancel() },
	)

	err = g.Run()
	var sigErr run.SignalError
	if errors.As(err, &sigErr) {
		rootCmd.Logger.Debugf("stopped by %s", sigErr.Signal)
		return nil
	}
	return err
}

// newLogger returns the logrus based logger, all the entries carry the run id.
func newLogger(config commands.RootCommand) log.Logger {
	if config.NoLog {
		return log.Noop
	}

	l := logrus.New()
	l.Out = config.Stderr
	if config.Debug {
		l.SetLevel(logrus.DebugLevel)
	}

	if config.LoggerType == commands.LoggerTypeJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !config.NoColor,
			DisableColors: config.NoColor,
		})
	}

	logger := loglogrus.NewLogrus(logrus.NewEntry(l)).WithValues(log.Kv{
		"version": Version,
		"run-id":  config.RunID,
	})
	logger.Debugf("Debug level is enabled")

	return logger
}

func main() {
	err := Run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	if errors.Is(err, model.ErrSessionExpired) {
		fmt.Fprintln(os.Stderr, "The Zentao session expired, run `zentao relogin` or retry with --auto-relogin.")
	}
	os.Exit(1)
}

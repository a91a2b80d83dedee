package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/slok/zentao/internal/conventions"
	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/printer"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/storage"
	storagefs "github.com/slok/zentao/internal/storage/fs"
	storageio "github.com/slok/zentao/internal/storage/io"
	"github.com/slok/zentao/internal/zentao"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"

	requestTimeout = 30 * time.Second
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug      bool
	NoLog      bool
	NoColor    bool
	LoggerType string
	ConfigPath string

	// Credentials flags, they override the config file values.
	URL        string
	SessionID  string
	Username   string
	Password   string
	CookieName string

	AutoRelogin    bool
	DiagnosticsDir string
	NoDiagnostics  bool

	// Global instances.
	RunID  string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger

	configPathSet bool
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger and output color.").BoolVar(&c.NoColor)
	app.Flag("logger", "Selects the logger type.").Default(LoggerTypeDefault).EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)

	home := homedir.HomeDir()
	app.Flag("config", "Path to the YAML preferences file.").Default(conventions.ConfigPath(home)).IsSetByUser(&c.configPathSet).StringVar(&c.ConfigPath)
	app.Flag("url", "Zentao base URL (e.g. https://zentao.example.com/zentao).").StringVar(&c.URL)
	app.Flag("sid", "Zentao session id copied from the browser cookie.").StringVar(&c.SessionID)
	app.Flag("username", "Zentao account.").StringVar(&c.Username)
	app.Flag("password", "Zentao password, required to refresh the session.").StringVar(&c.Password)
	app.Flag("cookie-name", "Session cookie name.").StringVar(&c.CookieName)
	app.Flag("auto-relogin", "Log in again and retry once when the session expired.").BoolVar(&c.AutoRelogin)
	app.Flag("diagnostics-dir", "Directory where the raw Zentao responses are stored.").Default(conventions.DiagnosticsRootPath(home)).StringVar(&c.DiagnosticsDir)
	app.Flag("no-diagnostics", "Don't store the raw Zentao responses.").BoolVar(&c.NoDiagnostics)

	return c
}

// Credentials loads the preferences file and overrides it with the flags.
// A missing default preferences file is not an error.
func (r *RootCommand) Credentials(ctx context.Context) (model.Credentials, error) {
	var creds model.Credentials

	path, err := filepath.Abs(r.ConfigPath)
	if err != nil {
		return model.Credentials{}, fmt.Errorf("could not resolve config path: %w", err)
	}

	repo := storageio.NewCredentialsYAMLRepository(os.DirFS("/"))
	creds, err = repo.GetCredentials(ctx, path[1:])
	if err != nil {
		if r.configPathSet || !errors.Is(err, fs.ErrNotExist) {
			return model.Credentials{}, fmt.Errorf("could not load preferences: %w", err)
		}
		r.Logger.Debugf("preferences file %s not found", path)
	}

	return creds.Merge(model.Credentials{
		BaseURL:           r.URL,
		SessionID:         r.SessionID,
		Username:          r.Username,
		Password:          r.Password,
		SessionCookieName: r.CookieName,
	}), nil
}

func (r *RootCommand) diagnostics() (storage.ResponseRepository, error) {
	if r.NoDiagnostics {
		return storage.NoopResponseRepository, nil
	}

	return storagefs.NewRepository(storagefs.RepositoryConfig{
		Dir:    r.DiagnosticsDir,
		Logger: r.Logger,
	})
}

// newZentaoClient returns the Zentao client for the user credentials.
func (r *RootCommand) newZentaoClient() (*zentao.Client, error) {
	diag, err := r.diagnostics()
	if err != nil {
		return nil, fmt.Errorf("could not create diagnostics repository: %w", err)
	}

	client, err := zentao.NewClient(zentao.ClientConfig{
		Credentials: zentao.CredentialsProviderFunc(r.Credentials),
		HTTPClient:  &http.Client{Timeout: requestTimeout},
		Diagnostics: diag,
		Logger:      r.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create zentao client: %w", err)
	}

	return client, nil
}

// newSessionGuard returns the session guard used by all the services of the run.
func (r *RootCommand) newSessionGuard(client zentao.Service) (*session.Guard, error) {
	return session.NewGuard(session.GuardConfig{
		Reloginer:   client,
		AutoRelogin: r.AutoRelogin,
		Logger:      r.Logger,
	})
}

func (r *RootCommand) printer(format string) printer.Printer {
	switch format {
	case "json":
		return printer.NewJSONPrinter(r.Stdout)
	case "markdown":
		return printer.NewMarkdownPrinter(r.Stdout, false, r.NoColor)
	case "raw-markdown":
		return printer.NewMarkdownPrinter(r.Stdout, true, r.NoColor)
	default: // table
		return printer.NewTablePrinter(r.Stdout, r.NoColor)
	}
}

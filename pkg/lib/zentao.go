package lib

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/session"
	"github.com/slok/zentao/internal/storage"
	storagefs "github.com/slok/zentao/internal/storage/fs"
	"github.com/slok/zentao/internal/zentao"
)

const defaultTimeout = 30 * time.Second

// Config configures the SDK client.
type Config struct {
	// Credentials are used on every request.
	Credentials Credentials

	// CredentialsFunc, when set, is called on every request instead of using
	// Credentials. Use it to pick up a session id refreshed somewhere else.
	CredentialsFunc func(ctx context.Context) (Credentials, error)

	// HTTPClient is used for every request, including the bug images.
	// Default: a client with a 30s timeout.
	HTTPClient *http.Client

	// AutoRelogin logs in again and retries the operation once when the
	// session expired. It requires the password.
	AutoRelogin bool

	// DiagnosticsDir stores a copy of every raw Zentao answer when set.
	DiagnosticsDir string

	// Logger receives structured log output from the SDK.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger
}

func (c *Config) defaults() error {
	if c.CredentialsFunc == nil {
		creds := c.Credentials
		c.CredentialsFunc = func(context.Context) (Credentials, error) { return creds, nil }
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Client is the main SDK entry point.
//
// Create a Client with [New]. A Client is safe for concurrent use, all the
// operations share the same session state.
type Client struct {
	zentao *zentao.Client
	guard  *session.Guard
	logger log.Logger
}

// New creates a new SDK client. Credentials are not checked until the first operation.
func New(cfg Config) (*Client, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var diagnostics storage.ResponseRepository = storage.NoopResponseRepository
	if cfg.DiagnosticsDir != "" {
		repo, err := storagefs.NewRepository(storagefs.RepositoryConfig{
			Dir:    cfg.DiagnosticsDir,
			Logger: cfg.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create diagnostics repository: %w", err)
		}
		diagnostics = repo
	}

	client, err := zentao.NewClient(zentao.ClientConfig{
		Credentials: zentao.CredentialsProviderFunc(cfg.CredentialsFunc),
		HTTPClient:  cfg.HTTPClient,
		Diagnostics: diagnostics,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create zentao client: %w", err)
	}

	guard, err := session.NewGuard(session.GuardConfig{
		Reloginer:   client,
		AutoRelogin: cfg.AutoRelogin,
		Logger:      cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create session guard: %w", err)
	}

	return &Client{
		zentao: client,
		guard:  guard,
		logger: cfg.Logger,
	}, nil
}

// SessionState returns the session state seen by the last operations.
func (c *Client) SessionState() SessionState {
	return c.guard.State()
}

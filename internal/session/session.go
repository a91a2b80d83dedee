// Package session tracks the Zentao session state seen by the caller and
// recovers expired sessions by logging in again.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
)

// State is the state of the session as seen by the caller.
type State string

const (
	// StateValid is the initial state, requests are expected to work.
	StateValid State = "valid"
	// StateExpired means Zentao redirected a request to the login page.
	StateExpired State = "expired"
	// StateReloginFailed means the session expired and logging in again failed.
	// Only an explicit relogin leaves this state.
	StateReloginFailed State = "relogin-failed"
)

// Reloginer logs in again refreshing the session.
type Reloginer interface {
	Relogin(ctx context.Context) error
}

// GuardConfig is the configuration of the guard.
type GuardConfig struct {
	Reloginer Reloginer
	// AutoRelogin enables logging in again and retrying once when the session expired.
	AutoRelogin bool
	Logger      log.Logger
}

func (c *GuardConfig) defaults() error {
	if c.Reloginer == nil {
		return fmt.Errorf("reloginer is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "session.Guard"})

	return nil
}

// Guard runs operations against Zentao handling the session expiration.
type Guard struct {
	reloginer   Reloginer
	autoRelogin bool
	logger      log.Logger

	mu    sync.Mutex
	state State
}

// NewGuard returns a new session guard.
func NewGuard(cfg GuardConfig) (*Guard, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Guard{
		reloginer:   cfg.Reloginer,
		autoRelogin: cfg.AutoRelogin,
		logger:      cfg.Logger,
		state:       StateValid,
	}, nil
}

// State returns the current session state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Guard) setState(s State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != s {
		g.logger.Debugf("session state %s -> %s", g.state, s)
	}
	g.state = s
}

// Do runs op. When op fails with model.ErrSessionExpired and auto relogin is
// enabled, it logs in again and retries op once.
func (g *Guard) Do(ctx context.Context, op func(ctx context.Context) error) error {
	err := op(ctx)
	if !errors.Is(err, model.ErrSessionExpired) {
		if err == nil {
			g.setState(StateValid)
		}
		return err
	}

	if !g.autoRelogin || g.State() == StateReloginFailed {
		g.setState(g.expiredState())
		return err
	}

	g.setState(StateExpired)
	g.logger.WithCtxValues(ctx).Infof("session expired, logging in again")
	if rerr := g.Relogin(ctx); rerr != nil {
		return fmt.Errorf("%w and relogin failed: %w", err, rerr)
	}

	err = op(ctx)
	if errors.Is(err, model.ErrSessionExpired) {
		g.setState(StateExpired)
	}
	return err
}

func (g *Guard) expiredState() State {
	if g.State() == StateReloginFailed {
		return StateReloginFailed
	}
	return StateExpired
}

// Relogin logs in again and updates the state with the result.
func (g *Guard) Relogin(ctx context.Context) error {
	if err := g.reloginer.Relogin(ctx); err != nil {
		g.setState(StateReloginFailed)
		return err
	}

	g.setState(StateValid)
	return nil
}

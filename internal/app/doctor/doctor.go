package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/zentao"
)

// Check IDs.
const (
	CheckCredentials = "credentials"
	CheckPassword    = "password"
	CheckServer      = "server"
	CheckSession     = "session"
)

// ServiceConfig is the configuration for the doctor service.
type ServiceConfig struct {
	Credentials zentao.CredentialsProvider
	Zentao      zentao.Service
	Logger      log.Logger
}

func (c *ServiceConfig) defaults() error {
	if c.Credentials == nil {
		return fmt.Errorf("credentials provider is required")
	}
	if c.Zentao == nil {
		return fmt.Errorf("zentao service is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "app.Doctor"})
	return nil
}

// Service checks the client configuration and the Zentao session.
type Service struct {
	creds  zentao.CredentialsProvider
	zentao zentao.Service
	logger log.Logger
}

// NewService creates a new doctor service.
func NewService(cfg ServiceConfig) (*Service, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Service{
		creds:  cfg.Credentials,
		zentao: cfg.Zentao,
		logger: cfg.Logger,
	}, nil
}

// Run runs the checks in order. The checks that depend on a failed one are not run.
// The session is never refreshed, an expired session is reported.
func (s *Service) Run(ctx context.Context) []model.CheckResult {
	creds, err := s.creds.Credentials(ctx)
	if err == nil {
		err = creds.Validate()
	}
	if err != nil {
		return []model.CheckResult{{ID: CheckCredentials, Status: model.CheckStatusError, Message: err.Error()}}
	}

	results := []model.CheckResult{
		{ID: CheckCredentials, Status: model.CheckStatusOK, Message: fmt.Sprintf("user %s on %s", creds.Username, creds.BaseURL)},
	}

	if creds.Password == "" {
		results = append(results, model.CheckResult{ID: CheckPassword, Status: model.CheckStatusWarning, Message: "password not set, the session can't be refreshed automatically"})
	} else {
		results = append(results, model.CheckResult{ID: CheckPassword, Status: model.CheckStatusOK, Message: "password set"})
	}

	tasks, err := s.zentao.FetchTaskList(ctx)
	switch {
	case err == nil:
		results = append(results,
			model.CheckResult{ID: CheckServer, Status: model.CheckStatusOK, Message: "reachable"},
			model.CheckResult{ID: CheckSession, Status: model.CheckStatusOK, Message: fmt.Sprintf("valid, %d tasks assigned", len(tasks))},
		)
	case errors.Is(err, model.ErrSessionExpired):
		results = append(results,
			model.CheckResult{ID: CheckServer, Status: model.CheckStatusOK, Message: "reachable"},
			model.CheckResult{ID: CheckSession, Status: model.CheckStatusError, Message: "session expired, run `zentao relogin` or update the session id"},
		)
	default:
		s.logger.Debugf("server check failed: %s", err)
		results = append(results, model.CheckResult{ID: CheckServer, Status: model.CheckStatusError, Message: err.Error()})
	}

	return results
}

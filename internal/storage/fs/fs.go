package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
)

// RepositoryConfig is the configuration for the file system repository.
type RepositoryConfig struct {
	// Dir is the directory where the responses are written, created on demand.
	Dir    string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.FS"})
	return nil
}

// Repository stores each response as a file named after the response.
type Repository struct {
	dir    string
	logger log.Logger
}

// NewRepository creates a new file system repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		dir:    cfg.Dir,
		logger: cfg.Logger,
	}, nil
}

// SaveResponse satisfies storage.ResponseRepository interface.
func (r *Repository) SaveResponse(ctx context.Context, name, content string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid response name %q: %w", name, model.ErrNotValid)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("creating diagnostics directory: %w", err)
	}

	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing response file %s: %w", path, err)
	}
	r.logger.Debugf("Saved response on %s", path)

	return nil
}

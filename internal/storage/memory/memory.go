package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.ResponseRepository.
type Repository struct {
	responses map[string]string
	mu        sync.RWMutex
	logger    log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		responses: make(map[string]string),
		logger:    cfg.Logger,
	}, nil
}

// SaveResponse satisfies storage.ResponseRepository interface.
func (r *Repository) SaveResponse(ctx context.Context, name, content string) error {
	if name == "" {
		return fmt.Errorf("response name is required: %w", model.ErrNotValid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.responses[name] = content
	r.logger.Debugf("Saved response in repository: %s", name)

	return nil
}

// GetResponse returns a saved response.
func (r *Repository) GetResponse(ctx context.Context, name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	content, ok := r.responses[name]
	if !ok {
		return "", fmt.Errorf("response %s: %w", name, model.ErrNotFound)
	}

	return content, nil
}

// ListResponses returns the names of the saved responses sorted.
func (r *Repository) ListResponses(ctx context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.responses))
	for name := range r.responses {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

package io

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"

	"gopkg.in/yaml.v3"

	"github.com/slok/zentao/internal/model"
)

// CredentialsYAMLRepository loads the user preferences from YAML files.
type CredentialsYAMLRepository struct {
	fs fs.FS
}

// NewCredentialsYAMLRepository creates a new YAML credentials repository.
func NewCredentialsYAMLRepository(filesystem fs.FS) *CredentialsYAMLRepository {
	return &CredentialsYAMLRepository{fs: filesystem}
}

// GetCredentials loads the credentials from a YAML file. The result can be partial,
// flags complete it and model.Credentials.Validate checks the final values.
func (r *CredentialsYAMLRepository) GetCredentials(ctx context.Context, path string) (model.Credentials, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.Credentials{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.Credentials{}, ctx.Err()
	}

	var cfg CredentialsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.Credentials{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.Credentials{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// CredentialsConfig represents the YAML structure of the user preferences.
type CredentialsConfig struct {
	URL        string `yaml:"url"`
	SessionID  string `yaml:"sid"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	CookieName string `yaml:"cookie_name"`
}

func (c CredentialsConfig) validate() error {
	if c.URL != "" {
		u, err := url.Parse(c.URL)
		if err != nil {
			return fmt.Errorf("url is not valid: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("url scheme must be http or https, got: %q", u.Scheme)
		}
	}

	return nil
}

func (c CredentialsConfig) toModel() model.Credentials {
	return model.Credentials{
		BaseURL:           c.URL,
		SessionID:         c.SessionID,
		Username:          c.Username,
		Password:          c.Password,
		SessionCookieName: c.CookieName,
	}
}

package model

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSessionCookieName is the cookie Zentao uses for the session id.
const DefaultSessionCookieName = "zentaosid"

// Credentials are the user preferences required to talk with Zentao.
type Credentials struct {
	BaseURL           string
	SessionID         string
	Username          string
	Password          string
	SessionCookieName string
}

// Validate validates the credentials required for authenticated requests.
// The password is only validated by the flows that need it.
func (c *Credentials) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return fmt.Errorf("base url is required: %w", ErrNotValid)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", c.BaseURL, ErrNotValid)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base url must be an absolute http(s) url: %w", ErrNotValid)
	}

	if c.SessionID == "" {
		return fmt.Errorf("session id is required: %w", ErrNotValid)
	}
	if c.Username == "" {
		return fmt.Errorf("username is required: %w", ErrNotValid)
	}
	if c.SessionCookieName == "" {
		c.SessionCookieName = DefaultSessionCookieName
	}

	return nil
}

// Merge returns the credentials with the non empty fields of override
// replacing the current ones.
func (c Credentials) Merge(override Credentials) Credentials {
	pick := func(cur, o string) string {
		if strings.TrimSpace(o) != "" {
			return o
		}
		return cur
	}

	return Credentials{
		BaseURL:           pick(c.BaseURL, override.BaseURL),
		SessionID:         pick(c.SessionID, override.SessionID),
		Username:          pick(c.Username, override.Username),
		Password:          pick(c.Password, override.Password),
		SessionCookieName: pick(c.SessionCookieName, override.SessionCookieName),
	}
}

package zentao

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/slok/zentao/internal/model"
)

// Relogin refreshes the server side session of the configured session id by
// logging in again with the user password.
//
// Rejections fail with model.LoginFailedError, unparseable answers with
// model.LoginResponseParseError and anything else with model.SessionRefreshError.
func (c *Client) Relogin(ctx context.Context) error {
	err := c.relogin(ctx)
	if err == nil {
		c.logger.WithCtxValues(ctx).Infof("user logged in again")
		return nil
	}

	c.logger.WithCtxValues(ctx).Errorf("relogin failed: %s", err)

	var loginErr *model.LoginFailedError
	var parseErr *model.LoginResponseParseError
	if errors.As(err, &loginErr) || errors.As(err, &parseErr) {
		return err
	}

	return &model.SessionRefreshError{Cause: err}
}

func (c *Client) relogin(ctx context.Context) error {
	s, err := c.session(ctx)
	if err != nil {
		return err
	}
	if s.creds.Password == "" {
		return fmt.Errorf("password is required to login: %w", model.ErrNotValid)
	}

	verifyRand, err := c.refreshRandom(ctx, s)
	if err != nil {
		return fmt.Errorf("could not get login verify random: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"account", s.creds.Username},
		{"password", s.creds.Password},
		{"passwordStrength", "2"},
		{"referer", "/"},
		{"verifyRand", verifyRand},
		{"keepLogin", "1"},
		{"captcha", ""},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("could not write %s field: %w", f[0], err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not build login form: %w", err)
	}

	body, err := c.do(ctx, s, request{
		method:      http.MethodPost,
		path:        loginPath,
		accept:      acceptJSONHeader,
		contentType: w.FormDataContentType(),
		body:        &buf,
		ajax:        true,
		diagnostics: "user-login.log",
	})
	if err != nil {
		return fmt.Errorf("could not login: %w", err)
	}

	return s.parser.ParseLoginResponse(body)
}

// refreshRandom returns the one time token required by the login form.
func (c *Client) refreshRandom(ctx context.Context, s *session) (string, error) {
	body, err := c.do(ctx, s, request{
		method:      http.MethodGet,
		path:        refreshPath,
		accept:      acceptAnyHeader,
		ajax:        true,
		withUser:    true,
		diagnostics: "refresh-random.log",
	})
	if err != nil {
		return "", err
	}

	verifyRand := strings.TrimSpace(body)
	if verifyRand == "" {
		return "", fmt.Errorf("empty verify random: %w", model.ErrDocumentUnrecognized)
	}
	c.logger.WithCtxValues(ctx).Debugf("got login verify random")

	return verifyRand, nil
}

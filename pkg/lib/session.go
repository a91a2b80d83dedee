package lib

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/app/relogin"
)

// ReLoginUser logs in again with the configured password. The session id of
// the credentials becomes valid again when it succeeds.
func (c *Client) ReLoginUser(ctx context.Context) error {
	svc, err := relogin.NewService(relogin.ServiceConfig{
		Zentao: c.zentao,
		Guard:  c.guard,
		Logger: c.logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	return svc.Run(ctx)
}

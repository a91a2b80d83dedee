package lib

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/app/bugdetail"
	"github.com/slok/zentao/internal/app/buglist"
)

// FetchBugList returns the bugs assigned to the user.
// Pass nil opts to get them as Zentao sends them.
func (c *Client) FetchBugList(ctx context.Context, opts *ListOpts) ([]Bug, error) {
	svc, err := buglist.NewService(buglist.ServiceConfig{
		Zentao: c.zentao,
		Guard:  c.guard,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	var req buglist.Request
	if opts != nil {
		req = buglist.Request{Product: opts.Group, Query: opts.Query, Sort: opts.Sort}
	}

	resp, err := svc.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	return resp.Bugs, nil
}

// FetchBugDetail returns a bug with its steps, result and expected result.
// The images of the sections are returned as data URIs.
func (c *Client) FetchBugDetail(ctx context.Context, id string) (*BugDetail, error) {
	svc, err := bugdetail.NewService(bugdetail.ServiceConfig{
		Zentao: c.zentao,
		Guard:  c.guard,
		Logger: c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	return svc.Run(ctx, bugdetail.Request{ID: id})
}

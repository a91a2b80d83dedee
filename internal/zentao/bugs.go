package zentao

import (
	"context"
	"fmt"

	"github.com/slok/zentao/internal/model"
)

// FetchBugList returns the bugs assigned to the user.
func (c *Client) FetchBugList(ctx context.Context) ([]model.Bug, error) {
	s, err := c.session(ctx)
	if err != nil {
		return nil, err
	}

	body, err := c.getPage(ctx, s, bugListPath, "my-bug.html")
	if err != nil {
		return nil, fmt.Errorf("could not fetch bug list: %w", err)
	}

	bugs := s.parser.ParseBugList(body)
	c.logger.WithCtxValues(ctx).Debugf("fetched %d bugs", len(bugs))

	return bugs, nil
}

// FetchBugDetail returns a bug with its narrative. Narrative images are
// materialized so they can be displayed without the session.
func (c *Client) FetchBugDetail(ctx context.Context, id string) (model.BugDetail, error) {
	if err := validID(id); err != nil {
		return model.BugDetail{}, err
	}

	s, err := c.session(ctx)
	if err != nil {
		return model.BugDetail{}, err
	}

	body, err := c.getPage(ctx, s, fmt.Sprintf("/bug-view-%s.html", id), fmt.Sprintf("bug-%s.html", id))
	if err != nil {
		return model.BugDetail{}, fmt.Errorf("could not fetch bug %s: %w", id, err)
	}

	bug, err := s.parser.ParseBugDetail(body, id)
	if err != nil {
		return model.BugDetail{}, fmt.Errorf("could not parse bug %s: %w", id, err)
	}

	if !bug.HasImages() {
		return bug, nil
	}

	// All the sections share a single batch.
	sections := []*model.NarrativeSection{&bug.Steps, &bug.Result, &bug.Expected}
	urls := []string{}
	for _, sec := range sections {
		urls = append(urls, sec.Images...)
	}

	processed := c.images.Process(ctx, cookie(s.creds, true), urls)
	for _, sec := range sections {
		n := len(sec.Images)
		if n == 0 {
			continue
		}
		sec.Images = processed[:n:n]
		processed = processed[n:]
	}

	return bug, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zentao/internal/app/buglist"
	"github.com/slok/zentao/internal/search"
)

type BugsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	product string
	query   string
	sort    string
	format  string
}

// NewBugsCommand returns the bugs command.
func NewBugsCommand(rootCmd *RootCommand, app *kingpin.Application) *BugsCommand {
	c := &BugsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("bugs", "List the bugs assigned to me.")
	c.Cmd.Flag("product", "Only show the bugs of this product.").StringVar(&c.product)
	c.Cmd.Flag("query", "Fuzzy search, pinyin and pinyin initials are supported.").Short('q').StringVar(&c.query)
	c.Cmd.Flag("sort", "Sort order.").Default(string(search.SortNone)).EnumVar(&c.sort, sortOrders(search.BugSortOrders)...)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c BugsCommand) Name() string { return c.Cmd.FullCommand() }

func (c BugsCommand) Run(ctx context.Context) error {
	client, err := c.rootCmd.newZentaoClient()
	if err != nil {
		return err
	}

	guard, err := c.rootCmd.newSessionGuard(client)
	if err != nil {
		return fmt.Errorf("could not create session guard: %w", err)
	}

	svc, err := buglist.NewService(buglist.ServiceConfig{
		Zentao: client,
		Guard:  guard,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, buglist.Request{
		Product: c.product,
		Query:   c.query,
		Sort:    search.SortOrder(c.sort),
	})
	if err != nil {
		return err
	}

	if err := c.rootCmd.printer(c.format).PrintBugList(resp.Bugs); err != nil {
		return fmt.Errorf("could not print bugs: %w", err)
	}

	return nil
}

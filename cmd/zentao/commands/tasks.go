package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/zentao/internal/app/tasklist"
	"github.com/slok/zentao/internal/search"
)

type TasksCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	project string
	query   string
	sort    string
	format  string
}

// NewTasksCommand returns the tasks command.
func NewTasksCommand(rootCmd *RootCommand, app *kingpin.Application) *TasksCommand {
	c := &TasksCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("tasks", "List the tasks assigned to me.")
	c.Cmd.Flag("project", "Only show the tasks of this project.").StringVar(&c.project)
	c.Cmd.Flag("query", "Fuzzy search, pinyin and pinyin initials are supported.").Short('q').StringVar(&c.query)
	c.Cmd.Flag("sort", "Sort order.").Default(string(search.SortNone)).EnumVar(&c.sort, sortOrders(search.TaskSortOrders)...)
	c.Cmd.Flag("format", "Output format (table, json).").Default("table").EnumVar(&c.format, "table", "json")

	return c
}

func (c TasksCommand) Name() string { return c.Cmd.FullCommand() }

func (c TasksCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	client, err := c.rootCmd.newZentaoClient()
	if err != nil {
		return err
	}

	guard, err := c.rootCmd.newSessionGuard(client)
	if err != nil {
		return fmt.Errorf("could not create session guard: %w", err)
	}

	svc, err := tasklist.NewService(tasklist.ServiceConfig{
		Zentao: client,
		Guard:  guard,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	resp, err := svc.Run(ctx, tasklist.Request{
		Project: c.project,
		Query:   c.query,
		Sort:    search.SortOrder(c.sort),
	})
	if err != nil {
		return err
	}

	for _, p := range resp.Projects {
		logger.Debugf("project %q has %d tasks", p.Name, p.Count)
	}

	if err := c.rootCmd.printer(c.format).PrintTaskList(resp.Tasks); err != nil {
		return fmt.Errorf("could not print tasks: %w", err)
	}

	return nil
}

func sortOrders(orders []search.SortOrder) []string {
	res := make([]string, 0, len(orders))
	for _, o := range orders {
		res = append(res, string(o))
	}
	return res
}

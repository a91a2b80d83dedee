package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zentao/internal/log"
	"github.com/slok/zentao/internal/model"
	"github.com/slok/zentao/internal/storage/memory"
)

func TestRepository(t *testing.T) {
	tests := map[string]struct {
		actions func(ctx context.Context, t *testing.T, repo *memory.Repository)
	}{
		"Saving a response should allow getting it": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) {
				err := repo.SaveResponse(ctx, "my-task.html", "<html></html>")
				require.NoError(t, err)

				got, err := repo.GetResponse(ctx, "my-task.html")
				require.NoError(t, err)
				assert.Equal(t, "<html></html>", got)
			},
		},
		"Saving a response twice should replace it": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) {
				require.NoError(t, repo.SaveResponse(ctx, "user-login.log", "first"))
				require.NoError(t, repo.SaveResponse(ctx, "user-login.log", "second"))

				got, err := repo.GetResponse(ctx, "user-login.log")
				require.NoError(t, err)
				assert.Equal(t, "second", got)
			},
		},
		"Getting a missing response should fail with not found": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) {
				_, err := repo.GetResponse(ctx, "bug-1.html")
				assert.ErrorIs(t, err, model.ErrNotFound)
			},
		},
		"Saving a response without name should fail": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) {
				err := repo.SaveResponse(ctx, "", "x")
				assert.ErrorIs(t, err, model.ErrNotValid)
			},
		},
		"Listing responses should return the names sorted": {
			actions: func(ctx context.Context, t *testing.T, repo *memory.Repository) {
				require.NoError(t, repo.SaveResponse(ctx, "task-2.html", ""))
				require.NoError(t, repo.SaveResponse(ctx, "my-bug.html", ""))
				require.NoError(t, repo.SaveResponse(ctx, "bug-9.html", ""))

				assert.Equal(t, []string{"bug-9.html", "my-bug.html", "task-2.html"}, repo.ListResponses(ctx))
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: log.Noop})
			require.NoError(t, err)

			test.actions(context.Background(), t, repo)
		})
	}
}

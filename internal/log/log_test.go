package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/zentao/internal/log"
)

func TestCtxWithValues(t *testing.T) {
	tests := map[string]struct {
		ctx       func() context.Context
		kv        log.Kv
		expValues log.Kv
	}{
		"Values on an empty context should be stored.": {
			ctx:       context.Background,
			kv:        log.Kv{"a": 1},
			expValues: log.Kv{"a": 1},
		},
		"Values on a context with values should be merged.": {
			ctx: func() context.Context {
				return log.CtxWithValues(context.Background(), log.Kv{"a": 1, "b": 2})
			},
			kv:        log.Kv{"b": 3, "c": 4},
			expValues: log.Kv{"a": 1, "b": 3, "c": 4},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := log.CtxWithValues(test.ctx(), test.kv)
			assert.Equal(t, test.expValues, log.ValuesFromCtx(ctx))
		})
	}
}

func TestValuesFromCtxWithoutValues(t *testing.T) {
	assert.Equal(t, log.Kv{}, log.ValuesFromCtx(context.Background()))
}

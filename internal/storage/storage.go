package storage

import (
	"context"
)

// ResponseRepository persists raw Zentao responses for diagnostics.
type ResponseRepository interface {
	// SaveResponse stores the content under name, replacing any previous content.
	SaveResponse(ctx context.Context, name, content string) error
}

//go:generate mockery --case underscore --output storagemock --outpkg storagemock --name ResponseRepository --structname MockResponseRepository

// NoopResponseRepository discards every response.
const NoopResponseRepository = noopResponseRepository(0)

type noopResponseRepository int

func (noopResponseRepository) SaveResponse(context.Context, string, string) error { return nil }

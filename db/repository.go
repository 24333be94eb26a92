package db

import (
	"context"
)

type (
	// Repository is the persistence port for document-shaped records.
	// Inserts go through Upsert; documents are retired by flipping
	// is_active via Update, never deleted.
	Repository interface {
		ReadOne(ctx context.Context, table string, filter map[string]any) (map[string]any, error)
		ReadAll(ctx context.Context, table string, filter map[string]any) ([]map[string]any, error)
		Update(ctx context.Context, table string, filter map[string]any, update map[string]any) error
		Upsert(ctx context.Context, table string, filter map[string]any, record map[string]any) error
		Count(ctx context.Context, table string, filter map[string]any) (int64, error)
	}
)

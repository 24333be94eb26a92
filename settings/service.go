package settings

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zenlead/studio/core/logger"
)

type (
	schemaEntry struct {
		updatedAt time.Time
		schema    Schema
	}

	// Service exposes the settings operations. Parsed schemas are
	// cached per slug and refreshed whenever the stored document's
	// updated_at moves, so a validation racing an update may see either
	// version.
	Service struct {
		store Store
		mu    sync.RWMutex
		cache map[string]*schemaEntry
	}
)

// NewService builds a Service on the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		cache: make(map[string]*schemaEntry),
	}
}

// GetModelSettings returns the stored document for one model.
func (s *Service) GetModelSettings(ctx context.Context, slug string) (*Document, error) {
	return s.store.Get(ctx, slug)
}

// GetAllModelSettings returns every active document keyed by slug.
func (s *Service) GetAllModelSettings(ctx context.Context) (map[string]*Document, error) {
	docs, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	all := make(map[string]*Document, len(docs))
	for _, doc := range docs {
		all[doc.ModelSlug] = doc
	}
	return all, nil
}

// UpdateModelSettings replaces the given fields of a model's document,
// creating the document when the slug is new. A settings_schema carried
// in fields must parse, so a schema nobody could validate against is
// rejected here instead of surfacing at the first validation call.
func (s *Service) UpdateModelSettings(ctx context.Context, slug string, fields map[string]any) (*Document, error) {
	if raw, ok := fields["settings_schema"]; ok {
		rawSchema, ok := asMap(raw)
		if !ok {
			return nil, fmt.Errorf("%w: settings_schema must be an object", ErrMalformedSchema)
		}
		if _, err := ParseSchema(rawSchema); err != nil {
			return nil, err
		}
	}

	if err := s.store.Upsert(ctx, slug, fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.cache, slug)
	s.mu.Unlock()

	logger.Info("updated settings for model %s", slug)
	return s.store.Get(ctx, slug)
}

// DeactivateModel retires a model's settings from reads. The document
// stays in the store; upserting is_active true brings it back.
func (s *Service) DeactivateModel(ctx context.Context, slug string) error {
	if err := s.store.Deactivate(ctx, slug); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.cache, slug)
	s.mu.Unlock()

	logger.Info("deactivated settings for model %s", slug)
	return nil
}

// ValidateUserInput validates input against the model's stored schema.
// A missing model surfaces ErrNotFound; invalid input is a normal
// Result with Valid false, never an error.
func (s *Service) ValidateUserInput(ctx context.Context, slug string, input map[string]any) (Result, error) {
	doc, err := s.store.Get(ctx, slug)
	if err != nil {
		return Result{}, err
	}

	schema, err := s.schemaFor(doc)
	if err != nil {
		return Result{}, err
	}

	return ValidateInput(schema, input), nil
}

// schemaFor returns the parsed schema for doc, reusing the cached parse
// while the document's updated_at is unchanged.
func (s *Service) schemaFor(doc *Document) (Schema, error) {
	s.mu.RLock()
	entry, ok := s.cache[doc.ModelSlug]
	s.mu.RUnlock()
	if ok && entry.updatedAt.Equal(doc.UpdatedAt) {
		return entry.schema, nil
	}

	schema, err := doc.Schema()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[doc.ModelSlug] = &schemaEntry{updatedAt: doc.UpdatedAt, schema: schema}
	s.mu.Unlock()

	logger.Debug("parsed settings schema for model %s", doc.ModelSlug)
	return schema, nil
}

package settings

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zenlead/studio/db"
	dbmongo "github.com/zenlead/studio/db/mongo"
)

// ErrNotFound reports that a model has no active settings document.
var ErrNotFound = errors.New("model settings not found")

type (
	// Store is the persistence port for settings documents. Get and
	// GetAll only see active documents; Upsert creates a document when
	// the slug is new and replaces the given fields otherwise.
	// Deactivate flips is_active off so the document disappears from
	// reads without being deleted.
	Store interface {
		Get(ctx context.Context, slug string) (*Document, error)
		GetAll(ctx context.Context) ([]*Document, error)
		Upsert(ctx context.Context, slug string, fields map[string]any) error
		Deactivate(ctx context.Context, slug string) error
	}

	repositoryStore struct {
		repo db.Repository
	}
)

// NewStore builds a Store backed by the given repository.
func NewStore(repo db.Repository) Store {
	return &repositoryStore{repo: repo}
}

func (s *repositoryStore) Get(ctx context.Context, slug string) (*Document, error) {
	record, err := s.repo.ReadOne(ctx, Collection, map[string]any{
		"model_slug": slug,
		"is_active":  true,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("settings not found for model %s: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings for model %s: %v", slug, err)
	}

	doc, err := dbmongo.ConvertToStruct[Document](record)
	if err != nil {
		return nil, fmt.Errorf("failed to decode settings for model %s: %v", slug, err)
	}
	return &doc, nil
}

func (s *repositoryStore) GetAll(ctx context.Context) ([]*Document, error) {
	records, err := s.repo.ReadAll(ctx, Collection, map[string]any{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to read model settings: %v", err)
	}

	docs := make([]*Document, 0, len(records))
	for _, record := range records {
		doc, err := dbmongo.ConvertToStruct[Document](record)
		if err != nil {
			return nil, fmt.Errorf("failed to decode settings document: %v", err)
		}
		docs = append(docs, &doc)
	}
	return docs, nil
}

func (s *repositoryStore) Upsert(ctx context.Context, slug string, fields map[string]any) error {
	count, err := s.repo.Count(ctx, Collection, map[string]any{"model_slug": slug})
	if err != nil {
		return fmt.Errorf("failed to check settings for model %s: %v", slug, err)
	}

	now := time.Now().UTC()
	record := make(map[string]any, len(fields)+3)
	maps.Copy(record, fields)
	record["model_slug"] = slug
	record["updated_at"] = now
	if count == 0 {
		record["created_at"] = now
		if _, ok := record["is_active"]; !ok {
			record["is_active"] = true
		}
	}

	if err := s.repo.Upsert(ctx, Collection, map[string]any{"model_slug": slug}, record); err != nil {
		return fmt.Errorf("failed to upsert settings for model %s: %v", slug, err)
	}
	return nil
}

func (s *repositoryStore) Deactivate(ctx context.Context, slug string) error {
	count, err := s.repo.Count(ctx, Collection, map[string]any{
		"model_slug": slug,
		"is_active":  true,
	})
	if err != nil {
		return fmt.Errorf("failed to check settings for model %s: %v", slug, err)
	}
	if count == 0 {
		return fmt.Errorf("settings not found for model %s: %w", slug, ErrNotFound)
	}

	update := map[string]any{"$set": map[string]any{
		"is_active":  false,
		"updated_at": time.Now().UTC(),
	}}
	if err := s.repo.Update(ctx, Collection, map[string]any{"model_slug": slug}, update); err != nil {
		return fmt.Errorf("failed to deactivate settings for model %s: %v", slug, err)
	}
	return nil
}

// Package seed ships the bundled model-settings catalog and writes it
// into a settings store.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/zenlead/studio/core/logger"
	"github.com/zenlead/studio/core/threading"
	"github.com/zenlead/studio/settings"
)

//go:embed data/*.json
var embedded embed.FS

// Catalog returns the slugs of the bundled settings documents.
func Catalog() ([]string, error) {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(entries))
	for _, entry := range entries {
		slugs = append(slugs, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return slugs, nil
}

// Load returns the bundled document fields for one model.
func Load(slug string) (map[string]any, error) {
	data, err := embedded.ReadFile(fmt.Sprintf("data/%s.json", slug))
	if err != nil {
		return nil, fmt.Errorf("no bundled settings for model %s: %v", slug, err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("bundled settings for model %s: %v", slug, err)
	}
	return fields, nil
}

// Apply upserts every bundled document through the store. Documents are
// independent, so they are written concurrently.
func Apply(ctx context.Context, store settings.Store) error {
	slugs, err := Catalog()
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	group := threading.NewRoutineGroup()
	for _, slug := range slugs {
		group.RunSafe(func() {
			if err := ApplyOne(ctx, store, slug); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
	}
	group.Wait()

	return errors.Join(errs...)
}

// ApplyOne upserts one bundled document. The bundled schema is parsed
// before writing so a broken bundle never reaches the store.
func ApplyOne(ctx context.Context, store settings.Store, slug string) error {
	fields, err := Load(slug)
	if err != nil {
		return err
	}

	raw, ok := fields["settings_schema"].(map[string]any)
	if !ok {
		return fmt.Errorf("bundled settings for model %s have no settings_schema", slug)
	}
	if _, err := settings.ParseSchema(raw); err != nil {
		return fmt.Errorf("bundled settings for model %s: %v", slug, err)
	}

	if err := store.Upsert(ctx, slug, fields); err != nil {
		return err
	}
	logger.Info("seeded settings for model %s", slug)
	return nil
}

// Package discovery locates schema sources and parses them into a single
// document for lowering.
package discovery

import (
	"context"
	"fmt"
	"sort"

	language "github.com/hanpama/graphcfg/internal/language"
)

type SourceMetadata struct {
	// Name identifies the source and is used as the file name in positions.
	Name     string
	FilePath string
}

type Discovery interface {
	ListSources(ctx context.Context) ([]*SourceMetadata, error)
	ReadSource(ctx context.Context, name string) (string, error)
}

// Load reads every source of disc in name order and parses them into one
// document.
func Load(ctx context.Context, disc Discovery) (*language.SchemaDocument, error) {
	metas, err := disc.ListSources(ctx)
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, fmt.Errorf("no schema sources found")
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].Name < metas[j].Name })

	sources := make([]*language.Source, 0, len(metas))
	for _, meta := range metas {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := disc.ReadSource(ctx, meta.Name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &language.Source{Name: meta.Name, Input: content})
	}

	doc, err := language.ParseSchemas(sources...)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	return doc, nil
}

package discovery

import (
	"context"
	"fmt"
)

type InMemorySource struct {
	Name    string
	Content string
}

// InMemoryDiscovery serves sources held in memory. It is used by tests and by
// callers that already have the schema text.
type InMemoryDiscovery struct {
	sources  map[string]*SourceMetadata
	contents map[string]string
}

// NewInMemoryDiscovery creates a new InMemoryDiscovery instance
func NewInMemoryDiscovery(srcs []InMemorySource) *InMemoryDiscovery {
	discovery := &InMemoryDiscovery{
		sources:  make(map[string]*SourceMetadata),
		contents: make(map[string]string),
	}

	for _, src := range srcs {
		discovery.sources[src.Name] = &SourceMetadata{
			Name:     src.Name,
			FilePath: src.Name,
		}
		discovery.contents[src.Name] = src.Content
	}
	return discovery
}

// ListSources implements Discovery interface
func (d *InMemoryDiscovery) ListSources(ctx context.Context) ([]*SourceMetadata, error) {
	metas := make([]*SourceMetadata, 0, len(d.sources))
	for _, meta := range d.sources {
		metas = append(metas, meta)
	}
	return metas, nil
}

// ReadSource implements Discovery interface
func (d *InMemoryDiscovery) ReadSource(ctx context.Context, name string) (string, error) {
	content, exists := d.contents[name]
	if !exists {
		return "", fmt.Errorf("source %q not found", name)
	}
	return content, nil
}

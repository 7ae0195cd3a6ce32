package discovery_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/graphcfg/internal/discovery"
)

func names(t *testing.T, disc discovery.Discovery) []string {
	t.Helper()
	metas, err := disc.ListSources(context.Background())
	require.NoError(t, err)
	out := make([]string, len(metas))
	for i, meta := range metas {
		out[i] = meta.Name
	}
	return out
}

func TestFileSystemDiscovery(t *testing.T) {
	disc, err := discovery.NewFileSystemDiscovery(context.Background(), "testdata")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"schema.graphql", "nested/user.graphqls"}, names(t, disc))

	doc, err := discovery.Load(context.Background(), disc)
	require.NoError(t, err)
	require.Len(t, doc.Schema, 1)
	require.Len(t, doc.Definitions, 2)

	// sources are parsed in name order
	require.Equal(t, "User", doc.Definitions[0].Name)
	require.Equal(t, "nested/user.graphqls", doc.Definitions[0].Position.Src.Name)
	require.Equal(t, "Query", doc.Definitions[1].Name)
}

func TestFileSystemDiscoveryErrors(t *testing.T) {
	_, err := discovery.NewFileSystemDiscovery(context.Background(), "")
	require.Error(t, err)

	_, err = discovery.NewFileSystemDiscovery(context.Background(), filepath.Join("testdata", "missing"))
	require.Error(t, err)

	disc, err := discovery.NewFileSystemDiscovery(context.Background(), "testdata")
	require.NoError(t, err)
	_, err = disc.ReadSource(context.Background(), "other.graphql")
	require.Error(t, err)
}

func TestFileListDiscovery(t *testing.T) {
	disc := discovery.NewFileListDiscovery([]string{filepath.Join("testdata", "schema.graphql")})
	doc, err := discovery.Load(context.Background(), disc)
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)

	missing := discovery.NewFileListDiscovery([]string{filepath.Join("testdata", "missing.graphql")})
	_, err = discovery.Load(context.Background(), missing)
	require.Error(t, err)
}

func TestInMemoryDiscovery(t *testing.T) {
	disc := discovery.NewInMemoryDiscovery([]discovery.InMemorySource{
		{Name: "b.graphql", Content: "type B { a: A }"},
		{Name: "a.graphql", Content: "schema { query: B }\ntype A { id: ID }"},
	})
	doc, err := discovery.Load(context.Background(), disc)
	require.NoError(t, err)
	require.Len(t, doc.Schema, 1)
	require.Equal(t, "A", doc.Definitions[0].Name)
	require.Equal(t, "B", doc.Definitions[1].Name)
}

func TestLoadErrors(t *testing.T) {
	_, err := discovery.Load(context.Background(), discovery.NewInMemoryDiscovery(nil))
	require.ErrorContains(t, err, "no schema sources found")

	_, err = discovery.Load(context.Background(), discovery.NewInMemoryDiscovery([]discovery.InMemorySource{
		{Name: "broken.graphql", Content: "type {"},
	}))
	require.ErrorContains(t, err, "parse schema")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = discovery.Load(ctx, discovery.NewInMemoryDiscovery([]discovery.InMemorySource{
		{Name: "a.graphql", Content: "type A { id: ID }"},
	}))
	require.ErrorIs(t, err, context.Canceled)
}

package discovery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

var schemaExtensions = map[string]bool{
	".graphql":  true,
	".graphqls": true,
	".gql":      true,
}

// FileSystemDiscovery implements Discovery for schema files on disk
type FileSystemDiscovery struct {
	metas map[string]*SourceMetadata
}

// NewFileSystemDiscovery collects every schema file below rootDir. Sources
// are named by their path relative to rootDir.
func NewFileSystemDiscovery(ctx context.Context, rootDir string) (*FileSystemDiscovery, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("root directory cannot be empty")
	}
	discovery := &FileSystemDiscovery{
		metas: make(map[string]*SourceMetadata),
	}

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !schemaExtensions[filepath.Ext(d.Name())] {
			return nil
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %q: %w", path, err)
		}
		name := filepath.ToSlash(relPath)
		discovery.metas[name] = &SourceMetadata{
			Name:     name,
			FilePath: path,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root directory %q: %w", rootDir, err)
	}
	return discovery, nil
}

// NewFileListDiscovery serves exactly the given files, named as given.
func NewFileListDiscovery(files []string) *FileSystemDiscovery {
	discovery := &FileSystemDiscovery{
		metas: make(map[string]*SourceMetadata, len(files)),
	}
	for _, file := range files {
		name := filepath.ToSlash(file)
		discovery.metas[name] = &SourceMetadata{Name: name, FilePath: file}
	}
	return discovery
}

// ListSources returns the schema files found on disk
func (d *FileSystemDiscovery) ListSources(ctx context.Context) ([]*SourceMetadata, error) {
	metas := make([]*SourceMetadata, 0, len(d.metas))
	for _, meta := range d.metas {
		metas = append(metas, meta)
	}
	return metas, nil
}

// ReadSource reads the schema text of a source
func (d *FileSystemDiscovery) ReadSource(ctx context.Context, name string) (string, error) {
	meta, ok := d.metas[name]
	if !ok {
		return "", fmt.Errorf("source %q not found", name)
	}
	content, err := os.ReadFile(meta.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to read schema source %q: %w", name, err)
	}
	return string(content), nil
}

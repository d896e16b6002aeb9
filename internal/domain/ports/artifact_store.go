package ports

import "context"

// ArtifactWriter persists a JSON-serializable value at path, replacing prior content.
type ArtifactWriter interface {
	Write(ctx context.Context, path string, value any) error
}

// ArtifactReader decodes the JSON artifact at path into dst.
type ArtifactReader interface {
	Read(ctx context.Context, path string, dst any) error
}

// ArtifactStore reads and writes artifacts.
type ArtifactStore interface {
	ArtifactWriter
	ArtifactReader
}

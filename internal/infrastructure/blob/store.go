// Package blob abstracts attachment storage. The application layer stores
// and deletes blobs through Store and never touches the filesystem directly,
// so the backing store can be swapped without touching ticket logic.
package blob

import (
	"context"
	"io"
)

// StoredBlob is the handle returned after a successful save. URL is what
// clients download; PublicID is the stable identifier used for deletion.
type StoredBlob struct {
	URL      string
	PublicID string
}

// Store saves and deletes attachment blobs.
type Store interface {
	// Save persists the content under a generated unique name and returns
	// its handle. The original filename is kept only for the download
	// Content-Disposition, never as the storage key.
	Save(ctx context.Context, originalName string, content io.Reader) (*StoredBlob, error)

	// Delete removes the blob identified by publicID. Deleting an absent
	// blob is not an error.
	Delete(ctx context.Context, publicID string) error
}

package blob

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps blobs on the local filesystem under a single directory.
// PublicID is the generated filename; URL is baseURL plus that filename.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (s *LocalStore) Save(ctx context.Context, originalName string, content io.Reader) (*StoredBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := generateBlobName(originalName)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to close blob file: %w", err)
	}

	return &StoredBlob{
		URL:      s.baseURL + "/" + name,
		PublicID: name,
	}, nil
}

func (s *LocalStore) Delete(ctx context.Context, publicID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// publicID comes from our own database, but never let a crafted value
	// escape the upload directory
	name := filepath.Base(publicID)
	if name != publicID {
		return fmt.Errorf("invalid blob identifier: %s", publicID)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

// generateBlobName builds a random filename preserving the original
// extension so served files keep a sensible content type.
func generateBlobName(originalName string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate blob name: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	return hex.EncodeToString(buf) + ext, nil
}

package persistence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adaptivekitchen/studio-site/blog/domain"
)

var _ domain.ImageStore = (*DiskImageStore)(nil)

// DiskImageStore stores uploaded images on the local filesystem. Stored names
// are derived from the content hash plus the original extension, so the same
// content uploaded twice lands on the same file instead of piling up copies.
type DiskImageStore struct {
	dir string
}

func NewDiskImageStore(dir string) *DiskImageStore {
	return &DiskImageStore{dir: dir}
}

func (s *DiskImageStore) Save(ctx context.Context, img *domain.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image cannot be nil")
	}
	if len(img.Content) == 0 {
		return "", fmt.Errorf("image content cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := storedName(img)

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	localPath := filepath.Join(s.dir, name)
	if err := os.WriteFile(localPath, img.Content, 0644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return name, nil
}

func (s *DiskImageStore) Open(ctx context.Context, name string) (*domain.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	localPath, err := s.localPath(name)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(localPath)
	if os.IsNotExist(err) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	info, err := os.Stat(localPath)
	created := time.Time{}
	if err == nil {
		created = info.ModTime()
	}

	return &domain.Image{
		Name:        name,
		ContentType: mime.TypeByExtension(filepath.Ext(name)),
		Content:     content,
		CreatedAt:   created,
	}, nil
}

func (s *DiskImageStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	localPath, err := s.localPath(name)
	if err != nil {
		return err
	}

	err = os.Remove(localPath)
	if os.IsNotExist(err) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to remove image file: %w", err)
	}
	return nil
}

// localPath resolves a stored name to a path inside the image directory,
// rejecting names that would escape it.
func (s *DiskImageStore) localPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid image name: %q", name)
	}
	return filepath.Join(s.dir, name), nil
}

// storedName derives the on-disk filename from the content hash and the
// original file's extension.
func storedName(img *domain.Image) string {
	sum := sha256.Sum256(img.Content)
	hash := hex.EncodeToString(sum[:])[:16]

	ext := strings.ToLower(filepath.Ext(img.Name))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(img.ContentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}
	return hash + ext
}

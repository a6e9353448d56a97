package domain

import (
	"context"
	"time"
)

// Image is an uploaded asset referenced by post content or used as a post's
// primary image.
type Image struct {
	Name        string
	ContentType string
	Content     []byte
	CreatedAt   time.Time
}

type ImageStore interface {
	// Save persists the image and returns the stored filename. Names are
	// derived from the content hash, so saving identical content twice
	// yields the same name.
	Save(ctx context.Context, img *Image) (string, error)

	// Open retrieves a stored image by its filename.
	Open(ctx context.Context, name string) (*Image, error)

	// Delete removes a stored image. Deleting a name that does not exist
	// fails with ErrNotFound.
	Delete(ctx context.Context, name string) error
}

package domain

import (
	"context"
	"time"
)

// Post represents one article on the site. Dynamic posts are created through
// the admin dashboard and live in the configured store; static posts are
// compiled into the binary and can never be edited or deleted.
type Post struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	ReadTime      string    `json:"readTime"`
	Author        string    `json:"author"`
	Tags          []string  `json:"tags"`
	Image         string    `json:"image"`
	ContentImages []string  `json:"contentImages"`
	Date          string    `json:"date"`
	Slug          string    `json:"slug"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Revision identifies the version of the stored collection at the time it was
// read. Passing it back to SaveAll lets the store reject a write whose base
// read is stale, so two concurrent read-modify-write cycles cannot silently
// drop each other's changes.
type Revision int64

// PostStore persists the dynamic post collection as a whole. The collection
// is replaced atomically on every write; callers read, modify, and save the
// full list.
type PostStore interface {
	// LoadAll returns the dynamic posts in storage order (newest first,
	// because creation prepends) along with the revision to hand back to
	// SaveAll. A store that has never been written returns an empty
	// collection at revision 0; that is not an error.
	LoadAll(ctx context.Context) ([]Post, Revision, error)

	// SaveAll atomically replaces the entire collection. It fails with an
	// error matching ErrConflict when the store has advanced past base.
	SaveAll(ctx context.Context, posts []Post, base Revision) error
}

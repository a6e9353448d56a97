// Package marketing handles email capture from the landing page signup form.
// Captured addresses are forwarded to a spreadsheet webhook when one is
// configured, otherwise appended to a local log.
package marketing

import (
	"context"
	"strings"
	"time"
)

// Signup is one captured email address.
type Signup struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignupSink receives captured signups.
type SignupSink interface {
	Record(ctx context.Context, s Signup) error
}

// ValidEmail applies the same loose check the signup form does: non-empty and
// contains an @.
func ValidEmail(email string) bool {
	return strings.Contains(email, "@")
}

package marketing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ SignupSink = (*FileSink)(nil)

// FileSink appends signups to a local JSON-lines file. Used when no
// spreadsheet webhook is configured.
type FileSink struct {
	mu   sync.Mutex
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Record(ctx context.Context, signup Signup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(signup)
	if err != nil {
		return fmt.Errorf("failed to encode signup: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create signup log directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open signup log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return fmt.Errorf("failed to append signup: %w", err)
	}
	return nil
}

package marketing

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileSinkAppendsJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signups.jsonl")
	sink := NewFileSink(path)
	ctx := context.Background()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, sink.Record(ctx, Signup{Email: "a@example.com", CreatedAt: created}))
	require.NoError(t, sink.Record(ctx, Signup{Email: "b@example.com", CreatedAt: created}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var emails []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var signup Signup
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &signup))
		require.Equal(t, created, signup.CreatedAt)
		emails = append(emails, signup.Email)
	}
	require.NoError(t, scanner.Err())
	require.Equal(t, []string{"a@example.com", "b@example.com"}, emails)
}

func TestFileSinkCreatesLogDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "signups.jsonl")
	sink := NewFileSink(path)

	require.NoError(t, sink.Record(context.Background(), Signup{Email: "a@example.com"}))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestFileSinkConcurrentWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signups.jsonl")
	sink := NewFileSink(path)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sink.Record(context.Background(), Signup{Email: "x@example.com"})
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := 0
	for _, b := range content {
		if b == '\n' {
			lines++
		}
	}
	require.Equal(t, 10, lines)
}

func TestFileSinkCancelledContext(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "signups.jsonl"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, sink.Record(ctx, Signup{Email: "a@example.com"}))
}

func TestValidEmail(t *testing.T) {
	for email, want := range map[string]bool{
		"a@example.com": true,
		"":              false,
		"no-at-sign":    false,
	} {
		if got := ValidEmail(email); got != want {
			t.Errorf("ValidEmail(%q) = %v, want %v", email, got, want)
		}
	}
}

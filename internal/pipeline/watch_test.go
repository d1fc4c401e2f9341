package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"document write", fsnotify.Event{Name: "/meta/home.json", Op: fsnotify.Write}, true},
		{"document create", fsnotify.Event{Name: "/meta/home.json", Op: fsnotify.Create}, true},
		{"document remove", fsnotify.Event{Name: "/meta/home.json", Op: fsnotify.Remove}, true},
		{"document rename", fsnotify.Event{Name: "/meta/home.json", Op: fsnotify.Rename}, true},
		{"chmod only", fsnotify.Event{Name: "/meta/home.json", Op: fsnotify.Chmod}, false},
		{"non-json file", fsnotify.Event{Name: "/meta/notes.txt", Op: fsnotify.Write}, false},
		{"embedding store", fsnotify.Event{Name: "/meta/embeddings.json", Op: fsnotify.Write}, false},
		{"change index", fsnotify.Event{Name: "/meta/hashes.json", Op: fsnotify.Write}, false},
		{"temp file", fsnotify.Event{Name: "/meta/embeddings.json.tmp-123", Op: fsnotify.Create}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relevantEvent(tt.event))
		})
	}
}

func TestWatchRerunsOnDocumentChange(t *testing.T) {
	if testing.Short() {
		t.Skip("debounce wait")
	}

	dir := t.TempDir()
	writeDoc(t, dir, "home.json", "/home")

	emb := &countingEmbedder{}
	p := newTestPipeline(dir, emb, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- p.Watch(ctx) }()

	// Initial pass embeds the existing document.
	require.Eventually(t, func() bool { return emb.callCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	writeDoc(t, dir, "settings.json", "/settings")

	require.Eventually(t, func() bool { return emb.callCount() == 2 },
		5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

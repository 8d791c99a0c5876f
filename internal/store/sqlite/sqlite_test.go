package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/solacehq/solace-server/internal/store"
	"github.com/solacehq/solace-server/internal/store/storetest"
)

func TestCompliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		path := filepath.Join(t.TempDir(), "solace.db")
		s, err := New(path)
		if err != nil {
			t.Fatalf("open sqlite store: %v", err)
		}
		return s
	})
}

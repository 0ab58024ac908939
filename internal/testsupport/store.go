package testsupport

import (
	"testing"

	"kampdata/internal/config"
	"kampdata/internal/store"
)

// MustOpenStore opens a store for the provided config and fails the test when
// that does not succeed. The store is closed automatically during cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

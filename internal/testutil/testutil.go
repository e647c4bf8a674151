// Package testutil provides shared test helpers for the StatusWise Core SDK.
//
// All helpers accept [testing.TB] for compatibility with both tests and
// benchmarks, and call t.Helper() so failures report the caller's line.
// The translator fixtures deliberately return plain func(string) string
// values so every package can use them without importing pkg/errstatus.
package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sserr "github.com/StatusWise/statuswise-core/pkg/errors"
)

// RequireNoError halts the test immediately if err is non-nil.
// Use this for preconditions whose failure makes continuing meaningless.
func RequireNoError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// RequireError halts the test immediately if err is nil.
func RequireError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
}

// RequireErrorCode halts the test if err is nil, is not an *sserr.Error,
// or does not carry the expected error code. This is the primary helper
// for validating SDK error responses.
//
// Example:
//
//	_, err := catalog.Load("nope.yaml")
//	testutil.RequireErrorCode(t, err, sserr.CodeCatalogLoad)
func RequireErrorCode(t testing.TB, err error, code sserr.Code, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	ssErr, ok := sserr.AsError(err)
	require.True(t, ok, "expected *sserr.Error, got %T: %v", err, err)
	require.Equal(t, code, ssErr.Code,
		"error code mismatch: got %q, want %q (message: %s)",
		ssErr.Code, code, ssErr.Message)
}

// AssertErrorCode records a test failure (without halting) if err is nil,
// is not an *sserr.Error, or does not carry the expected error code.
// Use this in table-driven tests where you want to check all rows.
func AssertErrorCode(t testing.TB, err error, code sserr.Code, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Error(t, err, msgAndArgs...) {
		return false
	}
	ssErr, ok := sserr.AsError(err)
	if !assert.True(t, ok, "expected *sserr.Error, got %T: %v", err, err) {
		return false
	}
	return assert.Equal(t, code, ssErr.Code)
}

// Translator returns a translate function that renders every key with the
// marker form produced by [TranslatedKey]. Tests assert on the marker to
// verify which catalog key the classifier chose without needing a real
// catalog.
func Translator() func(key string) string {
	return TranslatedKey
}

// TranslatedKey is the marker rendering used by [Translator]: "<key>"
// wrapped in angle quotes, e.g. «errStatus.404».
func TranslatedKey(key string) string {
	return "«" + key + "»"
}

// KeyRecorder is a translate function that records every key it resolves,
// rendering them in marker form. Use it to assert how many times (and for
// which keys) the classifier consulted the translation lookup.
type KeyRecorder struct {
	mu   sync.Mutex
	keys []string
}

// Translate resolves a key, recording it.
func (r *KeyRecorder) Translate(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
	return TranslatedKey(key)
}

// Keys returns a copy of the recorded keys in resolution order.
func (r *KeyRecorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...)
}

// Count returns how many lookups were recorded.
func (r *KeyRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}

// PanickingTranslator returns a translate function that panics when asked
// for any of the given keys and renders all others in marker form. With no
// arguments it panics on every key. Used to exercise the unexpected-failure
// guard.
func PanickingTranslator(panicKeys ...string) func(key string) string {
	return func(key string) string {
		if len(panicKeys) == 0 {
			panic("translator fault: " + key)
		}
		for _, k := range panicKeys {
			if k == key {
				panic("translator fault: " + key)
			}
		}
		return TranslatedKey(key)
	}
}

// WriteCatalogFile writes a catalog file with the given content into a
// fresh temp directory and returns its path. The file is removed with the
// test's temp dir.
func WriteCatalogFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600),
		"failed to write catalog fixture %q", name)
	return path
}

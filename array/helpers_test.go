// SPDX-License-Identifier: MIT

package array_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicsIs runs f and asserts it panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "got %v, want %v", err, target)
	}()
	f()
}

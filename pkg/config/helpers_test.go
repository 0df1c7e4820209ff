package config_test

import (
	"os"
	"testing"
)

// unsetForTest removes variables for the duration of the test. Call it after
// t.Setenv on the same keys so that their original values are restored.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("unset %s: %v", k, err)
		}
	}
}

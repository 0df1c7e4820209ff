package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearFileVars unsets the variables defined in testdata/.env.test and
// restores them when the test ends.
func clearFileVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RESUMEKIT_TEST_FILE_VALUE", "RESUMEKIT_TEST_QUOTED"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaultEnv(t *testing.T) {
	t.Run("env file variable selects the files", func(t *testing.T) {
		clearFileVars(t)
		t.Setenv(EnvFileVariable, "testdata/.env.test")

		require.NoError(t, loadDefaultEnv())
		assert.Equal(t, "from_file", os.Getenv("RESUMEKIT_TEST_FILE_VALUE"))
	})

	t.Run("listed files must exist", func(t *testing.T) {
		clearFileVars(t)
		t.Setenv(EnvFileVariable, "testdata/.env.test,testdata/absent.env")
		assert.ErrorIs(t, loadDefaultEnv(), ErrLoadingEnvFile)
	})
}

package config

import (
	"os"
	"testing"

	"github.com/buildnoise/squelch/internal/testutil"
)

func TestEnv(t *testing.T) {
	t.Run("env var set to yes", func(t *testing.T) {
		os.Setenv("TEST_ENV_VAR", "yes")
		defer os.Unsetenv("TEST_ENV_VAR")

		value := Env("TEST_ENV_VAR")
		testutil.AssertEqual(t, true, value)
	})

	t.Run("env var set to other value", func(t *testing.T) {
		os.Setenv("TEST_ENV_VAR", "no")
		defer os.Unsetenv("TEST_ENV_VAR")

		value := Env("TEST_ENV_VAR")
		testutil.AssertEqual(t, false, value)
	})

	t.Run("non-existing env var", func(t *testing.T) {
		os.Unsetenv("NON_EXISTING_VAR")

		value := Env("NON_EXISTING_VAR")
		testutil.AssertEqual(t, false, value)
	})
}

func TestEnvOverrides(t *testing.T) {
	origClient := Client
	origCommon := Common
	defer func() {
		Client = origClient
		Common = origCommon
	}()

	t.Run("log level from environment", func(t *testing.T) {
		os.Setenv("SQUELCH_LOG_LEVEL", "trace")
		defer os.Unsetenv("SQUELCH_LOG_LEVEL")

		Setup(&Args{ConfigFile: "none"}, nil)
		testutil.AssertEqual(t, "trace", Common.LogLevel)
	})

	t.Run("flag beats environment", func(t *testing.T) {
		os.Setenv("SQUELCH_LOG_LEVEL", "trace")
		defer os.Unsetenv("SQUELCH_LOG_LEVEL")

		Setup(&Args{ConfigFile: "none", LogLevel: "error"}, nil)
		testutil.AssertEqual(t, "error", Common.LogLevel)
	})

	t.Run("quiet from environment", func(t *testing.T) {
		os.Setenv("SQUELCH_QUIET", "yes")
		defer os.Unsetenv("SQUELCH_QUIET")

		Setup(&Args{ConfigFile: "none"}, nil)
		testutil.AssertEqual(t, true, Client.Quiet)
	})
}

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

// setConfig overrides a viper key for the duration of the test.
func setConfig(t *testing.T, key string, value any) {
	t.Helper()

	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, nil) })
}

// restoreViperConfig drops config files merged during the test once it ends.
func restoreViperConfig(t *testing.T) {
	t.Helper()

	baseline := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(baseline, []byte("version: 1\n"), 0o644))

	t.Cleanup(func() {
		viper.SetConfigFile(baseline)
		require.NoError(t, viper.ReadInConfig())
		viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	})
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "hai3", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{outputFlagName, noReportFlagName, rootFlagName, screensetsDirFlagName, logFileFlagName, verboseFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "flag %s", name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "screensets")
}

func TestInit(t *testing.T) {
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, syntaxAdapter)
	assert.NotNil(t, hookRunner)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, copier)
	assert.NotNil(t, workflow)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"screenset", "view", "init", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestResolveScreensetsDir(t *testing.T) {
	ctx := context.Background()

	t.Run("absolute screensets dir wins", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "screensets")
		setConfig(t, screensetsDirKey, abs)
		setConfig(t, projectRootKey, "/ignored")

		assert.Equal(t, m.Path(abs), resolveScreensetsDir(ctx))
	})

	t.Run("relative to explicit root", func(t *testing.T) {
		root := t.TempDir()
		setConfig(t, projectRootKey, root)

		assert.Equal(t, m.Path(filepath.Join(root, defaultScreensetsDir)), resolveScreensetsDir(ctx))
	})

	t.Run("relative to discovered root", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0o644))

		nested := filepath.Join(root, "src", "app")
		require.NoError(t, os.MkdirAll(nested, 0o755))

		originalWD, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(nested))
		t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

		resolvedRoot, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)

		got, err := filepath.EvalSymlinks(filepath.Dir(filepath.Dir(string(resolveScreensetsDir(ctx)))))
		require.NoError(t, err)
		assert.Equal(t, resolvedRoot, got)
	})
}

func TestExecute_WithError(t *testing.T) {
	originalRootCmd := rootCmd
	defer func() {
		rootCmd = originalRootCmd
	}()

	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("command failed")
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})

	rootCmd = mockCmd

	// Execute would os.Exit(1); check the command itself errors.
	err := rootCmd.Execute()
	require.Error(t, err)
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // exits with status 1
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	require.Error(t, err)

	if exitErr, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitErr.ExitCode())
	} else {
		assert.Fail(t, "expected exec.ExitError", "got %T", err)
	}

	assert.Contains(t, string(output), "error occurred")
}

// Package cmd provides the root command and CLI setup for hai3.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/adapter"
	"github.com/beyond-event-horizon/HAI3-sub001/internal/controller"
	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var syntaxAdapter adapter.SyntaxAdapter
var hookRunner adapter.HookRunnerAdapter
var reportStore adapter.ReportStore
var copier domain.Copier
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// noReportFlag disables writing a copy report when set.
var noReportFlag bool

var projectRootFlag string
var screensetsDirFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	syntaxAdapter = adapter.NewTreeSitterSyntaxAdapter()
	hookRunner = adapter.NewLocalHookRunnerAdapter(hooksTimeout())
	reportStore = adapter.NewReportStore()
	copier = domain.NewCopier(fsAdapter, syntaxAdapter, hookRunner)
	workflow = domain.NewWorkflow(reportStore, ui, copier)
}

const rootLongDescription = `hai3 is the command-line companion of a HAI3 project.

It manages screensets: self-contained UI feature modules living under the
project's screensets directory, each identified by a camelCase id declared in
its ids file. Copying a screenset renames every reference to that id so the
copy can be registered next to the original.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hai3",
		Short:        "HAI3 project tooling",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for copy reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noReportFlag, noReportFlagName, viper.GetBool(noReportFlagName), "do not write a copy report")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noReportFlagName), noReportFlagName)

	cmd.PersistentFlags().StringVarP(&projectRootFlag, rootFlagName, "C", viper.GetString(projectRootKey), "project root (default: nearest directory with hai3.yaml or package.json)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), projectRootKey)

	cmd.PersistentFlags().StringVar(&screensetsDirFlag, screensetsDirFlagName, viper.GetString(screensetsDirKey), "screensets directory, relative to the project root")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(screensetsDirFlagName), screensetsDirKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// resolveProjectRoot returns the configured project root. Without one the nearest
// directory above the working directory holding a project marker is used, falling back
// to the working directory itself.
func resolveProjectRoot(ctx context.Context) m.Path {
	if root := viper.GetString(projectRootKey); root != "" {
		return m.Path(root)
	}

	found, err := fsAdapter.FindProjectRoot(ctx, ".")
	if err != nil {
		return "."
	}

	return found
}

// loadProjectConfig merges the project root's hai3.yaml when it is not the file read at
// startup, so commands run from a subdirectory see the project settings.
func loadProjectConfig(ctx context.Context) {
	configPath := fsAdapter.JoinPath(ctx, string(resolveProjectRoot(ctx)), configFileName)
	if sameFilePath(string(configPath), viper.ConfigFileUsed()) {
		return
	}

	exists, err := fsAdapter.Exists(ctx, configPath)
	if err != nil || !exists {
		return
	}

	viper.SetConfigFile(string(configPath))

	if err := viper.MergeInConfig(); err != nil {
		slog.Warn("Failed to read project config", "path", configPath, "error", err)
		return
	}

	slog.Debug("Loaded project config", "path", configPath)
}

func sameFilePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	return errA == nil && errB == nil && absA == absB
}

// resolveScreensetsDir joins the configured screensets directory onto the project root.
func resolveScreensetsDir(ctx context.Context) m.Path {
	dir := viper.GetString(screensetsDirKey)
	if filepath.IsAbs(dir) {
		return m.Path(dir)
	}

	return fsAdapter.JoinPath(ctx, string(resolveProjectRoot(ctx)), dir)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

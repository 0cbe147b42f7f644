package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version of hai3, the commit it was built from and the Go version.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("version: unknown")
				return
			}

			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines formats build info as "label\tvalue" lines.
func versionLines(info *debug.BuildInfo) []string {
	version := info.Main.Version
	if version == "" {
		version = "unknown"
	}

	lines := []string{"hai3 version\t" + version}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if revision != "" {
		if modified == "true" {
			revision += " (dirty)"
		}

		lines = append(lines, "commit\t\t"+revision)
	}

	return append(lines, "go version\t"+info.GoVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

func newScreensetIDsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ids <source> [target]",
		Short: "Show the ids a screenset declares",
		Long: `Show the constants declared in a screenset's ids file.

With a target id, also preview how each constant would be renamed by
"hai3 screenset copy <source> <target>".`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loadProjectConfig(ctx)

			inspectArgs := domain.InspectArgs{
				Source:        m.ScreensetID(args[0]),
				ScreensetsDir: resolveScreensetsDir(ctx),
				IDsFile:       viper.GetString(idsFileKey),
			}
			if len(args) == 2 {
				inspectArgs.Target = m.ScreensetID(args[1])
			}

			return workflow.Inspect(ctx, inspectArgs)
		},
	}
}

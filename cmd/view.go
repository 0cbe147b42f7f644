package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved copy reports",
		Long:  "View the reports written by earlier screenset copies from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

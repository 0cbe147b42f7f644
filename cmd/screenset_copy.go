package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/beyond-event-horizon/HAI3-sub001/internal/domain"
	m "github.com/beyond-event-horizon/HAI3-sub001/internal/model"
)

const screensetCopyLongDescription = `Copy a screenset under a new id.

The source screenset's ids file is read, every declared constant is renamed
for the target, and each file is copied with all references rewritten:
constant names, declared values, import paths, PascalCase and camelCase
identifiers and translation keys. File and directory names embedding the
source id are renamed as well.

Examples:
  hai3 screenset copy chat chatCopy
  hai3 screenset copy demo demoV2 --category mockups --dry-run`

var copyCategoryFlag string
var copyDryRunFlag bool
var copyParallelFlag int
var copyNoVerifyFlag bool

func newScreensetCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <source> <target>",
		Short: "Copy a screenset under a new id",
		Long:  screensetCopyLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			loadProjectConfig(ctx)

			return workflow.Copy(ctx, domain.CopyArgs{
				CopyOptions: domain.CopyOptions{
					Source:         m.ScreensetID(args[0]),
					Target:         m.ScreensetID(args[1]),
					Category:       m.Category(viper.GetString(copyCategoryKey)),
					ScreensetsDir:  resolveScreensetsDir(ctx),
					IDsFile:        viper.GetString(idsFileKey),
					TextExtensions: viper.GetStringSlice(copyTextExtsKey),
					Parallel:       viper.GetInt(copyParallelKey),
					DryRun:         copyDryRunFlag,
					Verify:         viper.GetBool(copyVerifyKey) && !copyNoVerifyFlag,
					Hooks:          viper.GetStringSlice(hooksPostCopyKey),
				},
				Reports:  m.Path(viper.GetString(outputFlagName)),
				NoReport: viper.GetBool(noReportFlagName),
			})
		},
	}

	configureScreensetCopyFlags(cmd)

	return cmd
}

func configureScreensetCopyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&copyCategoryFlag, categoryFlagName, viper.GetString(copyCategoryKey), "register the copy under this category (drafts, mockups, production)")
	bindFlagToConfig(cmd.Flags().Lookup(categoryFlagName), copyCategoryKey)

	cmd.Flags().IntVarP(&copyParallelFlag, parallelFlagName, "p", viper.GetInt(copyParallelKey), "number of files processed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), copyParallelKey)

	cmd.Flags().BoolVar(&copyDryRunFlag, dryRunFlagName, false, "show what would change without writing anything")
	cmd.Flags().BoolVar(&copyNoVerifyFlag, noVerifyFlagName, false, "skip the syntax check of copied files")
}

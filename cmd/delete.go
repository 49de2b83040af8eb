package cmd

import (
	"context"
	"os"

	"wikidot-applications-deleter/internal/collector"
	"wikidot-applications-deleter/internal/config"
	"wikidot-applications-deleter/internal/deleter"
	"wikidot-applications-deleter/internal/inbox"
	"wikidot-applications-deleter/internal/notifier"
	"wikidot-applications-deleter/internal/report"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete membership applications from your inbox",
}

var deleteRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Delete recent applications",
	Long:  `Deletes applications on the first page, then the second, and so on, until a page with no applications is found.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteWithMode(cmd, collector.ModeRecent, false)
	},
}

var deleteAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete all applications in your inbox",
	Long:  `Scans every page of the inbox and deletes every application found. May take a while if you have a lot.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteWithMode(cmd, collector.ModeAll, false)
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List the applications that would be deleted, without deleting anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := collector.ModeRecent
		if all, _ := cmd.Flags().GetBool("all"); all {
			mode = collector.ModeAll
		}
		return deleteWithMode(cmd, mode, true)
	},
}

func deleteWithMode(cmd *cobra.Command, mode collector.Mode, dryRun bool) error {
	if flagDry, _ := cmd.Flags().GetBool("dry-run"); flagDry {
		dryRun = true
	}
	opts := newRunOptions(cmd, mode, dryRun)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return withInbox(ctx, func(ctx context.Context, s inbox.Surface) error {
		return runDelete(ctx, s, opts)
	})
}

func newRunOptions(cmd *cobra.Command, mode collector.Mode, dryRun bool) runOptions {
	assumeYes, _ := cmd.Flags().GetBool("yes")

	batchSize := config.AppConfig.BatchSize
	if batchSize <= 0 || batchSize > deleter.DefaultBatchSize {
		batchSize = deleter.DefaultBatchSize
	}

	return runOptions{
		Mode:      mode,
		DryRun:    dryRun,
		BatchSize: batchSize,
		Reporter: &report.Reporter{
			Out:         cmd.OutOrStdout(),
			In:          os.Stdin,
			Interactive: !viper.GetBool("non_interactive"),
			AssumeYes:   assumeYes,
			Pacer:       deleter.Pacer{Delay: config.AppConfig.BatchDelay},
		},
		Notifier: notifier.New(config.AppConfig.EmailAlertTo),
	}
}

func init() {
	deleteCmd.AddCommand(deleteRecentCmd)
	deleteCmd.AddCommand(deleteAllCmd)

	deleteCmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation")
	deleteCmd.PersistentFlags().Bool("dry-run", false, "Show what would be deleted without deleting")

	scanCmd.Flags().Bool("all", false, "Scan every page instead of stopping at the first page without applications")
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wikidot-applications-deleter/internal/config"
	"wikidot-applications-deleter/internal/i18n"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "wikidot-applications-deleter",
	Short: "Delete membership applications from your Wikidot inbox",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		i18n.Init()         // Detectar idioma PRIMERO
		config.InitConfig() // Luego la config
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive UI (progress bars)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: search standard locations)")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("non_interactive", rootCmd.PersistentFlags().Lookup("non-interactive"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func Execute() {
	// Ctrl-C cancela esperas y pausas; los lotes ya enviados quedan borrados
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

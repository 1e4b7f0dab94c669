package main

import (
	"github.com/XavierBriggs/Herald/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	sportFlag string

	cfg    *config.Config
	logger *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:           "herald",
	Short:         "Links provider TV listings to fixtures",
	Long:          `herald fetches broadcast announcements from a sports data provider, fuzzy-matches them to known fixtures and stores the linked channels.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = cfg.Log.NewLogger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default ./config/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&sportFlag, "sport", "s", "", "limit to one enabled sport key")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(matchCmd)
}

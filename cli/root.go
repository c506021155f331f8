package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vatsimnerd/rwyselect/updater"
)

type rootFlags struct {
	Config  string
	Verbose bool
}

var rf rootFlags

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "rwyselect",
		Short: "Select active runways from current METARs and update EuroScope runway files",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if rf.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&rf.Config, "config", "", "path to YAML config (built-in defaults when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&rf.Verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(updateCmd())
	rootCmd.AddCommand(checkCmd())

	return rootCmd.Execute()
}

func loadConfig() (*updater.Config, error) {
	if rf.Config == "" {
		return updater.DefaultConfig(), nil
	}
	return updater.LoadConfig(rf.Config)
}

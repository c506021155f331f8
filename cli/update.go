package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vatsimnerd/rwyselect/policy"
	"github.com/vatsimnerd/rwyselect/updater"
)

func updateCmd() *cobra.Command {
	var (
		dir    string
		hubCfg int
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Run one selection pass and rewrite the runway files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Store.Dir = dir
			}

			var selector policy.ConfigSelector = policy.NewConsoleSelector(os.Stdin, os.Stdout)
			if hubCfg != 0 {
				selector, err = policy.NewFixedSelector(hubCfg)
				if err != nil {
					return err
				}
			}

			return updater.New(cfg, selector).Run()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory containing the runway files (overrides config)")
	cmd.Flags().IntVar(&hubCfg, "engm-config", 0, "preselect hub configuration 1-6 instead of prompting")

	return cmd
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var noOverlays bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the build theme configuration",
		Long: `Assembles the build-theme configuration (including overlays, unless
disabled) and validates it: hex color values, dark-mode strategy,
content globs, and derived safelist coverage for every palette label.
Exits non-zero if any finding is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadThemeConfig(noOverlays)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return errors.New("configuration check failed")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "configuration OK: %d labels, %d scan globs, %d safelist patterns\n",
				len(cfg.Theme.Extend.Colors), len(cfg.Content), len(cfg.Safelist))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noOverlays, "no-overlays", false, "ignore user and project overlay files")
	return cmd
}

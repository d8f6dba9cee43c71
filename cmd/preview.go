package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sigmaSd/deno-doc/internal/tui"
)

func newPreviewCmd() *cobra.Command {
	var dark bool
	var noOverlays bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the palette in the terminal",
		Long: `Opens an interactive palette browser showing every label of the build
theme with its swatch and hex value. 'y' copies the focused hex value
to the clipboard. Pass --dark to render against a dark background, the
terminal analogue of the class dark-mode strategy.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadThemeConfig(noOverlays)
			if err != nil {
				return err
			}
			return tui.Run(cfg, dark)
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "assume a dark terminal background")
	cmd.Flags().BoolVar(&noOverlays, "no-overlays", false, "ignore user and project overlay files")
	return cmd
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigmaSd/deno-doc/internal/config"
	"github.com/sigmaSd/deno-doc/internal/tailwind"
	"github.com/sigmaSd/deno-doc/pkg/logging"
)

func newGenerateCmd() *cobra.Command {
	var outPath string
	var noOverlays bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the build theme to a tailwind.config.js file",
		Long: `Assembles the build-theme configuration (canonical palette plus any
user/project overlays), validates it, and renders it as the
tailwind.config.js consumed by the documentation site's CSS build.
Use '--out -' to write to stdout instead of a file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadThemeConfig(noOverlays)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("refusing to render an invalid configuration:\n%w", err)
			}

			if outPath == "-" {
				return tailwind.Render(cmd.OutOrStdout(), cfg)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			if err := tailwind.Render(f, cfg); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", outPath, err)
			}

			logging.Info("generate", "wrote %s (%d colors, %d safelist patterns)",
				outPath, len(cfg.Theme.Extend.Colors), len(cfg.Safelist))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "tailwind.config.js", "output path ('-' for stdout)")
	cmd.Flags().BoolVar(&noOverlays, "no-overlays", false, "ignore user and project overlay files")
	return cmd
}

func loadThemeConfig(noOverlays bool) (tailwind.Config, error) {
	if noOverlays {
		return tailwind.New(), nil
	}
	return config.Load()
}

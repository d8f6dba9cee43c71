package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sigmaSd/deno-doc/pkg/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ddoc-theme",
	Short: "Manage the documentation site's build theme",
	Long: `ddoc-theme owns the CSS build theme of the documentation site:
the semantic color palette, the content-scan globs, and the safelist
patterns derived from the palette. It renders the configuration for the
CSS build, validates it, and previews the palette in the terminal.`,
	// SilenceUsage is set to true to prevent printing usage message on
	// errors handled by us (e.g. invalid overlays, failed validation)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	logging.Init(logging.LevelInfo, os.Stderr)

	rootCmd.SetVersionTemplate(`{{printf "ddoc-theme version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

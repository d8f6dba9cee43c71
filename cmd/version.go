package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ddoc-theme",
		Long:  `All software has versions. This is ddoc-theme's.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ddoc-theme version %s\n", rootCmd.Version)
		},
	}
}

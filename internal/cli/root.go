// Package cli provides the Cobra command tree for the genc CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cppforge/genc/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "genc",
	Short: "genc: C++ project scaffolder",
	Long: `genc scaffolds a new C++ project: a hello-world library with a CLI
entry point, a CMake build tree, optional GoogleTest and Google Benchmark
scaffolds, and a git repository with the frameworks registered as submodules.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("genc %s\n", version.GetVersion()))
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the clickup-docs-mcp application
var rootCmd = &cobra.Command{
	Use:   "clickup-docs-mcp",
	Short: "MCP server for ClickUp Docs",
	Long: `clickup-docs-mcp exposes the ClickUp Docs API as Model Context Protocol
tools so AI assistants can list, search, read, create, update, delete and
share documents and pages.

Authentication uses a ClickUp personal API token read from the
CLICKUP_API_TOKEN environment variable at startup.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "clickup-docs-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

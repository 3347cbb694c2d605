package servers

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCommand creates the servers command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "servers",
		Short: "Inspect the configured servers",
		Long: `Commands for inspecting the set of servers that lookups run against.

The server list is read from the configuration file and is fixed for the
lifetime of a command; edit the config file to change it.`,
		Example: `  # Show the configured servers
  mc-locate servers list

  # Query the status of every configured server
  mc-locate servers check`,
		Aliases: []string{"srv"},
	}

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}

func isJSONMode() bool {
	return viper.GetBool("output.json")
}

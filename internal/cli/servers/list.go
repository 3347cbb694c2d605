package servers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/steviee/mc-locate/internal/config"
)

// ListFlags holds all flags for the list command
type ListFlags struct {
	NoHeader bool
}

// ListOutput holds the output envelope for JSON mode
type ListOutput struct {
	Status  string                 `json:"status"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Message string                 `json:"message,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// NewListCommand creates the servers list subcommand
func NewListCommand() *cobra.Command {
	flags := &ListFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured servers",
		Long: `List every server that lookups run against, in configuration order.

The order shown here is the order server matches appear in locate output.`,
		Example: `  # List configured servers
  mc-locate servers list

  # JSON output for scripting
  mc-locate servers list --json

  # Omit table header
  mc-locate servers list --no-header`,
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().BoolVar(&flags.NoHeader, "no-header", false, "Omit table header")

	return cmd
}

// runList executes the list command
func runList(stdout io.Writer, flags *ListFlags) error {
	jsonMode := isJSONMode()

	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return outputListError(stdout, jsonMode, fmt.Errorf("failed to load configuration: %w", err))
	}

	if len(cfg.Servers) == 0 {
		if jsonMode {
			output := ListOutput{
				Status: "success",
				Data: map[string]interface{}{
					"servers": []config.Server{},
					"count":   0,
				},
				Message: "No servers configured",
			}
			return json.NewEncoder(stdout).Encode(output)
		}

		_, _ = fmt.Fprintln(stdout, "No servers configured. Run 'mc-locate config init' and edit the config file.")
		return nil
	}

	if jsonMode {
		output := ListOutput{
			Status: "success",
			Data: map[string]interface{}{
				"servers": cfg.Servers,
				"count":   len(cfg.Servers),
			},
		}
		return json.NewEncoder(stdout).Encode(output)
	}

	return outputListTable(stdout, cfg.Servers, flags.NoHeader)
}

// outputListTable prints the server list as a table.
func outputListTable(stdout io.Writer, srvs []config.Server, noHeader bool) error {
	nameWidth := len("NAME")
	for _, srv := range srvs {
		if len(srv.Name) > nameWidth {
			nameWidth = len(srv.Name)
		}
	}

	if !noHeader {
		_, _ = fmt.Fprintf(stdout, "%-*s  %s\n", nameWidth, "NAME", "ADDRESS")
	}
	for _, srv := range srvs {
		_, _ = fmt.Fprintf(stdout, "%-*s  %s\n", nameWidth, srv.Name, srv.Address)
	}

	return nil
}

// outputListError reports an error in the appropriate format.
func outputListError(stdout io.Writer, jsonMode bool, err error) error {
	if jsonMode {
		output := ListOutput{
			Status: "error",
			Error:  err.Error(),
		}
		if encErr := json.NewEncoder(stdout).Encode(output); encErr != nil {
			return encErr
		}
	}
	return err
}

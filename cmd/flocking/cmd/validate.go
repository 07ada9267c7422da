package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	var schema bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and print the effective values",
		Long: `Check the configuration and print the effective values as JSON.

The configuration is valid when this command exits with status 0; loading
already ran the schema and range checks. With --schema the JSON schema of
the simulation section is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if schema {
				_, err := fmt.Fprintln(out, simulation.SchemaJSON())
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(a.cfg); err != nil {
				return fmt.Errorf("failed to print configuration: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&schema, "schema", false, "print the simulation config JSON schema")
	return cmd
}

package main

import (
	"fmt"
	"phishguard/internal/config"
	"phishguard/pkg/features"

	"github.com/spf13/cobra"
)

// schemaCommand prints the feature schema, one "index name label" row per
// feature, and checks the configured linear artifact against it.
func schemaCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Prints the feature schema the model consumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := features.Canonical()
			for i, name := range schema.Names() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%2d %-22s %s\n", i, name, features.Label(name)); err != nil {
					return err
				}
			}

			check, _ := cmd.Flags().GetBool("check")
			if !check {
				return nil
			}

			bundle, err := loadBundle(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := schema.Check(bundle.Features); err != nil {
				return fmt.Errorf("model %q does not match the schema: %w", bundle.Name, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "model %q matches the schema\n", bundle.Name)

			return err
		},
	}

	cmd.Flags().Bool("check", false, "Also check the configured model artifacts")

	return cmd
}

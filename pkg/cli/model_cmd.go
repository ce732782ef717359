package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"driftlens/domain"
)

func newModelCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage registered models",
	}
	cmd.AddCommand(
		newModelListCmd(flags),
		newModelGetCmd(flags),
		newModelCreateCmd(flags),
		newModelDeleteCmd(flags),
		newModelUpdateFeaturesCmd(flags),
	)
	return cmd
}

func newModelListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newPlatformClient(flags)
			models, err := c.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			if flags.output == "json" {
				defs := make([]domain.ModelDefinition, 0, len(models))
				for _, m := range models {
					defs = append(defs, m.Definition())
				}
				return PrintJSON(cmd.OutOrStdout(), defs)
			}
			rows := make([][]string, 0, len(models))
			for _, m := range models {
				rows = append(rows, []string{
					m.UUID().String(), m.Name(), string(m.ModelType()), string(m.Granularity()),
				})
			}
			return printTable(cmd.OutOrStdout(), []string{"UUID", "NAME", "TYPE", "GRANULARITY"}, rows)
		},
	}
}

func newModelGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get UUID",
		Short: "Show one model definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid model UUID %q: %w", args[0], err)
			}
			c := newPlatformClient(flags)
			m, err := c.GetModel(cmd.Context(), id)
			if err != nil {
				return err
			}
			return PrintJSON(cmd.OutOrStdout(), m.Definition())
		},
	}
}

func newModelCreateCmd(flags *rootFlags) *cobra.Command {
	var fromFile string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new model from a JSON definition file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(fromFile)
			if err != nil {
				return fmt.Errorf("read definition: %w", err)
			}
			var req domain.CreateModel
			if err := json.Unmarshal(data, &req); err != nil {
				return fmt.Errorf("parse definition: %w", err)
			}
			c := newPlatformClient(flags)
			m, err := c.CreateModel(cmd.Context(), req)
			if err != nil {
				return err
			}
			return PrintJSON(cmd.OutOrStdout(), m.Definition())
		},
	}
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "path to the model definition JSON (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newModelDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete UUID",
		Short: "Delete a model and its server-side resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid model UUID %q: %w", args[0], err)
			}
			c := newPlatformClient(flags)
			m, err := c.GetModel(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := m.Delete(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Model %s deleted\n", id)
			return nil
		},
	}
}

func newModelUpdateFeaturesCmd(flags *rootFlags) *cobra.Command {
	var fromFile string
	cmd := &cobra.Command{
		Use:   "update-features UUID",
		Short: "Replace a model's feature list from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid model UUID %q: %w", args[0], err)
			}
			data, err := os.ReadFile(fromFile)
			if err != nil {
				return fmt.Errorf("read features: %w", err)
			}
			var features []domain.ColumnDefinition
			if err := json.Unmarshal(data, &features); err != nil {
				return fmt.Errorf("parse features: %w", err)
			}
			c := newPlatformClient(flags)
			m, err := c.GetModel(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := m.UpdateFeatures(cmd.Context(), features); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Model %s features updated (%d columns)\n", id, len(features))
			return nil
		},
	}
	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "path to the feature list JSON (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

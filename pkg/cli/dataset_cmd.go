package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"driftlens/client"
	"driftlens/domain"
)

// datasetFlags holds the flags shared by the dataset subcommands.
type datasetFlags struct {
	bucket        string
	separator     string
	objectName    string
	correlationID string
}

func (f *datasetFlags) register(cmd *cobra.Command, withBucket bool) {
	if withBucket {
		cmd.Flags().StringVar(&f.bucket, "bucket", "", "object storage bucket (required)")
		_ = cmd.MarkFlagRequired("bucket")
		cmd.Flags().StringVar(&f.objectName, "object-name", "", "override the derived object key")
	}
	cmd.Flags().StringVar(&f.separator, "separator", client.DefaultSeparator, "CSV field separator")
}

func (f *datasetFlags) options() *client.DatasetOptions {
	return &client.DatasetOptions{
		Separator:   f.separator,
		ObjectName:  f.objectName,
		Credentials: credentialsFromEnv(),
	}
}

// credentialsFromEnv picks up per-call storage credentials; nil falls back
// to the ambient AWS configuration.
func credentialsFromEnv() *domain.StorageCredentials {
	key := os.Getenv("DRIFTLENS_S3_ACCESS_KEY_ID")
	secret := os.Getenv("DRIFTLENS_S3_SECRET_ACCESS_KEY")
	if key == "" && secret == "" {
		return nil
	}
	return &domain.StorageCredentials{
		AccessKeyID:     key,
		SecretAccessKey: secret,
		Region:          os.Getenv("DRIFTLENS_S3_REGION"),
		Endpoint:        os.Getenv("DRIFTLENS_S3_ENDPOINT"),
	}
}

func newDatasetCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Bind reference and current datasets to a model",
	}
	cmd.AddCommand(
		newDatasetLoadReferenceCmd(flags),
		newDatasetBindReferenceCmd(flags),
		newDatasetLoadCurrentCmd(flags),
		newDatasetBindCurrentCmd(flags),
		newDatasetListCmd(flags),
	)
	return cmd
}

func getModel(cmd *cobra.Command, flags *rootFlags, rawID string) (*client.Model, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid model UUID %q: %w", rawID, err)
	}
	c := newPlatformClient(flags)
	return c.GetModel(cmd.Context(), id)
}

func newDatasetLoadReferenceCmd(flags *rootFlags) *cobra.Command {
	df := &datasetFlags{}
	cmd := &cobra.Command{
		Use:   "load-reference MODEL_UUID FILE",
		Short: "Upload a local CSV file and bind it as the reference dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := getModel(cmd, flags, args[0])
			if err != nil {
				return err
			}
			ds, err := m.LoadReferenceDataset(cmd.Context(), args[1], df.bucket, df.options())
			if err != nil {
				return err
			}
			return printDatasetAck(cmd, ds.UUID().String(), ds.Path(), string(ds.Status()))
		},
	}
	df.register(cmd, true)
	return cmd
}

func newDatasetBindReferenceCmd(flags *rootFlags) *cobra.Command {
	df := &datasetFlags{}
	cmd := &cobra.Command{
		Use:   "bind-reference MODEL_UUID S3_URL",
		Short: "Bind an already-uploaded file as the reference dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := getModel(cmd, flags, args[0])
			if err != nil {
				return err
			}
			ds, err := m.BindReferenceDataset(cmd.Context(), args[1], df.options())
			if err != nil {
				return err
			}
			return printDatasetAck(cmd, ds.UUID().String(), ds.Path(), string(ds.Status()))
		},
	}
	df.register(cmd, false)
	return cmd
}

func newDatasetLoadCurrentCmd(flags *rootFlags) *cobra.Command {
	df := &datasetFlags{}
	cmd := &cobra.Command{
		Use:   "load-current MODEL_UUID FILE",
		Short: "Upload a local CSV file and bind it as a current dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := getModel(cmd, flags, args[0])
			if err != nil {
				return err
			}
			ds, err := m.LoadCurrentDataset(cmd.Context(), args[1], df.bucket, df.correlationID, df.options())
			if err != nil {
				return err
			}
			return printDatasetAck(cmd, ds.UUID().String(), ds.Path(), string(ds.Status()))
		},
	}
	df.register(cmd, true)
	cmd.Flags().StringVar(&df.correlationID, "correlation-id-column", "", "correlation-id column name")
	return cmd
}

func newDatasetBindCurrentCmd(flags *rootFlags) *cobra.Command {
	df := &datasetFlags{}
	cmd := &cobra.Command{
		Use:   "bind-current MODEL_UUID S3_URL",
		Short: "Bind an already-uploaded file as a current dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := getModel(cmd, flags, args[0])
			if err != nil {
				return err
			}
			ds, err := m.BindCurrentDataset(cmd.Context(), args[1], df.correlationID, df.options())
			if err != nil {
				return err
			}
			return printDatasetAck(cmd, ds.UUID().String(), ds.Path(), string(ds.Status()))
		},
	}
	df.register(cmd, false)
	cmd.Flags().StringVar(&df.correlationID, "correlation-id-column", "", "correlation-id column name (required)")
	_ = cmd.MarkFlagRequired("correlation-id-column")
	return cmd
}

func newDatasetListCmd(flags *rootFlags) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "list MODEL_UUID",
		Short: "List datasets bound to a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := getModel(cmd, flags, args[0])
			if err != nil {
				return err
			}
			rows := [][]string{}
			switch domain.DatasetKind(kind) {
			case domain.DatasetReference:
				datasets, err := m.GetReferenceDatasets(cmd.Context())
				if err != nil {
					return err
				}
				for _, ds := range datasets {
					rows = append(rows, []string{ds.UUID().String(), ds.Path(), ds.Date(), string(ds.Status())})
				}
			case domain.DatasetCurrent:
				datasets, err := m.GetCurrentDatasets(cmd.Context())
				if err != nil {
					return err
				}
				for _, ds := range datasets {
					rows = append(rows, []string{ds.UUID().String(), ds.Path(), ds.Date(), string(ds.Status())})
				}
			default:
				return fmt.Errorf("invalid --kind %q: must be reference or current", kind)
			}
			return printTable(cmd.OutOrStdout(), []string{"UUID", "PATH", "DATE", "STATUS"}, rows)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "reference", "dataset kind: reference or current")
	return cmd
}

func printDatasetAck(cmd *cobra.Command, id, path, status string) error {
	return PrintJSON(cmd.OutOrStdout(), map[string]string{
		"uuid":   id,
		"path":   path,
		"status": status,
	})
}

package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"driftlens/client"
	"driftlens/domain"
)

// metricsFlags selects which bound dataset a metrics command reads from.
type metricsFlags struct {
	kind    string
	dataset string
}

func (f *metricsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "kind", "reference", "dataset kind: reference or current")
	cmd.Flags().StringVar(&f.dataset, "dataset", "", "current dataset UUID (required with --kind current)")
}

func newMetricsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Read metrics computed for a bound dataset",
		Long: "Read metrics computed for a bound dataset.\n\n" +
			"Metrics become available once the server-side import job reports\n" +
			"SUCCEEDED; re-run the command to poll a job that is still IMPORTING.",
	}
	cmd.AddCommand(
		newMetricCmd(flags, "statistics", "Show dataset statistics", fetchStatistics),
		newMetricCmd(flags, "data-quality", "Show data-quality metrics", fetchDataQuality),
		newMetricCmd(flags, "model-quality", "Show model-quality metrics", fetchModelQuality),
		newDriftCmd(flags),
	)
	return cmd
}

// metricFetcher resolves one metric kind against either dataset variant.
type metricFetcher func(ctx context.Context, ref *client.ReferenceDataset, cur *client.CurrentDataset) (interface{}, domain.JobStatus, error)

func fetchStatistics(ctx context.Context, ref *client.ReferenceDataset, cur *client.CurrentDataset) (interface{}, domain.JobStatus, error) {
	if ref != nil {
		v, err := ref.Statistics(ctx)
		return v, ref.Status(), err
	}
	v, err := cur.Statistics(ctx)
	return v, cur.Status(), err
}

func fetchDataQuality(ctx context.Context, ref *client.ReferenceDataset, cur *client.CurrentDataset) (interface{}, domain.JobStatus, error) {
	if ref != nil {
		v, err := ref.DataQuality(ctx)
		return v, ref.Status(), err
	}
	v, err := cur.DataQuality(ctx)
	return v, cur.Status(), err
}

func fetchModelQuality(ctx context.Context, ref *client.ReferenceDataset, cur *client.CurrentDataset) (interface{}, domain.JobStatus, error) {
	if ref != nil {
		v, err := ref.ModelQuality(ctx)
		return v, ref.Status(), err
	}
	v, err := cur.ModelQuality(ctx)
	return v, cur.Status(), err
}

func newMetricCmd(flags *rootFlags, use, short string, fetch metricFetcher) *cobra.Command {
	mf := &metricsFlags{}
	cmd := &cobra.Command{
		Use:   use + " MODEL_UUID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, cur, err := resolveDataset(cmd, flags, mf, args[0])
			if err != nil {
				return err
			}
			value, status, err := fetch(cmd.Context(), ref, cur)
			if err != nil {
				return err
			}
			return printMetric(cmd, status, value)
		},
	}
	mf.register(cmd)
	return cmd
}

func newDriftCmd(flags *rootFlags) *cobra.Command {
	mf := &metricsFlags{kind: "current"}
	cmd := &cobra.Command{
		Use:   "drift MODEL_UUID",
		Short: "Show drift metrics of a current dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cur, err := resolveDataset(cmd, flags, mf, args[0])
			if err != nil {
				return err
			}
			if cur == nil {
				return fmt.Errorf("drift metrics exist only on current datasets")
			}
			value, err := cur.Drift(cmd.Context())
			if err != nil {
				return err
			}
			return printMetric(cmd, cur.Status(), value)
		},
	}
	cmd.Flags().StringVar(&mf.dataset, "dataset", "", "current dataset UUID (required)")
	_ = cmd.MarkFlagRequired("dataset")
	return cmd
}

// resolveDataset finds the dataset handle the metric command targets:
// the model's latest reference dataset, or the named current dataset.
func resolveDataset(cmd *cobra.Command, flags *rootFlags, mf *metricsFlags, rawModelID string) (*client.ReferenceDataset, *client.CurrentDataset, error) {
	m, err := getModel(cmd, flags, rawModelID)
	if err != nil {
		return nil, nil, err
	}
	switch domain.DatasetKind(mf.kind) {
	case domain.DatasetReference:
		datasets, err := m.GetReferenceDatasets(cmd.Context())
		if err != nil {
			return nil, nil, err
		}
		if len(datasets) == 0 {
			return nil, nil, fmt.Errorf("model %s has no reference dataset", m.UUID())
		}
		return datasets[len(datasets)-1], nil, nil
	case domain.DatasetCurrent:
		if mf.dataset == "" {
			return nil, nil, fmt.Errorf("--dataset is required with --kind current")
		}
		dsID, err := uuid.Parse(mf.dataset)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid dataset UUID %q: %w", mf.dataset, err)
		}
		datasets, err := m.GetCurrentDatasets(cmd.Context())
		if err != nil {
			return nil, nil, err
		}
		for _, ds := range datasets {
			if ds.UUID() == dsID {
				return nil, ds, nil
			}
		}
		return nil, nil, fmt.Errorf("model %s has no current dataset %s", m.UUID(), dsID)
	default:
		return nil, nil, fmt.Errorf("invalid --kind %q: must be reference or current", mf.kind)
	}
}

func printMetric(cmd *cobra.Command, status domain.JobStatus, value interface{}) error {
	return PrintJSON(cmd.OutOrStdout(), map[string]interface{}{
		"jobStatus": status,
		"metric":    value,
	})
}

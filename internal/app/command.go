package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/waozixyz/volcanomap/dataset"
	"github.com/waozixyz/volcanomap/internal/config"
	"github.com/waozixyz/volcanomap/internal/export"
	"github.com/waozixyz/volcanomap/mapview"
)

// NewRootCommand builds the volcano-map command tree around the given backend.
func NewRootCommand(newBackend BackendFactory) *cobra.Command {
	var (
		imagePath   string
		themeFile   string
		metricsAddr string
	)

	root := &cobra.Command{
		Use:           "volcano-map",
		Short:         "Interactive world map of volcanoes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("image") {
				cfg.ImagePath = imagePath
			}
			if cmd.Flags().Changed("theme") {
				cfg.ThemeFile = themeFile
			}
			if cmd.Flags().Changed("metrics-addr") {
				cfg.MetricsAddr = metricsAddr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Start(ctx, cfg, newBackend)
		},
	}

	root.PersistentFlags().String("data", "", "volcano CSV file (overrides VOLCANO_DATA)")
	root.Flags().StringVar(&imagePath, "image", "", "background map image (overrides MAP_IMAGE)")
	root.Flags().StringVar(&themeFile, "theme", "", "YAML theme file (overrides THEME_FILE)")
	root.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve /healthz, /readyz and /metrics here (overrides METRICS_ADDR)")

	root.AddCommand(newExportCommand())
	return root
}

// loadConfig reads the environment and applies the persistent --data flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("data"); f != nil && f.Changed {
		cfg.DataPath = f.Value.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newExportCommand() *cobra.Command {
	var (
		typeFilter string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the volcano records as a GeoJSON FeatureCollection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			table, _, err := dataset.Load(cfg.DataPath)
			if err != nil {
				return err
			}

			filter := mapview.Filter{Type: typeFilter, Active: cmd.Flags().Changed("type")}
			fc := export.FeatureCollection(table.Records(), func(r dataset.Record) bool {
				return filter.Allows(r.Type)
			})

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}
			return export.WriteGeoJSON(w, fc)
		},
	}

	cmd.Flags().StringVar(&typeFilter, "type", "", "only export volcanoes of this type")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

// Execute runs the command tree with a background context.
func Execute(newBackend BackendFactory) error {
	return NewRootCommand(newBackend).ExecuteContext(context.Background())
}

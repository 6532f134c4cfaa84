package main

import (
	"github.com/spf13/cobra"

	"github.com/midbel/animcharts/dash"
	"github.com/midbel/animcharts/logging"
)

type renderOptions struct {
	configPath string
	output     string
}

func (a *App) newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the final state of a chart",
		Long: `Render the chart described by a configuration file as it is once every
animation has ended.

Examples:
  # Write the chart to the output given in the file
  draw render -c chart.yaml

  # Write the chart to stdout
  draw render -c chart.yaml -o -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file, - for stdout")

	return cmd
}

func (a *App) render(opts *renderOptions) error {
	cfg, d, err := load(opts.configPath)
	if err != nil {
		return err
	}
	data, err := dash.Load(cfg.Data)
	if err != nil {
		return err
	}
	d.Update(data)
	d.End()

	file := opts.output
	if file == "" {
		file = cfg.Output
	}
	w, err := a.output(file)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := d.Render(w); err != nil {
		return err
	}
	logging.Info().
		Add(logging.Kind(cfg.Kind)).
		Add(logging.Count(len(data))).
		Add(logging.Path(file)).
		Msg("chart rendered")
	return nil
}

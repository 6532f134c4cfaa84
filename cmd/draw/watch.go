package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/midbel/animcharts/dash"
	"github.com/midbel/animcharts/logging"
	"github.com/midbel/animcharts/timing"
)

type watchOptions struct {
	configPath string
	output     string
	delay      time.Duration
}

func (a *App) newWatchCmd() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate a chart each time its data changes",
		Long: `Render the chart, then watch its data file. Every change starts a new
animation from what is currently displayed; the output file is rewritten at
every frame.

Examples:
  draw watch -c chart.yaml -o live.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file")
	cmd.Flags().DurationVar(&opts.delay, "delay", 100*time.Millisecond, "Delay merging successive changes")

	return cmd
}

func (a *App) watch(ctx context.Context, opts *watchOptions) error {
	cfg, d, err := load(opts.configPath)
	if err != nil {
		return err
	}
	file := opts.output
	if file == "" {
		file = cfg.Output
	}
	write := func() error {
		w, err := os.Create(file)
		if err != nil {
			return err
		}
		defer w.Close()
		return d.Render(w)
	}
	reload := func() error {
		data, err := dash.Load(cfg.Data)
		if err != nil {
			return err
		}
		d.Update(data)
		if !d.Animating() {
			return write()
		}
		return d.Timeline.Run(ctx, d.FPS, timing.Hooks{
			OnTick: func(t float64) {
				d.Tick(t)
				if err := write(); err != nil {
					logging.Error().
						Add(logging.Path(file)).
						Add(logging.ErrorField(err)).
						Msg("frame not written")
				}
			},
			OnEnd: func() {
				d.End()
				if err := write(); err == nil {
					logging.Info().
						Add(logging.Kind(cfg.Kind)).
						Add(logging.Path(file)).
						Msg("chart updated")
				}
			},
		})
	}
	if err := reload(); err != nil {
		return err
	}
	return dash.Watch(ctx, cfg.Data.Path, opts.delay, reload)
}

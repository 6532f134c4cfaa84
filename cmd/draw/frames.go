package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/midbel/animcharts/dash"
	"github.com/midbel/animcharts/logging"
)

type framesOptions struct {
	configPath string
	from       string
	dir        string
	fps        int
}

func (a *App) newFramesCmd() *cobra.Command {
	opts := &framesOptions{}

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Export the frames of an animation",
		Long: `Export every frame of the animation of a chart as numbered SVG files.

Without --from, the animation starts from an empty chart. With --from, the
chart first shows the data of that file and the frames move to the data of
the configuration.

Examples:
  draw frames -c chart.yaml -d out/
  draw frames -c chart.yaml --from previous.csv -d out/ --fps 24`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.frames(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVar(&opts.from, "from", "", "Data file of the initial state")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Directory of the frames")
	cmd.Flags().IntVar(&opts.fps, "fps", 0, "Frames per second, from the configuration when 0")

	return cmd
}

func (a *App) frames(ctx context.Context, opts *framesOptions) error {
	cfg, d, err := load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.from != "" {
		from := cfg.Data
		from.Path = opts.from
		prev, err := dash.Load(from)
		if err != nil {
			return err
		}
		d.Update(prev)
		d.End()
	}
	data, err := dash.Load(cfg.Data)
	if err != nil {
		return err
	}
	d.Update(data)

	fps := opts.fps
	if fps <= 0 {
		fps = d.FPS
	}
	var list [][]byte
	for _, t := range d.Timeline.Frames(fps) {
		d.Tick(t)
		if t >= 1 {
			d.End()
		}
		var buf bytes.Buffer
		if err := d.Render(&buf); err != nil {
			return err
		}
		list = append(list, buf.Bytes())
	}
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return err
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.NumCPU())
	for i, frame := range list {
		file := filepath.Join(opts.dir, fmt.Sprintf("frame-%04d.svg", i))
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return os.WriteFile(file, frame, 0o644)
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	logging.Info().
		Add(logging.Kind(cfg.Kind)).
		Add(logging.Count(len(list))).
		Add(logging.Path(opts.dir)).
		Msg("frames exported")
	return nil
}

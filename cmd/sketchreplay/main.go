// Command sketchreplay feeds a recorded event script through the
// interaction engine and writes the resulting canvas as PNG.
//
// A script is a JSON array of session protocol messages, the same
// envelopes the websocket endpoint accepts:
//
//	[
//	  {"type": "tool.set", "payload": {"tool": "rectangle"}},
//	  {"type": "pointer.down", "payload": {"x": 10, "y": 10}},
//	  {"type": "pointer.move", "payload": {"x": 120, "y": 80}},
//	  {"type": "pointer.up", "payload": {"x": 120, "y": 80}}
//	]
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inamate/sketchpad/internal/document"
	"github.com/inamate/sketchpad/internal/engine"
	"github.com/inamate/sketchpad/internal/raster"
	"github.com/inamate/sketchpad/internal/session"
)

type options struct {
	out        string
	elements   string
	width      int
	height     int
	background string
	sample     bool
	verbose    bool
	keepGoing  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "sketchreplay [script.json]",
		Short: "Replay a canvas event script and render the result.",
		Long: `sketchreplay reads a JSON array of canvas protocol messages (from the
file argument, or stdin when it is omitted or "-"), applies them in order
to a fresh canvas and writes the final drawing as a PNG.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				in = f
			}
			return run(in, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", "sketch.png", "PNG output path")
	flags.StringVarP(&opts.elements, "elements", "e", "", "also write the final elements as JSON to this path")
	flags.IntVar(&opts.width, "width", 1280, "canvas width in pixels")
	flags.IntVar(&opts.height, "height", 800, "canvas height in pixels")
	flags.StringVar(&opts.background, "background", "#ffffff", "canvas background color")
	flags.BoolVar(&opts.sample, "sample", false, "start from the sample canvas instead of an empty one")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every state transition")
	flags.BoolVar(&opts.keepGoing, "keep-going", false, "skip rejected messages instead of stopping")
	return cmd
}

func run(in io.Reader, opts *options) error {
	var script []session.Message
	if err := json.NewDecoder(in).Decode(&script); err != nil {
		return fmt.Errorf("decode script: %w", err)
	}

	renderer, err := raster.New(raster.Options{
		Width:      opts.width,
		Height:     opts.height,
		Background: opts.background,
	})
	if err != nil {
		return err
	}

	elements, commands, err := replay(script, opts.sample, opts.keepGoing)
	if err != nil {
		return err
	}

	if err := renderer.SavePNG(opts.out, commands); err != nil {
		return err
	}
	slog.Info("wrote canvas", "path", opts.out, "elements", len(elements), "events", len(script))

	if opts.elements != "" {
		data, err := json.MarshalIndent(elements, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal elements: %w", err)
		}
		if err := os.WriteFile(opts.elements, data, 0o644); err != nil {
			return fmt.Errorf("write elements: %w", err)
		}
	}
	return nil
}

// replay applies script to a new session and returns its final canvas and
// draw commands.
func replay(script []session.Message, sample, keepGoing bool) ([]document.Element, []engine.DrawCommand, error) {
	var opts []engine.Option
	if sample {
		opts = append(opts, engine.WithDocument(document.NewSampleDocument()))
	}
	s := session.New("sess_replay", nil, opts...)

	for i := range script {
		if err := s.Handle(&script[i]); err != nil {
			if !keepGoing {
				return nil, nil, fmt.Errorf("event %d: %w", i, err)
			}
			slog.Warn("skipping event", "index", i, "type", script[i].Type, "error", err)
		}
	}
	return s.Elements(), s.Render(), nil
}

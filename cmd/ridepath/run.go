package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/ridepath/bfs"
	"github.com/katalvlaran/ridepath/config"
	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/crosscheck"
	"github.com/katalvlaran/ridepath/dijkstra"
	"github.com/katalvlaran/ridepath/logging"
	"github.com/katalvlaran/ridepath/roadmap"
	"github.com/katalvlaran/ridepath/server"
	"github.com/katalvlaran/ridepath/trace"
)

const usage = `usage: ridepath <query|serve|nodes|export> [flags]`

var errUsage = errors.New("unknown or missing command")

// env bundles what every command needs.
type env struct {
	cfg    *config.Config
	log    zerolog.Logger
	graph  *core.Graph
	style  trace.Style
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "query", "serve", "nodes", "export":
	default:
		return fmt.Errorf("%w: %q", errUsage, cmd)
	}

	fs := pflag.NewFlagSet("ridepath "+cmd, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.Flags(fs)
	format := fs.StringP("format", "f", string(roadmap.FormatYAML), "export format: yaml or json")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if cmd == "query" && fs.NArg() > 0 {
		cfg.Source = fs.Arg(0)
	}

	e := &env{cfg: cfg, stdout: stdout, style: pickStyle(cfg.Color, stdout)}
	e.log, err = logging.New(stderr, cfg.Log, !pickStyle(cfg.Color, stderr).Colored())
	if err != nil {
		return err
	}
	if e.graph, err = loadGraph(cfg.Graph); err != nil {
		return err
	}
	e.log.Debug().Str("graph", graphName(cfg.Graph)).
		Int("nodes", e.graph.Order()).Int("roads", e.graph.Size()).Msg("graph loaded")
	if lost := bfs.Unreachable(e.graph, core.RoleOrigin); len(lost) > 0 {
		e.log.Warn().Strs("nodes", lost).Msg("nodes unreachable from every rider")
	}

	switch cmd {
	case "query":
		return e.query()
	case "serve":
		return e.serve(ctx)
	case "nodes":
		return trace.RenderNodes(stdout, e.graph, e.style)
	default:
		f, err := roadmap.ParseFormat(*format)
		if err != nil {
			return err
		}

		return roadmap.Encode(stdout, e.graph, f)
	}
}

func (e *env) query() error {
	res, err := dijkstra.ComputeNearest(e.graph, e.cfg.Source, dijkstra.IsDriver)
	if err != nil {
		return err
	}
	e.log.Debug().
		Str("source", res.Source).
		Str("target", res.Target).
		Float64("distance", res.Distance).
		Int("iterations", len(res.Steps)).
		Msg("query done")

	if e.cfg.Verify {
		if err = crosscheck.VerifyNearest(e.graph, res, dijkstra.IsDriver); err != nil {
			return err
		}
		e.log.Info().Str("source", res.Source).Msg("result verified")
	}

	if e.cfg.JSON {
		segs, err := res.Segments(e.graph)
		if err != nil {
			return err
		}

		return server.EncodeResult(e.stdout, res, segs)
	}

	if err = trace.RenderRoute(e.stdout, e.graph, res, e.style); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(e.stdout); err != nil {
		return err
	}

	return trace.RenderSteps(e.stdout, res.Steps, e.style)
}

func (e *env) serve(ctx context.Context) error {
	s := server.New(e.graph, e.log, server.WithVerify(e.cfg.Verify))

	return s.ListenAndServe(ctx, fmt.Sprintf(":%d", e.cfg.Port))
}

func loadGraph(path string) (*core.Graph, error) {
	if path == "" {
		return roadmap.Mendalo(), nil
	}

	return roadmap.Load(path)
}

func graphName(path string) string {
	if path == "" {
		return "mendalo"
	}

	return path
}

func pickStyle(mode string, w io.Writer) trace.Style {
	switch mode {
	case "always":
		return trace.NewStyle(termenv.ANSI)
	case "never":
		return trace.Plain
	}

	return trace.Detect(w)
}

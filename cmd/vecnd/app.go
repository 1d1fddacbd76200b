package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/vecnd"
	"github.com/hupe1980/vecnd/distance"
)

type config struct {
	precision int
	verb      string
	logLevel  string
	logFormat string
}

type runner struct {
	cfg    config
	logger *vecnd.Logger
}

func newApp(out, errOut io.Writer) *cli.App {
	r := &runner{logger: vecnd.NoopLogger()}

	scalarFlags := []cli.Flag{
		&cli.Float64Flag{
			Name:    "scalar",
			Aliases: []string{"s"},
			Usage:   "Broadcast this scalar instead of a second vector",
		},
		&cli.BoolFlag{
			Name:  "left",
			Usage: "Put the scalar on the left of the operator",
		},
	}

	return &cli.App{
		Name:      "vecnd",
		Usage:     "Evaluate fixed-size vector operations",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "precision",
				Aliases:     []string{"p"},
				Value:       -1,
				Usage:       "Precision for printed numbers (negative for shortest)",
				EnvVars:     []string{"VECND_PRECISION"},
				Destination: &r.cfg.precision,
			},
			&cli.StringFlag{
				Name:        "verb",
				Value:       "v",
				Usage:       "fmt verb for printed numbers (v, g, f, e)",
				EnvVars:     []string{"VECND_VERB"},
				Destination: &r.cfg.verb,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "warn",
				Usage:       "Log level (debug, info, warn, error)",
				EnvVars:     []string{"VECND_LOG_LEVEL"},
				Destination: &r.cfg.logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Value:       "text",
				Usage:       "Log format (text, json)",
				EnvVars:     []string{"VECND_LOG_FORMAT"},
				Destination: &r.cfg.logFormat,
			},
		},
		Before: func(cCtx *cli.Context) error {
			logger, err := newLogger(errOut, r.cfg.logLevel, r.cfg.logFormat)
			if err != nil {
				return err
			}
			r.logger = logger
			return nil
		},
		Commands: []*cli.Command{
			{Name: "add", Usage: "Elementwise sum", Flags: scalarFlags, Action: r.action("add")},
			{Name: "sub", Usage: "Elementwise difference", Flags: scalarFlags, Action: r.action("sub")},
			{Name: "mul", Usage: "Elementwise product", Flags: scalarFlags, Action: r.action("mul")},
			{Name: "div", Usage: "Elementwise quotient", Flags: scalarFlags, Action: r.action("div")},
			{Name: "lt", Usage: "Elementwise less-than as 0/1", Flags: scalarFlags, Action: r.action("lt")},
			{Name: "gt", Usage: "Elementwise greater-than as 0/1", Flags: scalarFlags, Action: r.action("gt")},
			{Name: "dot", Usage: "Dot product of two vectors", Action: r.action("dot")},
			{Name: "angle", Usage: "Angle between two vectors in radians", Action: r.action("angle")},
			{
				Name:   "distance",
				Usage:  "Distance between two vectors",
				Action: r.action("distance"),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "metric",
						Aliases: []string{"m"},
						Value:   "l2",
						Usage:   "Metric (l2, cosine, dot, angle)",
					},
				},
			},
			{Name: "norm", Usage: "Euclidean length", Action: r.action("norm")},
			{Name: "normalize", Usage: "Scale to unit length", Action: r.action("normalize")},
			{Name: "sum", Usage: "Sum of elements", Action: r.action("sum")},
			{Name: "bounds", Usage: "Smallest and largest element", Action: r.action("bounds")},
			{
				Name:   "clip",
				Usage:  "Clamp every element into [lo, hi]",
				Action: r.action("clip"),
				Flags: []cli.Flag{
					&cli.Float64Flag{Name: "lo", Usage: "Lower bound", Required: true},
					&cli.Float64Flag{Name: "hi", Usage: "Upper bound", Required: true},
				},
			},
			{
				Name:   "constant",
				Usage:  "Vector with every element set to a value",
				Action: r.action("constant"),
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "dim", Aliases: []string{"d"}, Usage: "Dimension", Required: true},
					&cli.Float64Flag{Name: "value", Usage: "Element value"},
				},
			},
			{
				Name:   "onehot",
				Usage:  "Unit vector along one axis",
				Action: r.action("onehot"),
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "dim", Aliases: []string{"d"}, Usage: "Dimension", Required: true},
					&cli.IntFlag{Name: "index", Aliases: []string{"i"}, Usage: "Index of the one", Required: true},
				},
			},
		},
	}
}

func (r *runner) action(op string) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		req, err := r.request(op, cCtx)
		if err != nil {
			r.logger.LogEval(cCtx.Context, op, 0, err)
			return err
		}

		result, err := dispatch(req)
		r.logger.LogEval(cCtx.Context, op, req.dim, err)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cCtx.App.Writer, result)
		return err
	}
}

func (r *runner) request(op string, cCtx *cli.Context) (request, error) {
	verb, size := utf8.DecodeRuneInString(r.cfg.verb)
	if size == 0 || size != len(r.cfg.verb) {
		return request{}, fmt.Errorf("invalid verb %q", r.cfg.verb)
	}

	req := request{
		op:      op,
		vectors: cCtx.Args().Slice(),
		text: []vecnd.TextOption{
			vecnd.WithVerb(verb),
			vecnd.WithPrecision(r.cfg.precision),
		},
		hasScalar:  cCtx.IsSet("scalar"),
		scalar:     cCtx.Float64("scalar"),
		scalarLeft: cCtx.Bool("left"),
		lo:         cCtx.Float64("lo"),
		hi:         cCtx.Float64("hi"),
		value:      cCtx.Float64("value"),
		index:      cCtx.Int("index"),
	}

	if op == "distance" {
		m, err := distance.ParseMetric(cCtx.String("metric"))
		if err != nil {
			return request{}, err
		}
		req.metric = m
	}

	switch {
	case op == "constant" || op == "onehot":
		req.dim = cCtx.Int("dim")
	case len(req.vectors) == 0:
		return request{}, fmt.Errorf("%s: missing vector argument", op)
	default:
		req.dim = len(strings.Fields(req.vectors[0]))
	}

	return req, nil
}

func newLogger(w io.Writer, level, format string) (*vecnd.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	switch strings.ToLower(format) {
	case "text":
		return vecnd.NewTextLogger(w, lvl), nil
	case "json":
		return vecnd.NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

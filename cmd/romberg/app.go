package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/born-ml/romberg/internal/catalog"
	"github.com/born-ml/romberg/internal/quadrature"
)

const (
	methodAuto     = "auto"
	methodRomberg  = "romberg"
	methodTanhSinh = "tanh-sinh"
)

// integrationFlags returns fresh flag values for each app instance.
func integrationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "integrand", Aliases: []string{"f"}, Value: "gaussian", Usage: "catalog integrand (see 'list')"},
		&cli.Float64Flag{Name: "a", Usage: "lower bound, accepts -inf (default: catalog bound)"},
		&cli.Float64Flag{Name: "b", Usage: "upper bound, accepts inf (default: catalog bound)"},
		&cli.Float64SliceFlag{Name: "param", Aliases: []string{"p"}, Usage: "integrand parameter, repeatable"},
		&cli.StringFlag{Name: "method", Aliases: []string{"m"}, Usage: "auto, romberg or tanh-sinh"},
		&cli.Float64Flag{Name: "abs-tol", Usage: "absolute tolerance"},
		&cli.Float64Flag{Name: "rel-tol", Usage: "relative tolerance"},
		&cli.IntFlag{Name: "max-levels", Usage: "maximum number of step halvings"},
		&cli.BoolFlag{Name: "extrapolate", Value: true, Usage: "Richardson extrapolation (romberg only)"},
		&cli.BoolFlag{Name: "parallel", Usage: "evaluate the samples of a level concurrently"},
		&cli.BoolFlag{Name: "table", Usage: "print the extrapolation table"},
		&cli.PathFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every level"},
	}
}

func sensitivityFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.Float64Flag{Name: "da", Usage: "lower bound tangent"},
		&cli.Float64Flag{Name: "db", Usage: "upper bound tangent"},
		&cli.Float64SliceFlag{Name: "dparam", Usage: "parameter tangent, repeatable"},
	}, integrationFlags()...)
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "romberg",
		Usage:   "Romberg and tanh-sinh quadrature of catalog integrands",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:   "integrate",
				Usage:  "integrate a catalog function",
				Flags:  integrationFlags(),
				Action: integrateAction,
			},
			{
				Name:   "sensitivity",
				Usage:  "integrate and differentiate along bound and parameter tangents",
				Flags:  sensitivityFlags(),
				Action: sensitivityAction,
			},
			{
				Name:      "status",
				Usage:     "decode a status bitmask",
				ArgsUsage: "[code]",
				Action:    statusAction,
			},
			{
				Name:   "list",
				Usage:  "list catalog integrands",
				Action: listAction,
			},
		},
	}
}

// problem is a fully resolved integration request.
type problem struct {
	entry  catalog.Entry
	a, b   float64
	params []float64
	method string
	cfg    quadrature.Config
	log    *zap.Logger
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func optionalFloat(c *cli.Context, name string) *float64 {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Float64(name)
	return &v
}

func optionalBool(c *cli.Context, name string) *bool {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Bool(name)
	return &v
}

func resolveProblem(c *cli.Context) (*problem, error) {
	entry, err := catalog.Lookup(c.String("integrand"))
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if path := c.Path("config"); path != "" {
		if fc, err = loadConfigFile(path); err != nil {
			return nil, err
		}
	}

	fl := flagOverrides{
		AbsTol:      optionalFloat(c, "abs-tol"),
		RelTol:      optionalFloat(c, "rel-tol"),
		Extrapolate: optionalBool(c, "extrapolate"),
		Parallel:    optionalBool(c, "parallel"),
		FullOutput:  c.Bool("table"),
		Method:      c.String("method"),
	}
	if c.IsSet("max-levels") {
		v := c.Int("max-levels")
		fl.MaxLevels = &v
	}

	cfg, method, err := resolveConfig(fc, fl)
	if err != nil {
		return nil, err
	}
	if method == methodAuto {
		method = methodRomberg
		if entry.Singular {
			method = methodTanhSinh
		}
	}

	log, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	cfg.Logger = log.With(zap.String("integrand", entry.Name))

	p := &problem{
		entry:  entry,
		a:      entry.A,
		b:      entry.B,
		params: entry.Params,
		method: method,
		cfg:    cfg,
		log:    log,
	}
	if c.IsSet("a") {
		p.a = c.Float64("a")
	}
	if c.IsSet("b") {
		p.b = c.Float64("b")
	}
	if c.IsSet("param") {
		p.params = c.Float64Slice("param")
	}
	if len(p.params) != len(entry.Params) {
		return nil, fmt.Errorf("integrand %s takes %d parameters, got %d", entry.Name, len(entry.Params), len(p.params))
	}
	return p, nil
}

func (p *problem) integrate() (float64, quadrature.Info, error) {
	if p.method == methodTanhSinh {
		return quadrature.RombergTanhSinh(p.entry.Integrand, p.a, p.b, p.params, p.cfg)
	}
	return quadrature.Romberg(p.entry.Integrand, p.a, p.b, p.params, p.cfg)
}

func (p *problem) jvp(t quadrature.Tangents) (quadrature.JVPResult, error) {
	if p.method == methodTanhSinh {
		return quadrature.RombergTanhSinhJVP(p.entry.Integrand, p.a, p.b, p.params, t, p.cfg)
	}
	return quadrature.RombergJVP(p.entry.Integrand, p.a, p.b, p.params, t, p.cfg)
}

func (p *problem) warnIfInexact(what string, info quadrature.Info) {
	if info.Status.OK() {
		return
	}
	p.log.Warn("tolerance not met",
		zap.String("result", what),
		zap.Stringer("status", info.Status),
		zap.Float64("error", info.Err),
		zap.Int("levels", info.Levels),
	)
}

func integrateAction(c *cli.Context) error {
	p, err := resolveProblem(c)
	if err != nil {
		return err
	}
	defer p.log.Sync() //nolint:errcheck // Sync fails on terminals.

	value, info, err := p.integrate()
	if err != nil {
		return err
	}
	p.warnIfInexact("value", info)

	rows := problemRows(p)
	rows = append(rows, []string{"value", formatFloat(value)})
	rows = append(rows, infoRows("", info)...)
	if p.entry.HasExact() {
		exact := p.entry.Exact(p.a, p.b, p.params)
		rows = append(rows,
			[]string{"exact", formatFloat(exact)},
			[]string{"deviation", formatFloat(math.Abs(value - exact))},
		)
	}
	renderPairs(c.App.Writer, rows)

	if info.Table != nil {
		fmt.Fprintln(c.App.Writer)
		renderTable(c.App.Writer, info)
	}
	if !info.Status.OK() {
		fmt.Fprintln(c.App.Writer)
		fmt.Fprintln(c.App.Writer, info.Status.Message())
	}
	return nil
}

func sensitivityAction(c *cli.Context) error {
	p, err := resolveProblem(c)
	if err != nil {
		return err
	}
	defer p.log.Sync() //nolint:errcheck // Sync fails on terminals.

	t := quadrature.Tangents{
		A:      c.Float64("da"),
		B:      c.Float64("db"),
		Params: c.Float64Slice("dparam"),
	}
	res, err := p.jvp(t)
	if err != nil {
		return err
	}
	p.warnIfInexact("value", res.Info)
	p.warnIfInexact("tangent", res.TangentInfo)

	rows := problemRows(p)
	rows = append(rows, []string{"value", formatFloat(res.Value)})
	rows = append(rows, infoRows("", res.Info)...)
	rows = append(rows, []string{"tangent", formatFloat(res.Tangent)})
	rows = append(rows, infoRows("tangent ", res.TangentInfo)...)
	renderPairs(c.App.Writer, rows)
	return nil
}

func statusAction(c *cli.Context) error {
	if c.NArg() == 0 {
		renderStatusTable(c.App.Writer)
		return nil
	}
	code, err := strconv.ParseUint(c.Args().First(), 0, 8)
	if err != nil {
		return fmt.Errorf("status code %q: %w", c.Args().First(), err)
	}
	fmt.Fprintln(c.App.Writer, quadrature.Status(code).Message())
	return nil
}

func listAction(c *cli.Context) error {
	renderCatalog(c.App.Writer, catalog.All())
	return nil
}

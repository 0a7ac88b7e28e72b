// Command cheapruler measures distances, bearings and polylines with the
// cheap ruler approximation.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/tidwall/cheapruler"
	"github.com/tidwall/cheapruler/simd"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: .env: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    config
	ruler  *cheapruler.Ruler[float64]
	out    *printer
	logger *zap.Logger
}

// newLogger writes JSON at warn level to w, or human readable debug output
// with -v.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	level := zapcore.WarnLevel
	if verbose {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		level = zapcore.DebugLevel
	}
	sink := zapcore.AddSync(w)
	return zap.New(zapcore.NewCore(encoder, sink, level), zap.ErrorOutput(sink))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	cfg, args, err := parseConfig(args, getenv, stderr)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("missing command, see -h")
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()
	simd.SetLogger(logger)

	a := &app{
		cfg:    cfg,
		ruler:  cheapruler.New[float64](cfg.ellipsoid, cheapruler.WithArctangent(cfg.arctangent)),
		out:    newPrinter(stdout),
		logger: logger,
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "distance":
		return a.distance(args)
	case "bearing":
		return a.bearing(args)
	case "destination":
		return a.destination(args)
	case "interpolate":
		return a.interpolate(args)
	case "towards":
		return a.towards(args)
	case "along":
		return a.along(args)
	case "length":
		return a.length(ctx, args)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// parseFloats parses exactly n numeric arguments.
func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	vals := make([]float64, n)
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func pointPair(args []string, extra int) (a, b cheapruler.Point[float64], rest []float64, err error) {
	v, err := parseFloats(args, 4+extra)
	if err != nil {
		return a, b, nil, err
	}
	a = cheapruler.Point[float64]{Lon: v[0], Lat: v[1]}
	b = cheapruler.Point[float64]{Lon: v[2], Lat: v[3]}
	return a, b, v[4:], nil
}

func (a *app) distance(args []string) error {
	p, q, _, err := pointPair(args, 0)
	if err != nil {
		return fmt.Errorf("distance: %w", err)
	}
	a.out.measure("distance", a.ruler.Distance(p, q), "m")
	return nil
}

func (a *app) bearing(args []string) error {
	p, q, _, err := pointPair(args, 0)
	if err != nil {
		return fmt.Errorf("bearing: %w", err)
	}
	a.out.measure("bearing", a.ruler.Bearing(p, q), "deg")
	return nil
}

func (a *app) destination(args []string) error {
	v, err := parseFloats(args, 4)
	if err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	d := a.ruler.Destination(cheapruler.Point[float64]{Lon: v[0], Lat: v[1]}, v[2], v[3])
	a.out.point(d.Lon, d.Lat)
	return nil
}

func (a *app) interpolate(args []string) error {
	p, q, rest, err := pointPair(args, 1)
	if err != nil {
		return fmt.Errorf("interpolate: %w", err)
	}
	r := a.ruler.PointAtRatioBetween(p, q, rest[0])
	a.out.point(r.Lon, r.Lat)
	return nil
}

func (a *app) towards(args []string) error {
	p, q, rest, err := pointPair(args, 1)
	if err != nil {
		return fmt.Errorf("towards: %w", err)
	}
	r := a.ruler.PointAtDistanceBetween(p, q, rest[0])
	a.out.point(r.Lon, r.Lat)
	return nil
}

func (a *app) along(args []string) error {
	// -ends may appear anywhere; negative coordinates rule out flag.Parse
	var ends bool
	var coords []string
	for _, s := range args {
		if s == "-ends" || s == "--ends" {
			ends = true
			continue
		}
		coords = append(coords, s)
	}
	p, q, rest, err := pointPair(coords, 1)
	if err != nil {
		return fmt.Errorf("along: %w", err)
	}
	for pt := range a.ruler.PointsAlongLine(p, q, rest[0], ends).All() {
		a.out.point(pt.Lon, pt.Lat)
	}
	return nil
}

// length measures every file concurrently, at most cfg.workers at a time,
// and prints the results in argument order.
func (a *app) length(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return errors.New("length: no input files")
	}
	lengths := make([]float64, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.workers)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			points, err := loadPolyline(name)
			if err != nil {
				return fmt.Errorf("length: %s: %w", name, err)
			}
			l, err := a.measureLength(points)
			if err != nil {
				return fmt.Errorf("length: %s: %w", name, err)
			}
			lengths[i] = l
			a.logger.Debug("measured polyline",
				zap.String("file", name),
				zap.Int("vertices", len(points)),
				zap.Bool("batch", a.cfg.batch),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var total float64
	for i, name := range files {
		a.out.measure(name, lengths[i], "m")
		total += lengths[i]
	}
	if len(files) > 1 {
		a.out.measure("total", total, "m")
	}
	return nil
}

func (a *app) measureLength(points []cheapruler.Point[float64]) (float64, error) {
	if a.cfg.batch {
		lons := make([]float32, len(points))
		lats := make([]float32, len(points))
		for i, p := range points {
			lons[i], lats[i] = float32(p.Lon), float32(p.Lat)
		}
		l, err := simd.Length(lons, lats)
		return float64(l), err
	}
	var total float64
	for i := 1; i < len(points); i++ {
		total += a.ruler.Distance(points[i-1], points[i])
	}
	return total, nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/tidwall/cheapruler"
)

// Environment variables read after .env is loaded. Flags take precedence.
const (
	envEllipsoid = "CHEAPRULER_ELLIPSOID"
	envAtan2     = "CHEAPRULER_ATAN2"
	envWorkers   = "CHEAPRULER_WORKERS"
)

type config struct {
	ellipsoid  cheapruler.Ellipsoid
	arctangent cheapruler.Arctangent
	workers    int
	batch      bool
	verbose    bool
}

func getEnv(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}

// parseConfig reads the global flags, falling back to the environment, and
// returns the remaining arguments.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, []string, error) {
	fs := flag.NewFlagSet("cheapruler", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs) }

	var (
		ellipsoid = fs.String("ellipsoid", getEnv(getenv, envEllipsoid, "wgs84"), "ellipsoid: wgs84, mars or MAJOR,MINOR in meters")
		atan2     = fs.String("atan2", getEnv(getenv, envAtan2, "exact"), "arctangent for bearings: exact, deg3 or deg5")
		workers   = fs.String("workers", getEnv(getenv, envWorkers, strconv.Itoa(runtime.NumCPU())), "files measured in parallel by length")
		batch     = fs.Bool("batch", false, "measure length with the float32 lane kernel (wgs84 only)")
		verbose   = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, nil, err
	}

	var cfg config
	var err error
	if cfg.ellipsoid, err = parseEllipsoid(*ellipsoid); err != nil {
		return config{}, nil, err
	}
	var ok bool
	if cfg.arctangent, ok = cheapruler.ParseArctangent(*atan2); !ok {
		return config{}, nil, fmt.Errorf("unknown arctangent %q", *atan2)
	}
	if cfg.workers, err = strconv.Atoi(*workers); err != nil || cfg.workers < 1 {
		return config{}, nil, fmt.Errorf("workers must be a positive integer, got %q", *workers)
	}
	cfg.batch = *batch
	cfg.verbose = *verbose
	if cfg.batch && cfg.ellipsoid != cheapruler.WGS84 {
		return config{}, nil, errors.New("-batch requires the wgs84 ellipsoid")
	}
	return cfg, fs.Args(), nil
}

// parseEllipsoid accepts a preset name or "major,minor" semi-axes in meters.
func parseEllipsoid(s string) (cheapruler.Ellipsoid, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wgs84", "":
		return cheapruler.WGS84, nil
	case "mars":
		return cheapruler.Mars, nil
	}
	major, minor, ok := strings.Cut(s, ",")
	if !ok {
		return cheapruler.Ellipsoid{}, fmt.Errorf("unknown ellipsoid %q", s)
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(major), 64)
	if err != nil {
		return cheapruler.Ellipsoid{}, fmt.Errorf("ellipsoid major axis: %w", err)
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(minor), 64)
	if err != nil {
		return cheapruler.Ellipsoid{}, fmt.Errorf("ellipsoid minor axis: %w", err)
	}
	if !(a > 0) || !(b > 0) || b > a {
		return cheapruler.Ellipsoid{}, fmt.Errorf("ellipsoid axes must satisfy 0 < minor <= major, got %v,%v", a, b)
	}
	return cheapruler.NewEllipsoid(a, b), nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: cheapruler [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  distance LON1 LAT1 LON2 LAT2")
	fmt.Fprintln(w, "  bearing LON1 LAT1 LON2 LAT2")
	fmt.Fprintln(w, "  destination LON LAT BEARING METERS")
	fmt.Fprintln(w, "  interpolate LON1 LAT1 LON2 LAT2 RATIO")
	fmt.Fprintln(w, "  towards LON1 LAT1 LON2 LAT2 METERS")
	fmt.Fprintln(w, "  along [-ends] LON1 LAT1 LON2 LAT2 MAXMETERS")
	fmt.Fprintln(w, "  length FILE...      lon,lat rows; .gz .zst .lz4 are decompressed")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}

package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/tidwall/cheapruler"
)

// multiCloser closes a decompressor and the file underneath it.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// openPolyline opens name, decompressing by extension.
func openPolyline(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &multiCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &multiCloser{Reader: dec, closers: []io.Closer{closerFunc(dec.Close), f}}, nil
	case ".lz4":
		return &multiCloser{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// readPolyline parses "lon,lat" rows. Blank lines and lines starting with
// '#' are skipped.
func readPolyline(r io.Reader) ([]cheapruler.Point[float64], error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var points []cheapruler.Point[float64]
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		lon, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: longitude: %w", line, err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: latitude: %w", line, err)
		}
		points = append(points, cheapruler.Point[float64]{Lon: lon, Lat: lat})
	}
}

func loadPolyline(name string) ([]cheapruler.Point[float64], error) {
	rc, err := openPolyline(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return readPolyline(rc)
}

package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridhub/geo"
)

// Input formats.
const (
	formatCSV  = "csv"
	formatJSON = "json"
)

var errFormat = errors.New("unknown input format")

// loadPoints opens path ("-" is stdin) and decodes it. An empty format is
// inferred from the file extension and falls back to CSV.
func loadPoints(path, format string) ([]geo.Point, error) {
	if format == "" {
		format = formatCSV
		if strings.EqualFold(filepath.Ext(path), ".json") {
			format = formatJSON
		}
	}

	var r io.Reader = os.Stdin
	if path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	return readPoints(r, format)
}

// readPoints decodes points in the given format.
//
// CSV rows are "lat,lng"; a first row whose first field is not a number is
// treated as a header. JSON is an array of {"lat":..,"lng":..} objects.
func readPoints(r io.Reader, format string) ([]geo.Point, error) {
	switch strings.ToLower(format) {
	case formatCSV:
		return readCSV(r)
	case formatJSON:
		var points []geo.Point
		if err := json.NewDecoder(r).Decode(&points); err != nil {
			return nil, fmt.Errorf("decode json points: %w", err)
		}
		return points, nil
	default:
		return nil, fmt.Errorf("%w: %q", errFormat, format)
	}
}

func readCSV(r io.Reader) ([]geo.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var points []geo.Point
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return points, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		lat, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("csv line %d: latitude %q: %w", line, rec[0], err)
		}
		lng, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: longitude %q: %w", line, rec[1], err)
		}
		points = append(points, geo.NewPoint(lat, lng))
	}
}

package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/avdeyev/seisplot/grid"
)

// loadFrames reads one frame per CSV file. Each record is one trace;
// frame names are the file names without extension.
func loadFrames(paths []string) ([]*grid.Frame, []string, error) {
	if len(paths) == 0 {
		return nil, nil, errors.New("no input files (use -i)")
	}

	frames := make([]*grid.Frame, 0, len(paths))
	names := make([]string, 0, len(paths))

	for _, path := range paths {
		f, err := loadCSV(path)
		if err != nil {
			return nil, nil, err
		}

		base := filepath.Base(path)
		frames = append(frames, f)
		names = append(names, strings.TrimSuffix(base, filepath.Ext(base)))
	}

	return frames, names, nil
}

func loadCSV(path string) (*grid.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open frame file")
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	traces := make([][]float64, len(records))
	for i, rec := range records {
		traces[i] = make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: record %d field %d", path, i+1, j+1)
			}
			traces[i][j] = v
		}
	}

	frame, err := grid.FromRows(traces)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return frame, nil
}

// parseROI reads a region spec of the form r0:r1,c0:c1 with half-open
// ranges.
func parseROI(spec string) (grid.ROI, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return grid.ROI{}, errors.Errorf("region %q: want r0:r1,c0:c1", spec)
	}

	rows, err := parseSpan(parts[0])
	if err != nil {
		return grid.ROI{}, errors.Wrapf(err, "region %q", spec)
	}

	cols, err := parseSpan(parts[1])
	if err != nil {
		return grid.ROI{}, errors.Wrapf(err, "region %q", spec)
	}

	return grid.ROI{Rows: rows, Cols: cols}, nil
}

func parseSpan(s string) (grid.Span, error) {
	bounds := strings.Split(s, ":")
	if len(bounds) != 2 {
		return grid.Span{}, errors.Errorf("range %q: want start:stop", s)
	}

	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return grid.Span{}, errors.Wrapf(err, "range %q", s)
	}

	stop, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return grid.Span{}, errors.Wrapf(err, "range %q", s)
	}

	return grid.Span{Start: start, Stop: stop}, nil
}

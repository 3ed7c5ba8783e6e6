package ashare

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SeriesPath returns the output file for one stock's historical series.
// The filename derives only from the code, so reruns overwrite in place.
func SeriesPath(dataset, code string) string {
	return filepath.Join(dataset, code+".csv")
}

// WriteSeries persists a stock's series to its per-stock file, one candle per
// row, oldest first.
func WriteSeries(path string, candles []Candle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create series file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(candleHeader); err != nil {
		return err
	}
	for _, c := range candles {
		if err := w.Write(c.fields()); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot write series file %q: %w", path, err)
	}
	return nil
}

// ReadSeries loads a persisted per-stock series file.
func ReadSeries(path string) ([]Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open series file: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	var candles []Candle
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read series file %q: %w", path, err)
		}
		if first {
			first = false
			if len(rec) > 0 && rec[0] == candleHeader[0] {
				continue
			}
		}
		c, err := candleFromFields(rec)
		if err != nil {
			return nil, fmt.Errorf("series file %q: %w", path, err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}

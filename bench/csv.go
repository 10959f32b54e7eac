// Package bench - CSV output for records, summaries, and live progress.
package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/tsplab/tsplab/opt"
)

// WriteRecords writes one CSV row per run, with a header.
func WriteRecords(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"algorithm", "run", "best", "steps", "elapsed_ms"}); err != nil {
		return fmt.Errorf("bench: write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.Algorithm,
			strconv.Itoa(rec.Run),
			strconv.FormatFloat(rec.Best, 'f', 6, 64),
			strconv.Itoa(rec.Steps),
			strconv.FormatFloat(float64(rec.Elapsed.Microseconds())/1000, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaries writes one CSV row per algorithm summary, with a header.
func WriteSummaries(w io.Writer, summaries []Summary) error {
	cw := csv.NewWriter(w)

	header := []string{
		"algorithm", "runs", "best_min", "best_mean", "best_stddev",
		"best_median", "best_p90", "mean_steps", "mean_elapsed_ms",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("bench: write csv header: %w", err)
	}
	for _, s := range summaries {
		row := []string{
			s.Algorithm,
			strconv.Itoa(s.Runs),
			strconv.FormatFloat(s.BestMin, 'f', 6, 64),
			strconv.FormatFloat(s.BestMean, 'f', 6, 64),
			strconv.FormatFloat(s.BestStdDev, 'f', 6, 64),
			strconv.FormatFloat(s.BestMedian, 'f', 6, 64),
			strconv.FormatFloat(s.BestP90, 'f', 6, 64),
			strconv.FormatFloat(s.MeanSteps, 'f', 1, 64),
			strconv.FormatFloat(float64(s.MeanElapsed.Microseconds())/1000, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bench: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVSink streams (label, step, best) progress rows into w as an opt.Sink.
// Safe for use from concurrently stepped engines sharing one writer; rows
// from different engines interleave but never tear.
type CSVSink struct {
	mu    *sync.Mutex // shared across WithLabel derivatives
	cw    *csv.Writer
	label string
}

// NewCSVSink wraps w. The header is written immediately so that fresh files
// are self-describing; pass writeHeader=false when appending to a file that
// already has one.
func NewCSVSink(w io.Writer, label string, writeHeader bool) (*CSVSink, error) {
	s := &CSVSink{mu: &sync.Mutex{}, cw: csv.NewWriter(w), label: label}
	if writeHeader {
		if err := s.cw.Write([]string{"algorithm", "step", "best"}); err != nil {
			return nil, fmt.Errorf("bench: write csv header: %w", err)
		}
	}

	return s, nil
}

// WithLabel returns a sink sharing this sink's writer and lock but stamping
// a different label, so two engines can stream into one file.
func (s *CSVSink) WithLabel(label string) *CSVSink {
	return &CSVSink{mu: s.mu, cw: s.cw, label: label}
}

// Append implements opt.Sink.
func (s *CSVSink) Append(step int, best float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := []string{
		s.label,
		strconv.Itoa(step),
		strconv.FormatFloat(best, 'f', 6, 64),
	}
	if err := s.cw.Write(row); err != nil {
		return fmt.Errorf("bench: append progress row: %w", err)
	}

	return nil
}

// Flush forces buffered rows out and reports any accumulated write error.
func (s *CSVSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cw.Flush()
	if err := s.cw.Error(); err != nil {
		return fmt.Errorf("bench: flush progress csv: %w", err)
	}

	return nil
}

// Compile-time check.
var _ opt.Sink = (*CSVSink)(nil)

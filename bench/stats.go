// Package bench - per-algorithm aggregation of run records.
package bench

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoRecords indicates Summarize was called with an empty slice.
var ErrNoRecords = errors.New("bench: no records to summarize")

// Summary aggregates all runs of one algorithm.
type Summary struct {
	Algorithm string
	Runs      int

	// Best tour length across the runs.
	BestMin    float64
	BestMean   float64
	BestStdDev float64
	BestMedian float64
	BestP90    float64

	// Work and wall time.
	MeanSteps   float64
	MeanElapsed time.Duration
}

// Summarize groups records by algorithm and computes the summary statistics,
// returned in algorithm-name order for stable output.
//
// Complexity: O(R log R) per algorithm (percentiles sort).
func Summarize(records []Record) ([]Summary, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	byAlgo := make(map[string][]Record)
	for _, rec := range records {
		byAlgo[rec.Algorithm] = append(byAlgo[rec.Algorithm], rec)
	}

	names := make([]string, 0, len(byAlgo))
	for name := range byAlgo {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Summary, 0, len(names))
	for _, name := range names {
		s, err := summarizeOne(name, byAlgo[name])
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func summarizeOne(name string, recs []Record) (Summary, error) {
	var (
		bests   = make([]float64, len(recs))
		steps   = make([]float64, len(recs))
		elapsed time.Duration
	)
	for i, rec := range recs {
		bests[i] = rec.Best
		steps[i] = float64(rec.Steps)
		elapsed += rec.Elapsed
	}

	min, err := stats.Min(bests)
	if err != nil {
		return Summary{}, fmt.Errorf("bench: summarize %s: %w", name, err)
	}
	median, err := stats.Percentile(bests, 50)
	if err != nil {
		return Summary{}, fmt.Errorf("bench: summarize %s: %w", name, err)
	}
	p90, err := stats.Percentile(bests, 90)
	if err != nil {
		return Summary{}, fmt.Errorf("bench: summarize %s: %w", name, err)
	}

	mean, std := stat.MeanStdDev(bests, nil)

	return Summary{
		Algorithm:   name,
		Runs:        len(recs),
		BestMin:     min,
		BestMean:    mean,
		BestStdDev:  std,
		BestMedian:  median,
		BestP90:     p90,
		MeanSteps:   stat.Mean(steps, nil),
		MeanElapsed: elapsed / time.Duration(len(recs)),
	}, nil
}

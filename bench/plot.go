// Package bench - PNG renderings of convergence curves and tours.
package bench

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/tsplab/tsplab/tsp"
)

// Sentinel errors raised by the plot renderers.
var (
	// ErrNoSeries indicates SaveConvergence was called with no data.
	ErrNoSeries = errors.New("bench: no series to plot")

	// ErrEmptyTour indicates SaveTour was called with an empty order.
	ErrEmptyTour = errors.New("bench: empty tour")
)

// Series is one convergence curve: best length after each step, in step order.
type Series []float64

// SaveConvergence renders one line per named series (step on X, best length
// on Y) into a PNG at path. Series iterate in name order so legends and
// colors are stable across runs.
func SaveConvergence(path, title string, series map[string]Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Best tour length"
	p.Legend.Top = true

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		pts := make(plotter.XYs, len(series[name]))
		for j, best := range series[name] {
			pts[j].X = float64(j + 1)
			pts[j].Y = best
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("bench: plot series %s: %w", name, err)
		}
		line.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(name, line)
	}

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("bench: save convergence plot: %w", err)
	}

	return nil
}

// SaveTour draws the tour as a closed polyline over the city scatter into a
// PNG at path. The order must be a valid permutation for prob.
func SaveTour(path, title string, prob *tsp.Problem, tour tsp.Tour) error {
	if len(tour.Order) == 0 {
		return ErrEmptyTour
	}
	if err := tsp.ValidatePermutation(tour.Order, prob.N()); err != nil {
		return fmt.Errorf("bench: plot tour: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	n := prob.N()

	// Closed polyline: n cities plus the repeated first city.
	line := make(plotter.XYs, n+1)
	for i, idx := range tour.Order {
		c := prob.CityAt(idx)
		line[i].X = float64(c.X)
		line[i].Y = float64(c.Y)
	}
	line[n] = line[0]

	path2d, err := plotter.NewLine(line)
	if err != nil {
		return fmt.Errorf("bench: plot tour line: %w", err)
	}

	dots, err := plotter.NewScatter(line[:n])
	if err != nil {
		return fmt.Errorf("bench: plot tour cities: %w", err)
	}

	p.Add(path2d, dots)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("bench: save tour plot: %w", err)
	}

	return nil
}

// Package report renders colony runs: the pheromone table after every
// iteration and the final route-frequency table.
//
// Three formats are supported:
//   - text: row dumps like matrix.Dense.String, aligned frequency table,
//     best route highlighted with fatih/color;
//   - yaml: one YAML document per record (gopkg.in/yaml.v3 stream);
//   - json: one JSON object per line.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antpath/aco"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrFormat is returned for an unknown output format.
var ErrFormat = errors.New("report: unknown format")

// ParseFormat maps "text", "yaml"/"yml" and "json" onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrFormat)
	}
}

// IterationRecord is the per-iteration observability record.
type IterationRecord struct {
	Iteration int         `json:"iteration" yaml:"iteration"`
	Pheromone [][]float64 `json:"pheromone" yaml:"pheromone"`
}

// RouteRow is one line of the frequency table.
type RouteRow struct {
	Route string  `json:"route" yaml:"route"`
	Count int     `json:"count" yaml:"count"`
	Share float64 `json:"share" yaml:"share"`
	Cost  float64 `json:"cost" yaml:"cost"`
}

// BestRoute is the cheapest route seen during a run.
type BestRoute struct {
	Route      []int   `json:"route" yaml:"route"`
	Cost       float64 `json:"cost" yaml:"cost"`
	ClosedCost float64 `json:"closed_cost" yaml:"closed_cost"`
}

// Summary is the end-of-run report.
type Summary struct {
	RunID       string      `json:"run_id" yaml:"run_id"`
	Seed        int64       `json:"seed" yaml:"seed"`
	Nodes       int         `json:"nodes" yaml:"nodes"`
	ColonySize  int         `json:"colony_size" yaml:"colony_size"`
	Iterations  int         `json:"iterations" yaml:"iterations"`
	Aggregation string      `json:"aggregation" yaml:"aggregation"`
	Total       int         `json:"total" yaml:"total"`
	Best        *BestRoute  `json:"best,omitempty" yaml:"best,omitempty"`
	Routes      []RouteRow  `json:"routes" yaml:"routes"`
	Pheromone   [][]float64 `json:"pheromone,omitempty" yaml:"pheromone,omitempty"`
}

// NewSummary collects the end-of-run report from a finished colony.
func NewSummary(runID string, col *aco.Colony, dist *aco.Distances) Summary {
	var (
		opts = col.Options()
		tr   = col.Tracker()
		s    = Summary{
			RunID:       runID,
			Seed:        opts.Seed,
			Nodes:       dist.Len(),
			ColonySize:  opts.ColonySize,
			Iterations:  col.Iteration(),
			Aggregation: opts.Aggregation.String(),
			Total:       tr.Total(),
			Pheromone:   col.Pheromone().Rows(),
		}
	)

	for _, rc := range tr.Ranked() {
		row := RouteRow{Route: rc.Key, Count: rc.Count, Cost: rc.Cost}
		if s.Total > 0 {
			row.Share = float64(rc.Count) / float64(s.Total)
		}
		s.Routes = append(s.Routes, row)
	}

	if best, cost, ok := tr.Best(); ok {
		closed, err := best.ClosedCost(dist)
		if err != nil {
			closed = cost
		}
		s.Best = &BestRoute{Route: best, Cost: cost, ClosedCost: closed}
	}

	return s
}

// Writer renders records in one Format. It is not safe for concurrent use.
type Writer struct {
	out    io.Writer
	format Format
	yaml   *yaml.Encoder
	json   *json.Encoder

	highlight *color.Color
	dim       *color.Color
}

// NewWriter returns a Writer for out. With colored=false the text format
// carries no escape sequences; otherwise fatih/color decides from the
// terminal.
func NewWriter(out io.Writer, format Format, colored bool) *Writer {
	w := &Writer{
		out:       out,
		format:    format,
		highlight: color.New(color.FgGreen, color.Bold),
		dim:       color.New(color.Faint),
	}
	if !colored {
		w.highlight.DisableColor()
		w.dim.DisableColor()
	}
	switch format {
	case FormatYAML:
		w.yaml = yaml.NewEncoder(out)
		w.yaml.SetIndent(2)
	case FormatJSON:
		w.json = json.NewEncoder(out)
	}

	return w
}

// Iteration writes the pheromone table of a completed iteration.
// Iterations are numbered from 1 in the output.
func (w *Writer) Iteration(res aco.IterationResult) error {
	rec := IterationRecord{Iteration: res.Iteration + 1, Pheromone: res.Pheromone.Rows()}

	switch w.format {
	case FormatText:
		if _, err := w.dim.Fprintf(w.out, "iteration %d\n", rec.Iteration); err != nil {
			return err
		}
		_, err := io.WriteString(w.out, res.Pheromone.String())
		return err
	case FormatYAML:
		return w.yaml.Encode(rec)
	case FormatJSON:
		return w.json.Encode(rec)
	default:
		return fmt.Errorf("Writer.Iteration: %q: %w", w.format, ErrFormat)
	}
}

// Summary writes the end-of-run report.
func (w *Writer) Summary(s Summary) error {
	switch w.format {
	case FormatText:
		return w.summaryText(s)
	case FormatYAML:
		return w.yaml.Encode(s)
	case FormatJSON:
		return w.json.Encode(s)
	default:
		return fmt.Errorf("Writer.Summary: %q: %w", w.format, ErrFormat)
	}
}

// Routes writes an enumeration of every route with its open and closed cost.
func (w *Writer) Routes(all []aco.RouteCost, dist *aco.Distances) error {
	rows := make([]BestRoute, 0, len(all))
	for _, rc := range all {
		closed, err := rc.Route.ClosedCost(dist)
		if err != nil {
			return fmt.Errorf("Writer.Routes: %w", err)
		}
		rows = append(rows, BestRoute{Route: rc.Route, Cost: rc.Cost, ClosedCost: closed})
	}

	switch w.format {
	case FormatText:
		tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ROUTE\tCOST\tCLOSED")
		for i, r := range rows {
			line := fmt.Sprintf("%s\t%g\t%g", aco.Route(r.Route).Key(), r.Cost, r.ClosedCost)
			if i == 0 {
				line = w.highlight.Sprint(line)
			}
			fmt.Fprintln(tw, line)
		}
		return tw.Flush()
	case FormatYAML:
		return w.yaml.Encode(rows)
	case FormatJSON:
		return w.json.Encode(rows)
	default:
		return fmt.Errorf("Writer.Routes: %q: %w", w.format, ErrFormat)
	}
}

// Close flushes a YAML stream; it is a no-op for the other formats and on
// repeated calls.
func (w *Writer) Close() error {
	if w.yaml == nil {
		return nil
	}
	enc := w.yaml
	w.yaml = nil

	return enc.Close()
}

func (w *Writer) summaryText(s Summary) error {
	fmt.Fprintf(w.out, "run %s  seed=%d  nodes=%d  ants=%d  iterations=%d  aggregation=%s\n",
		s.RunID, s.Seed, s.Nodes, s.ColonySize, s.Iterations, s.Aggregation)

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROUTE\tCOUNT\tSHARE\tCOST")
	for _, r := range s.Routes {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t%g\n", r.Route, r.Count, 100*r.Share, r.Cost)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if s.Best == nil {
		_, err := fmt.Fprintln(w.out, "best: none")
		return err
	}
	_, err := fmt.Fprintf(w.out, "best: %s\n", w.highlight.Sprintf("%s cost=%g closed=%g",
		aco.Route(s.Best.Route), s.Best.Cost, s.Best.ClosedCost))

	return err
}

package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table renders the entries as a fixed-width comparison table.
func (c *Collector) Table() string {
	if len(c.entries) == 0 {
		return "no results to compare\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-28s %-8s %-20s %8s %12s %10s %10s %10s\n",
		"Algorithm", "Success", "Outcome", "Depth", "Expanded", "Generated", "Time(s)", "Frontier")
	b.WriteString(strings.Repeat("-", 112))
	b.WriteByte('\n')

	for _, e := range c.entries {
		r := e.Result
		success := "no"
		if r.Success {
			success = "yes"
		}
		fmt.Fprintf(&b, "%-28s %-8s %-20s %8d %12d %10d %10.4f %10d\n",
			e.Label, success, r.Outcome, len(r.Path),
			r.NodesExpanded, r.NodesGenerated, r.Elapsed.Seconds(), r.MaxFrontier)
	}

	return b.String()
}

// csvHeader is the stable column set shared by WriteCSV and WriteJSON.
var csvHeader = []string{
	"algorithm", "heuristic", "success", "outcome",
	"depth", "nodes_expanded", "nodes_generated",
	"max_depth", "max_frontier", "elapsed_seconds",
}

// WriteCSV writes one row per entry with the csvHeader columns.
func (c *Collector) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("metrics: writing csv header: %w", err)
	}
	for _, e := range c.entries {
		r := e.Result
		row := []string{
			e.Label,
			string(e.Heuristic),
			strconv.FormatBool(r.Success),
			r.Outcome.String(),
			strconv.Itoa(len(r.Path)),
			strconv.Itoa(r.NodesExpanded),
			strconv.Itoa(r.NodesGenerated),
			strconv.Itoa(r.MaxDepth),
			strconv.Itoa(r.MaxFrontier),
			strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("metrics: writing csv row for %q: %w", e.Label, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// reportRow is the JSON shape of one entry.
type reportRow struct {
	Algorithm      string   `json:"algorithm"`
	Heuristic      string   `json:"heuristic,omitempty"`
	Success        bool     `json:"success"`
	Outcome        string   `json:"outcome"`
	Path           []string `json:"path,omitempty"`
	Depth          int      `json:"depth"`
	NodesExpanded  int      `json:"nodes_expanded"`
	NodesGenerated int      `json:"nodes_generated"`
	MaxDepth       int      `json:"max_depth"`
	MaxFrontier    int      `json:"max_frontier"`
	ElapsedSeconds float64  `json:"elapsed_seconds"`
}

// WriteJSON writes the entries as an indented JSON array, solution paths
// included as move-name strings.
func (c *Collector) WriteJSON(w io.Writer) error {
	rows := make([]reportRow, 0, len(c.entries))
	for _, e := range c.entries {
		r := e.Result
		var path []string
		if len(r.Path) > 0 {
			path = make([]string, len(r.Path))
			for i, m := range r.Path {
				path[i] = m.String()
			}
		}
		rows = append(rows, reportRow{
			Algorithm:      e.Label,
			Heuristic:      string(e.Heuristic),
			Success:        r.Success,
			Outcome:        r.Outcome.String(),
			Path:           path,
			Depth:          len(r.Path),
			NodesExpanded:  r.NodesExpanded,
			NodesGenerated: r.NodesGenerated,
			MaxDepth:       r.MaxDepth,
			MaxFrontier:    r.MaxFrontier,
			ElapsedSeconds: r.Elapsed.Seconds(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("metrics: encoding json report: %w", err)
	}

	return nil
}

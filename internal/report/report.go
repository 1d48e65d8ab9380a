// Package report turns a computed metric catalogue into the ordered
// result structure consumed by serialization, and renders it as JSON
// or plain text. Undefined metric values stay explicit: JSON renders
// them as null, text as "undefined".
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reveng-lab/decompeval/internal/metrics"
)

// MetricResult is one computed metric.
type MetricResult struct {
	Key         string        `json:"key"`
	DisplayName string        `json:"display_name"`
	Value       metrics.Value `json:"value"`
}

// GroupResult is one metric group with its computed values in catalog
// order.
type GroupResult struct {
	Name        string         `json:"name"`
	DisplayName string         `json:"display_name"`
	Metrics     []MetricResult `json:"metrics"`
}

// Report is the ordered outcome of one metrics pass.
type Report struct {
	Groups []GroupResult `json:"groups"`
}

// Build evaluates every group of the catalogue against the session,
// preserving group and metric order.
func Build(catalog []*metrics.MetricsGroup, s *metrics.Session) Report {
	r := Report{Groups: make([]GroupResult, 0, len(catalog))}
	for _, group := range catalog {
		gr := GroupResult{
			Name:        group.Name(),
			DisplayName: group.DisplayName(),
			Metrics:     make([]MetricResult, 0, len(group.Metrics())),
		}
		values := group.ComputeResults(s)
		for i, m := range group.Metrics() {
			gr.Metrics = append(gr.Metrics, MetricResult{
				Key:         m.Key(),
				DisplayName: m.DisplayName(),
				Value:       values[i],
			})
		}
		r.Groups = append(r.Groups, gr)
	}
	return r
}

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText renders the report as a readable listing, one group per
// section.
func WriteText(w io.Writer, r Report) error {
	for _, g := range r.Groups {
		if _, err := fmt.Fprintf(w, "%s\n", g.DisplayName); err != nil {
			return err
		}
		for _, m := range g.Metrics {
			if _, err := fmt.Fprintf(w, "  %-50s %s\n", m.DisplayName, m.Value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

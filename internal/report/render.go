/*
Copyright 2026 The burstplan Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"sigs.k8s.io/yaml"

	"github.com/burstplan/burstplan/internal/engines/pareto"
	"github.com/burstplan/burstplan/internal/optimizer"
	"github.com/burstplan/burstplan/internal/utils/category"
	"github.com/burstplan/burstplan/pkg/catalog"
	"github.com/burstplan/burstplan/pkg/core"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Renderer writes results to w in one format.
type Renderer struct {
	w      io.Writer
	format string
}

// NewRenderer creates a Renderer for format.
func NewRenderer(w io.Writer, format string) (*Renderer, error) {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return &Renderer{w: w, format: format}, nil
	default:
		return nil, fmt.Errorf("%w: unknown output format %q", core.ErrConfiguration, format)
	}
}

// Object writes v as JSON or YAML. The table format falls back to YAML.
func (r *Renderer) Object(v any) error {
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.w.Write(out)
	return err
}

// Plan writes the optimal points of a run, cheapest first, and its recommendation.
func (r *Renderer) Plan(res *optimizer.Result) error {
	if r.format != FormatTable {
		return r.Object(res)
	}

	fmt.Fprintf(r.w, "Site: %s (%d fixed processors)\n", res.Site, res.FixedCount)
	s := res.Summary
	fmt.Fprintf(r.w, "Configurations: %d swept, %d Pareto-optimal, %s dominated\n",
		s.Total, s.Optimal, Percent(s.DominatedShare))
	if s.Baseline != nil {
		fmt.Fprintf(r.w, "Baseline: %s (%s)\n", s.Baseline.ConfigID, Hours(s.Baseline.Makespan))
	}
	if s.Fastest != nil {
		fmt.Fprintf(r.w, "Fastest: %s (%s at %s", s.Fastest.ConfigID, Hours(s.Fastest.Makespan), Currency(s.Fastest.Cost))
		if s.Speedup > 0 {
			fmt.Fprintf(r.w, ", %.1fx faster than baseline", s.Speedup)
		}
		fmt.Fprintln(r.w, ")")
	}
	fmt.Fprintln(r.w)

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONFIG\tINSTANCE\tTIER\tELASTIC\tCOST\tMAKESPAN\t")
	for _, p := range pareto.SortByCost(pareto.Optimal(res.Frontier)) {
		marker := ""
		if res.Recommendation != nil && p.ConfigID == res.Recommendation.ConfigID {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			p.ConfigID, orDash(p.InstanceType), tierLabel(p.PricingTier), p.ElasticCount,
			Currency(p.Cost), Hours(p.Makespan), marker)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(r.w)

	if len(s.Composition) > 1 {
		fmt.Fprintln(r.w, "Frontier composition:")
		for _, sh := range s.Composition {
			fmt.Fprintf(r.w, "  %s %s: %d\n", orDash(sh.InstanceType), tierLabel(sh.PricingTier), sh.Count)
		}
		fmt.Fprintln(r.w)
	}

	if rec := res.Recommendation; rec != nil {
		_, err := fmt.Fprintf(r.w, "Recommended: %s (%s, %s)\n", rec.ConfigID, Currency(rec.Cost), Hours(rec.Makespan))
		return err
	}
	_, err := fmt.Fprintln(r.w, "Recommended: none (no configuration satisfies the constraints)")
	return err
}

// Sites writes one row per compared site.
func (r *Renderer) Sites(sites []optimizer.SiteResult) error {
	if r.format != FormatTable {
		return r.Object(sites)
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SITE\tFIXED\tTIER\tBASELINE\tFASTEST\tCOST AT FASTEST\tPARETO\tRECOMMENDED")
	for _, s := range sites {
		sum := s.Result.Summary
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%d\t%s\n",
			s.Profile.Name, s.Profile.FixedCount, orDash(s.Profile.Tier),
			pointHours(sum.Baseline), pointHours(sum.Fastest), pointCost(sum.Fastest),
			sum.Optimal, pointID(s.Result.Recommendation))
	}
	return tw.Flush()
}

// Scenarios writes one row per sensitivity scenario. Scenarios without any
// optimal point are omitted from the table.
func (r *Renderer) Scenarios(scenarios []optimizer.Scenario) error {
	if r.format != FormatTable {
		return r.Object(scenarios)
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tELASTIC TIME\tPER LOCAL HOUR\tPARETO\tBASELINE\tFASTEST\tCOST AT FASTEST\tRECOMMENDED")
	for _, sc := range scenarios {
		sum := sc.Result.Summary
		if sum.Optimal == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			sc.Label, elasticTime(sc.Model), localHourCost(sc.Model),
			sum.Optimal, pointHours(sum.Baseline), pointHours(sum.Fastest),
			pointCost(sum.Fastest), pointID(sc.Result.Recommendation))
	}
	return tw.Flush()
}

// Detail writes a per-pool breakdown of one schedule.
func (r *Renderer) Detail(b Breakdown) error {
	if r.format != FormatTable {
		return r.Object(b)
	}
	fmt.Fprintf(r.w, "Config: %s\n", b.ConfigID)
	fmt.Fprintf(r.w, "Makespan: %s (%s)\n", Hours(b.Makespan), Duration(b.Makespan))
	fmt.Fprintf(r.w, "Elastic cost: %s\n", Currency(b.Cost))
	fmt.Fprintf(r.w, "Bottleneck: %s pool\n\n", b.Bottleneck)

	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	header := "POOL\tPROCESSORS\tJOBS\tFINISH\tMEAN LOCAL DURATION"
	for _, c := range category.All {
		header += "\t" + string(c)
	}
	fmt.Fprintln(tw, header)
	for _, p := range b.Pools {
		row := fmt.Sprintf("%s\t%d\t%d\t%s\t%s", p.Pool, p.Processors, p.Jobs, Hours(p.Finish), minutes(p.MeanLocalDuration))
		for _, c := range category.All {
			row += "\t" + strconv.Itoa(p.Categories[c])
		}
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}

// Pricing writes the rate card of every instance type.
func (r *Renderer) Pricing(instances []catalog.InstanceType) error {
	if r.format != FormatTable {
		return r.Object(instances)
	}
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	header := "INSTANCE\tGPU\tRATIO"
	for _, t := range core.PricingTiers {
		header += "\t" + t.Label()
	}
	fmt.Fprintln(tw, header+"\tSPOT PER LOCAL HOUR")
	for _, it := range instances {
		row := fmt.Sprintf("%s\t%s\t%.3fx", it.Name, it.GPU, it.Ratio)
		for _, t := range core.PricingTiers {
			rate, err := it.RateFor(t)
			if err != nil {
				row += "\tn/a"
				continue
			}
			row += fmt.Sprintf("\t%s/hr", Currency(rate))
		}
		fmt.Fprintf(tw, "%s\t%s\n", row, Currency(it.Rates.Spot*it.Ratio))
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func tierLabel(t core.PricingTier) string {
	if t == "" {
		return "-"
	}
	return t.Label()
}

func pointHours(p *core.FrontierPoint) string {
	if p == nil {
		return "-"
	}
	return Hours(p.Makespan)
}

func pointCost(p *core.FrontierPoint) string {
	if p == nil {
		return "-"
	}
	return Currency(p.Cost)
}

func pointID(p *core.FrontierPoint) string {
	if p == nil {
		return "none"
	}
	return p.ConfigID
}

func minutes(seconds float64) string {
	return fmt.Sprintf("%.1f min", seconds/60)
}

// elasticTime describes how long a job takes on the elastic pool.
func elasticTime(m core.ElasticCostModel) string {
	if m.RatioMode() {
		return fmt.Sprintf("%.2fx", *m.Ratio)
	}
	return Duration(m.FixedJobDuration) + "/job"
}

// localHourCost is only defined when durations scale with the local duration.
func localHourCost(m core.ElasticCostModel) string {
	if !m.RatioMode() {
		return "n/a"
	}
	return Currency(m.LocalHourCost()) + "/hr"
}

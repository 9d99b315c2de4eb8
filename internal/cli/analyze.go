package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/transitlab/netlint/pkg/cache"
	"github.com/transitlab/netlint/pkg/report"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	output  string // write the JSON report to this path
	asJSON  bool   // print the report as JSON instead of a summary
	noCache bool   // skip the report cache
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := &analyzeOpts{}

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Run the full topology analysis on a network file",
		Long: `Analyze parses a JSON network file and reports graph topology findings:
dead-end and spring nodes, isolated nodes, duplicate sections, final
sections, and node centrality, together with length statistics and
structural validation results.

Results are cached by document content, so re-analyzing an unchanged
file is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the JSON report to a file")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "analyze even if a cached report exists")

	return cmd
}

// buildReport reads a network file and produces its analysis report,
// consulting the content-addressed cache first.
func (c *CLI) buildReport(cmd *cobra.Command, path string, noCache bool) (*report.Report, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}

	store, err := c.newCache(noCache)
	if err != nil {
		return nil, false, err
	}
	defer store.Close()

	ctx := cmd.Context()
	key := cache.NetworkKey(data)

	if raw, hit, err := store.Get(ctx, key); err == nil && hit {
		var r report.Report
		if err := json.Unmarshal(raw, &r); err == nil {
			c.Logger.Debug("report served from cache", "key", key)
			return &r, true, nil
		}
	}

	spin := newSpinnerWithContext(ctx, "Analyzing network...")
	spin.Start()

	prog := newProgress(c.Logger)
	rep, err := report.Build(data)
	spin.Stop()
	if err != nil {
		return nil, false, err
	}
	prog.done(fmt.Sprintf("Analyzed %d sections", rep.Counts.Sections))

	if raw, err := json.Marshal(rep); err == nil {
		if err := store.Set(ctx, key, raw, 0); err != nil {
			c.Logger.Warn("cache write failed", "err", err)
		}
	}
	return rep, false, nil
}

func (c *CLI) runAnalyze(cmd *cobra.Command, path string, opts *analyzeOpts) error {
	rep, cached, err := c.buildReport(cmd, path, opts.noCache)
	if err != nil {
		return err
	}

	if opts.output != "" {
		raw, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, raw, 0644); err != nil {
			return fmt.Errorf("write %s: %w", opts.output, err)
		}
		printFile(opts.output)
	}

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	printSummary(rep, cached)
	return nil
}

// printSummary renders the styled terminal report.
func printSummary(rep *report.Report, cached bool) {
	fmt.Println(StyleTitle.Render("Network Analysis"))
	printStats(rep.Counts.Nodes, rep.Counts.Sections, cached)
	printNewline()

	printKeyValue("Stops", fmt.Sprintf("%d", rep.Counts.Stops))
	printKeyValue("Zones", fmt.Sprintf("%d", rep.Counts.Zones))
	if rep.ConnectivityIndex != nil {
		printKeyValue("Connectivity", fmt.Sprintf("%.2f sections/node", *rep.ConnectivityIndex))
	}
	if rep.Lengths != nil {
		printKeyValue("Lengths", fmt.Sprintf("min %.1f / median %.1f / mean %.1f / max %.1f",
			rep.Lengths.Min, rep.Lengths.Median, rep.Lengths.Mean, rep.Lengths.Max))
	}
	printNewline()

	topo := rep.Topology
	printFinding("Dead-ends", topo.DeadEnds)
	printFinding("Springs", topo.Springs)
	printFinding("Isolates", topo.Isolates)
	printFinding("Final sections", topo.FinalSections)

	if len(topo.Duplicates) > 0 {
		printWarning("%d duplicate section groups", len(topo.Duplicates))
		for _, grp := range topo.Duplicates {
			printDetail("%s %s %s: %s", grp.Upstream, iconArrow, grp.Downstream, strings.Join(grp.SectionIDs, ", "))
		}
	} else {
		printSuccess("No duplicate sections")
	}

	if topo.MaxCentralityNode != "" {
		printKeyValue("Centrality", fmt.Sprintf("max %s (%d incident sections)",
			topo.MaxCentralityNode, topo.MaxCentralityDegree))
	}

	for _, layerID := range sortedKeys(rep.Matching) {
		m := rep.Matching[layerID]
		printKeyValue("Matching", fmt.Sprintf("%s: %.0f%% avg, %d/%d lines fully matched",
			layerID, m.AverageRate*100, m.FullyMatchedLines, len(m.Lines)))
	}

	printNewline()
	if v := rep.Validation; v != nil && !v.Valid() {
		printError("%d validation errors, %d warnings", len(v.Errors()), len(v.Warnings()))
	} else if v != nil && len(v.Warnings()) > 0 {
		printWarning("%d validation warnings", len(v.Warnings()))
	} else {
		printSuccess("Structure is valid")
	}
	printDetail("Report %s, built %s", rep.ID, rep.CreatedAt.Format(time.RFC3339))
}

// printFinding prints one topology finding line.
func printFinding(label string, ids []string) {
	if len(ids) == 0 {
		printSuccess("%s: none", label)
		return
	}
	printWarning("%s: %d", label, len(ids))
	const maxShown = 8
	shown := ids
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	suffix := ""
	if len(ids) > maxShown {
		suffix = fmt.Sprintf(" (+%d more)", len(ids)-maxShown)
	}
	printDetail("%s%s", strings.Join(shown, ", "), suffix)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

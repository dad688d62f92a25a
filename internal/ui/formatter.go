package ui

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"

	"tsep/internal/domain"
	"tsep/internal/strategy"
)

const barWidth = 30

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout}
}

// NewFormatterTo creates a Formatter writing to w
func NewFormatterTo(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// PrintSummary displays the meta statistics and per-group totals of a manifest
func (f *Formatter) PrintSummary(manifest *domain.Manifest) {
	meta := manifest.Meta

	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, color.CyanString("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(f.out, color.CyanString("║                    Test Separation Summary                    ║"))
	fmt.Fprintln(f.out, color.CyanString("╚═══════════════════════════════════════════════════════════════╝"))
	fmt.Fprintln(f.out)

	rows := [][2]string{
		{"Strategy", meta.Strategy},
		{"Depth Level", meta.DepthLevel},
		{"Groups", fmt.Sprint(meta.Groups)},
		{"Tests", fmt.Sprint(meta.TotalTests)},
		{"Aggregation Keys", fmt.Sprint(meta.TotalKeys)},
		{"Total Estimated Time", formatMillis(meta.TotalCostMillis)},
		{"Spread (max - min)", formatMillis(meta.SpreadMillis)},
	}
	if meta.PrimaryStrategy != "" && meta.PrimaryStrategy != meta.Strategy {
		rows = slices.Insert(rows, 1, [2]string{"Fallback From", meta.PrimaryStrategy})
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ %s │\n", row[0], color.WhiteString("%-27s", row[1]))
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Fprintln(f.out)

	var largest int64
	for _, g := range manifest.Groups {
		largest = max(largest, g.TotalCostMillis)
	}
	for _, g := range manifest.Groups {
		fmt.Fprintf(f.out, "%s %s %s %s\n",
			color.YellowString("%-14s", g.File),
			color.CyanString("%s", bar(g.TotalCostMillis, largest)),
			color.WhiteString("%10s", formatMillis(g.TotalCostMillis)),
			fmt.Sprintf("(%d files, %d keys)", len(g.Files), len(g.Keys)))
	}
	fmt.Fprintln(f.out)
}

// PrintResolution displays which strategy will be used and why
func (f *Formatter) PrintResolution(res *strategy.Resolution) {
	if res.PrimaryErr == nil {
		fmt.Fprintf(f.out, "%s %s\n", color.GreenString("✓ Strategy"), res.Active)
		return
	}
	fmt.Fprintf(f.out, "%s %s: %v\n", color.RedString("✗ Strategy"), res.Primary, res.PrimaryErr)
	for _, a := range res.Attempts {
		if a.Err != nil {
			fmt.Fprintf(f.out, "  %s %s: %v\n", color.RedString("✗ default"), a.Strategy, a.Err)
			continue
		}
		fmt.Fprintf(f.out, "  %s %s\n", color.GreenString("✓ default"), a.Strategy)
	}
}

// PrintCollection prints the collected test files as a tree, optionally with their test cases
func (f *Formatter) PrintCollection(collection *domain.Collection, showTestCases bool) {
	type file struct {
		path  string
		tests []string
		cost  int64
	}
	var files []*file
	index := make(map[string]*file)
	for _, r := range collection.Records {
		entry, ok := index[r.RelativeFilePath]
		if !ok {
			entry = &file{path: r.RelativeFilePath}
			index[r.RelativeFilePath] = entry
			files = append(files, entry)
		}
		if r.TestName != "" {
			entry.tests = append(entry.tests, r.TestName)
		}
		entry.cost += r.EstimatedCostMillis
	}

	fmt.Fprintln(f.out, color.GreenString("Found %d test file(s) using %s:", len(files), collection.Strategy))
	fmt.Fprintln(f.out)

	for i, entry := range files {
		isLastFile := i == len(files)-1
		connector, childPrefix := "├── ", "│   "
		if isLastFile {
			connector, childPrefix = "└── ", "    "
		}
		fmt.Fprintf(f.out, "%s%s %s\n", connector, color.CyanString(entry.path), formatMillis(entry.cost))

		if !showTestCases {
			continue
		}
		if len(entry.tests) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", childPrefix, color.RedString("(no test cases found)"))
			continue
		}
		for j, name := range entry.tests {
			branch := "├── "
			if j == len(entry.tests)-1 {
				branch = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", childPrefix, branch, color.YellowString(name))
		}
	}
}

func bar(value, largest int64) string {
	filled := 0
	if largest > 0 {
		filled = int(value * barWidth / largest)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func formatMillis(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).String()
}

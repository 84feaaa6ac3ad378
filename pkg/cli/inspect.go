package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	aqtable "github.com/aquasecurity/table"
	"github.com/aquasecurity/tml"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/IceeCodee/TRAP-word-cloud/pkg/cli/config"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/model"
	"github.com/IceeCodee/TRAP-word-cloud/pkg/domain/types"
)

const inspectMaxNameWidth = 60

// severityColors maps severity levels to terminal color functions roughly
// matching the word cloud palette.
var severityColors = map[types.Severity]func(a ...any) string{
	types.SeverityVeryHigh: color.New(color.FgRed).SprintFunc(),
	types.SeverityHigh:     color.New(color.FgHiRed).SprintFunc(),
	types.SeverityMedium:   color.New(color.FgMagenta).SprintFunc(),
	types.SeverityLow:      color.New(color.FgCyan).SprintFunc(),
	types.SeverityVeryLow:  color.New(color.FgBlue).SprintFunc(),
	types.SeverityNone:     color.New(color.FgHiBlue).SprintFunc(),
}

func cmdInspect() *cli.Command {
	var catalogCfg config.Catalog
	var limit int

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of rows to list (0 lists all)",
			Value:       20,
			Sources:     cli.EnvVars("TRAPCLOUD_INSPECT_LIMIT"),
			Destination: &limit,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:  "inspect",
		Usage: "Print a summary of the loaded catalog",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := catalogCfg.Configure(ctx)
			if err != nil {
				return err
			}

			rows := repo.Rows(ctx)
			writeInspectReport(os.Stdout, catalogCfg.Path(), rows, int(limit), isTerminal())
			return nil
		},
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func writeInspectReport(w io.Writer, path string, rows []*model.AttackPattern, limit int, isTerminal bool) {
	title := fmt.Sprintf("CAPEC catalog: %s (%d attack patterns)", path, len(rows))
	if isTerminal {
		_ = tml.Fprintf(w, "<underline><bold>%s</bold></underline>\n\n", title)
	} else {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, strings.Repeat("=", len(title)))
		fmt.Fprintln(w)
	}

	listed := rows
	if limit > 0 && limit < len(listed) {
		listed = listed[:limit]
	}

	tw := aqtable.New(w)
	if isTerminal {
		tw.SetHeaderStyle(aqtable.StyleBold)
		tw.SetLineStyle(aqtable.StyleDim)
	}
	tw.SetBorders(true)
	tw.SetRowLines(false)
	tw.SetHeaders("#", "ID", "Name", "Severity", "Likelihood")
	for i, row := range listed {
		severity := row.Severity.String()
		if isTerminal {
			if fn, ok := severityColors[row.Severity]; ok {
				severity = fn(severity)
			}
		}
		tw.AddRow(
			fmt.Sprintf("%d", i),
			row.ID,
			truncate(row.Name, inspectMaxNameWidth),
			severity,
			row.Likelihood.String(),
		)
	}
	tw.Render()

	writeDistributions(w, rows, isTerminal)
}

// writeDistributions prints how severity and likelihood levels are spread
// across the whole catalog, independent of the row listing limit.
func writeDistributions(w io.Writer, rows []*model.AttackPattern, isTerminal bool) {
	severityCounts := make(map[types.Severity]int)
	likelihoodCounts := make(map[types.Likelihood]int)
	for _, row := range rows {
		severityCounts[row.Severity]++
		likelihoodCounts[row.Likelihood]++
	}

	heading := func(s string) {
		if isTerminal {
			_ = tml.Fprintf(w, "\n<bold>%s</bold>\n", s)
		} else {
			fmt.Fprintf(w, "\n%s\n", s)
		}
	}

	heading("Typical Severity distribution:")
	for _, sv := range types.AllSeverities() {
		if n := severityCounts[sv]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", sv.String(), n)
		}
	}
	if n := countUnlisted(severityCounts); n > 0 {
		fmt.Fprintf(w, "  %-10s %d\n", "(none)", n)
	}

	heading("Likelihood of Attack distribution:")
	for _, lh := range types.AllLikelihoods() {
		if n := likelihoodCounts[lh]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", lh.String(), n)
		}
	}
	unlisted := 0
	for lh, n := range likelihoodCounts {
		if !lh.IsValid() {
			unlisted += n
		}
	}
	if unlisted > 0 {
		fmt.Fprintf(w, "  %-10s %d\n", "(none)", unlisted)
	}
}

// countUnlisted sums entries whose severity falls outside the known levels
func countUnlisted(counts map[types.Severity]int) int {
	total := 0
	for sv, n := range counts {
		if !sv.IsValid() {
			total += n
		}
	}
	return total
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocart/cukesvc/internal/domain"
	"github.com/gocart/cukesvc/internal/theme"
)

const (
	iconFailed  = "✗"
	iconOK      = "✓"
	iconSkipped = "-"
	iconWarning = "!"
)

// renderReport writes a human readable summary of report to w
func renderReport(w io.Writer, report *domain.RunReport) {
	fmt.Fprintf(w, "%s %s\n",
		theme.TitleStyle.Render(report.Operation),
		theme.MutedStyle.Render(fmt.Sprintf("run %s, %s", report.RunID, report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))))

	width := 0
	for _, res := range report.Results {
		width = max(width, len(res.Service))
	}

	for _, res := range report.Results {
		name := theme.ServiceStyle.Render(res.Service + strings.Repeat(" ", width-len(res.Service)))

		switch {
		case res.Skipped:
			fmt.Fprintf(w, "  %s %s %s\n", theme.SkippedIconStyle.Render(iconSkipped), name, theme.MutedStyle.Render("skipped"))
		case res.Err != nil:
			fmt.Fprintf(w, "  %s %s %s\n", theme.FailedIconStyle.Render(iconFailed), name, theme.ErrorStyle.Render(res.Err.Error()))
		case res.Handle != nil:
			fmt.Fprintf(w, "  %s %s %s %s\n", theme.OKIconStyle.Render(iconOK), name,
				theme.PIDStyle.Render(fmt.Sprintf("pid %d", res.Handle.PID)),
				theme.LabelStyle.Render("log: "+res.Handle.LogPath))
		default:
			fmt.Fprintf(w, "  %s %s %s\n", theme.OKIconStyle.Render(iconOK), name, theme.NormalStyle.Render("done"))
		}

		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "    %s %s\n", theme.WarningStyle.Render(iconWarning), theme.WarningStyle.Render(warning))
		}
	}

	if report.TornDown != nil {
		fmt.Fprintln(w)
		renderReport(w, report.TornDown)
	}
}

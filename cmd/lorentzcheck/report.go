package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/lorentz/check"
)

// renderReports writes one table row per report.
func renderReports(w io.Writer, reports []check.Report) {
	var data [][]string
	for _, r := range reports {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		data = append(data, []string{
			r.Name,
			fmt.Sprintf("%d", r.Samples),
			fmt.Sprintf("%.3e", r.MaxAbsErr),
			fmt.Sprintf("%.3e", r.MaxRelErr),
			r.Tolerance.String(),
			status,
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"CHECK", "SAMPLES", "MAX ABS", "MAX REL", "TOLERANCE", "RESULT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

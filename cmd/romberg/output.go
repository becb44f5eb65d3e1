package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/born-ml/romberg/internal/catalog"
	"github.com/born-ml/romberg/internal/quadrature"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}

func formatParams(params []float64) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func problemRows(p *problem) [][]string {
	return [][]string{
		{"integrand", p.entry.Name + "  " + p.entry.Description},
		{"method", p.method},
		{"interval", fmt.Sprintf("[%v, %v]", p.a, p.b)},
		{"params", formatParams(p.params)},
	}
}

func infoRows(prefix string, info quadrature.Info) [][]string {
	return [][]string{
		{prefix + "error", formatFloat(info.Err)},
		{prefix + "evaluations", strconv.Itoa(info.NEval)},
		{prefix + "levels", strconv.Itoa(info.Levels)},
		{prefix + "status", fmt.Sprintf("%d (%s)", info.Status, info.Status)},
	}
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// renderPairs prints key/value rows without a header.
func renderPairs(w io.Writer, rows [][]string) {
	table := newTable(w)
	table.SetColumnSeparator("")
	table.AppendBulk(rows)
	table.Render()
}

// renderTable prints the computed rows of the extrapolation table.
func renderTable(w io.Writer, info quadrature.Info) {
	header := []string{"level"}
	for m := 0; m <= info.Levels; m++ {
		header = append(header, fmt.Sprintf("R(n,%d)", m))
	}

	table := newTable(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for n := 0; n <= info.Levels; n++ {
		row := []string{strconv.Itoa(n)}
		for m := 0; m <= info.Levels; m++ {
			if m > n {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatFloat(info.Table.At(n, m), 'g', 12, 64))
		}
		table.Append(row)
	}
	table.Render()
}

func renderStatusTable(w io.Writer) {
	table := newTable(w)
	table.SetHeader([]string{"code", "flags", "summary"})
	for i, msg := range quadrature.StatusMessages {
		s := quadrature.Status(i)
		summary, _, _ := strings.Cut(msg, ".")
		if s.OK() {
			summary = msg
		}
		table.Append([]string{strconv.Itoa(i), s.String(), summary})
	}
	table.Render()
}

func renderCatalog(w io.Writer, entries []catalog.Entry) {
	table := newTable(w)
	table.SetHeader([]string{"name", "integrand", "a", "b", "params", "method"})
	for _, e := range entries {
		method := methodRomberg
		if e.Singular {
			method = methodTanhSinh
		}
		table.Append([]string{
			e.Name,
			e.Description,
			fmt.Sprint(e.A),
			fmt.Sprint(e.B),
			formatParams(e.Params),
			method,
		})
	}
	table.Render()
}

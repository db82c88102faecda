package formatter

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderReport writes a per-file summary table
func RenderReport(w io.Writer, results []*Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Status", "Imports", "Merged"})

	var imports, merged int
	for _, res := range results {
		if res == nil {
			continue
		}
		if res.Err != nil || res.Skipped {
			t.AppendRow(table.Row{res.Path, res.Status(), "-", "-"})
			continue
		}
		t.AppendRow(table.Row{res.Path, res.Status(), res.After, res.Merged})
		imports += res.After
		merged += res.Merged
	}

	t.AppendFooter(table.Row{"Total", "", imports, merged})
	t.Render()
}

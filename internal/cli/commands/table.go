package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/leaplogic/internal/cli/output"
)

// renderTable writes rows as a box table in text mode and as a markdown
// table otherwise.
func renderTable(r *output.Renderer, header table.Row, rows []table.Row) {
	if len(rows) == 0 {
		r.Muted("(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.AppendHeader(header)
	t.AppendRows(rows)

	if r.EffectiveMode() == output.ModeText {
		t.SetStyle(table.StyleLight)
		t.Render()
		return
	}
	t.RenderMarkdown()
}

package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/blocksmith/internal/calendar"
)

// RenderGrid draws a month grid as plain text, one week per line.
//
//	[15]  selected
//	<15>  today
//	 15-  outside min/max bounds
//	  .   day from an adjacent month
func RenderGrid(year int, month time.Month, grid calendar.Grid) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", month, year)
	fmt.Fprintf(&b, "%*s\n", (28+len(title))/2, title)
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	for _, week := range grid.Rows() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, renderCell(c))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, ""), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(c calendar.Cell) string {
	switch {
	case c.OutOfMonth:
		return "  . "
	case c.Selected:
		return fmt.Sprintf("[%2d]", c.Date.Day)
	case c.Disabled:
		return fmt.Sprintf(" %2d-", c.Date.Day)
	case c.Today:
		return fmt.Sprintf("<%2d>", c.Date.Day)
	}
	return fmt.Sprintf(" %2d ", c.Date.Day)
}

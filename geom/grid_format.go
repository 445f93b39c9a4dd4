package geom

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// headerStep is the spacing of the column labels printed by the
// verbose form of Grid.Format.
const headerStep = 5

// Format implements fmt.Formatter. The %v and %s verbs render the grid
// one row per line with each cell as its display string. The %+v form
// additionally labels every row and every fifth column with its
// coordinate, with column labels written vertically above the grid.
//
// Cells of type rune are displayed as characters. Other cells use
// their String method if they have one and fmt's default format
// otherwise.
func (g *Grid[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
	default:
		fmt.Fprintf(f, "%%!%c(*geom.Grid=%v)", verb, g.Bounds())
		return
	}

	labelw := 0
	if f.Flag('+') {
		b := g.Bounds()
		labelw = max(len(strconv.Itoa(b.TopLeft.Y)), len(strconv.Itoa(b.BottomRight.Y-1))) + 1
		g.writeHeader(f, labelw)
	}

	var buf strings.Builder
	for y := g.offset.Y; y < g.offset.Y+len(g.cells); y++ {
		buf.Reset()
		if labelw > 0 {
			fmt.Fprintf(&buf, "%-*d", labelw, y)
		}
		for v := range g.Row(y) {
			buf.WriteString(cellString(v))
		}
		buf.WriteByte('\n')
		io.WriteString(f, buf.String())
	}
}

func (g *Grid[T]) writeHeader(w io.Writer, indent int) {
	labels := make([]string, g.w)
	var height int
	for i := range labels {
		x := g.offset.X + i
		if x%headerStep != 0 {
			continue
		}
		labels[i] = strconv.Itoa(x)
		height = max(height, len(labels[i]))
	}

	var buf strings.Builder
	for line := range height {
		buf.Reset()
		buf.WriteString(strings.Repeat(" ", indent))
		for _, label := range labels {
			c := line - (height - len(label))
			if c < 0 {
				buf.WriteByte(' ')
				continue
			}
			buf.WriteByte(label[c])
		}
		io.WriteString(w, strings.TrimRight(buf.String(), " ")+"\n")
	}
}

func cellString(v any) string {
	switch v := v.(type) {
	case rune:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (g *Grid[T]) String() string {
	return fmt.Sprintf("%v", g)
}

package trace

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const gap = "  "

// table is a left-aligned text table. paint decorates a cell after padding;
// widths are computed on the raw text.
type table struct {
	header []string
	rows   [][]string
	paint  func(row, col int, cell string) string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) widths() []int {
	w := make([]int, len(t.header))
	for i, h := range t.header {
		w[i] = runewidth.StringWidth(h)
	}
	for _, r := range t.rows {
		for i, c := range r {
			if cw := runewidth.StringWidth(c); i < len(w) && cw > w[i] {
				w[i] = cw
			}
		}
	}

	return w
}

// write emits the header (row -1) and every row. The last column is not
// padded, so lines carry no trailing blanks.
func (t *table) write(out io.Writer) error {
	w := t.widths()

	var b strings.Builder
	line := func(row int, cells []string) {
		for i, c := range cells {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := c
			if i < len(cells)-1 {
				cell = runewidth.FillRight(c, w[i])
			}
			if t.paint != nil {
				cell = t.paint(row, i, cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}

	line(-1, t.header)
	for i, r := range t.rows {
		line(i, r)
	}
	_, err := io.WriteString(out, b.String())

	return err
}

package trace

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/dijkstra"
)

// None is printed for an empty unvisited set.
const None = "None"

// Column indexes of the step table.
const (
	colIter = iota
	colCurrent
	colUnvisited
	colVisited
	colUpdates
)

// RenderSteps writes the step table for steps.
func RenderSteps(w io.Writer, steps []dijkstra.Step, st Style) error {
	t := &table{header: []string{"Iter", "Current", "Unvisited", "Visited", "Updates"}}
	for _, s := range steps {
		unvisited := None
		if len(s.Unvisited) > 0 {
			unvisited = strings.Join(s.Unvisited, ", ")
		}
		t.add(
			strconv.Itoa(s.Iteration),
			s.Current,
			unvisited,
			strings.Join(s.Visited, ", "),
			strings.Join(s.Updates, "; "),
		)
	}

	t.paint = func(row, col int, cell string) string {
		switch {
		case row < 0:
			return st.header(cell)
		case col == colCurrent:
			return st.current(cell)
		case col == colVisited:
			return st.visited(cell)
		case col == colUpdates && quiet(steps[row]),
			col == colUnvisited && len(steps[row].Unvisited) == 0:
			return st.muted(cell)
		}

		return cell
	}

	return t.write(w)
}

func quiet(s dijkstra.Step) bool {
	return len(s.Updates) == 0 || s.Updates[0] == dijkstra.NoUpdates
}

// RenderRoute writes the summary of r and its segment table. Node labels
// are taken from g.
func RenderRoute(w io.Writer, g *core.Graph, r *dijkstra.Result, st Style) error {
	if g == nil {
		return dijkstra.ErrNilGraph
	}
	if !r.Found() {
		_, err := fmt.Fprintf(w, "%s\n", st.warn("no driver reachable from "+describe(g, r.Source)))

		return err
	}

	segs, err := r.Segments(g)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s → %s\n", st.header("Route"), describe(g, r.Source), describe(g, r.Target))
	fmt.Fprintf(&b, "%s %s\n", st.header("Path"), strings.Join(r.Path, " → "))
	fmt.Fprintf(&b, "%s %s\n\n", st.header("Distance"), formatLength(r.Distance))
	if _, err = io.WriteString(w, b.String()); err != nil {
		return err
	}
	if len(segs) == 0 {
		return nil
	}

	t := &table{header: []string{"#", "From", "To", "Road", "Length"}}
	for i, s := range segs {
		t.add(strconv.Itoa(i+1), s.From, s.To, s.EdgeID, formatLength(s.Weight))
	}
	t.add("", "", "", "total", formatLength(r.Distance))

	last := len(segs)
	t.paint = func(row, _ int, cell string) string {
		if row < 0 || row == last {
			return st.header(cell)
		}

		return cell
	}

	return t.write(w)
}

// describe renders a node as "Label (ID)", or just the ID.
func describe(g *core.Graph, id string) string {
	n, err := g.Node(id)
	if err != nil || n.Label == "" {
		return id
	}

	return n.Label + " (" + id + ")"
}

func formatLength(d float64) string {
	return strconv.FormatFloat(d, 'f', 2, 64)
}

// RenderNodes lists the nodes of g in declaration order. Riders and drivers
// get the current and visited colors.
func RenderNodes(w io.Writer, g *core.Graph, st Style) error {
	if g == nil {
		return dijkstra.ErrNilGraph
	}

	t := &table{header: []string{"ID", "Role", "X", "Y", "Label"}}
	nodes := g.Nodes()
	for _, n := range nodes {
		t.add(n.ID, string(n.Role), formatCoord(n.X), formatCoord(n.Y), n.Label)
	}
	t.paint = func(row, col int, cell string) string {
		switch {
		case row < 0:
			return st.header(cell)
		case col == 0 && nodes[row].Role == core.RoleOrigin:
			return st.current(cell)
		case col == 0 && nodes[row].Role == core.RoleTarget:
			return st.visited(cell)
		}

		return cell
	}

	return t.write(w)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

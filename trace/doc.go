// Package trace renders a search trace and a chosen route for a terminal.
//
// RenderSteps prints one row per dijkstra.Step: iteration, current node,
// unvisited nodes ("None" when empty), visited nodes and the relaxations of
// that iteration. RenderRoute prints the route summary followed by the
// segment table, or a single line when no driver is reachable.
//
// Colors come from muesli/termenv. A Style built on termenv.Ascii (Plain)
// produces no escape sequences, which is what tests and pipes want. Column
// widths are measured with mattn/go-runewidth on the unstyled text, so
// "∞" and "→" line up the same way in both modes.
package trace

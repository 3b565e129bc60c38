package server

import (
	"io"
	"math"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/dijkstra"
)

type nodeDTO struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Label  string  `json:"label"`
	Avatar string  `json:"avatar,omitempty"`
}

type edgeDTO struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

type graphDTO struct {
	Nodes []nodeDTO `json:"nodes"`
	Edges []edgeDTO `json:"edges"`
}

type stepDTO struct {
	Iteration int                 `json:"iteration"`
	Current   string              `json:"currentNodeId"`
	Unvisited []string            `json:"unvisited"`
	Visited   []string            `json:"visited"`
	Updates   []string            `json:"updates"`
	Distances map[string]*float64 `json:"distances"`
	Previous  map[string]*string  `json:"previous"`
}

type segmentDTO struct {
	Road   string  `json:"road"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

type resultDTO struct {
	Source       string              `json:"source"`
	Path         []string            `json:"path"`
	Distance     float64             `json:"distance"`
	TargetID     *string             `json:"targetId"`
	VisitOrder   []string            `json:"visitOrder"`
	AllDistances map[string]*float64 `json:"allDistances"`
	Previous     map[string]*string  `json:"previous"`
	Steps        []stepDTO           `json:"steps"`
	Segments     []segmentDTO        `json:"segments"`
}

type errorDTO struct {
	Error string `json:"error"`
}

func toNodeDTO(n core.Node) nodeDTO {
	return nodeDTO{ID: n.ID, Type: string(n.Role), X: n.X, Y: n.Y, Label: n.Label, Avatar: n.Avatar}
}

func toGraphDTO(g *core.Graph) graphDTO {
	out := graphDTO{Nodes: []nodeDTO{}, Edges: []edgeDTO{}}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, toNodeDTO(n))
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, edgeDTO{ID: e.ID, Source: e.From, Target: e.To, Weight: e.Weight})
	}

	return out
}

func toResultDTO(r *dijkstra.Result, segs []dijkstra.Segment) resultDTO {
	out := resultDTO{
		Source:       r.Source,
		Path:         r.Path,
		Distance:     r.Distance,
		VisitOrder:   r.VisitOrder,
		AllDistances: distances(r.Distances),
		Previous:     previous(r.Previous),
		Steps:        make([]stepDTO, 0, len(r.Steps)),
		Segments:     make([]segmentDTO, 0, len(segs)),
	}
	if r.Found() {
		t := r.Target
		out.TargetID = &t
	}
	for _, s := range r.Steps {
		out.Steps = append(out.Steps, stepDTO{
			Iteration: s.Iteration,
			Current:   s.Current,
			Unvisited: s.Unvisited,
			Visited:   s.Visited,
			Updates:   s.Updates,
			Distances: distances(s.Distances),
			Previous:  previous(s.Previous),
		})
	}
	for _, s := range segs {
		out.Segments = append(out.Segments, segmentDTO{Road: s.EdgeID, From: s.From, To: s.To, Weight: s.Weight})
	}

	return out
}

// distances maps +Inf to nil, which JSON cannot carry as a number.
func distances(m map[string]float64) map[string]*float64 {
	out := make(map[string]*float64, len(m))
	for id, d := range m {
		d := d
		if math.IsInf(d, 1) {
			out[id] = nil
			continue
		}
		out[id] = &d
	}

	return out
}

// previous maps "no predecessor" to nil.
func previous(m map[string]string) map[string]*string {
	out := make(map[string]*string, len(m))
	for id, p := range m {
		p := p
		if p == "" {
			out[id] = nil
			continue
		}
		out[id] = &p
	}

	return out
}

// EncodeResult writes r indented, in the shape served by GET /api/nearest.
func EncodeResult(w io.Writer, r *dijkstra.Result, segs []dijkstra.Segment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(toResultDTO(r, segs))
}

package roadmap

import "github.com/katalvlaran/ridepath/core"

// mendaloNodes places the Mendalo Darat area on a 800×500 canvas. The main
// road (Jalan Jambi - Muara Bulian) runs east-west along y = 300.
var mendaloNodes = []NodeSpec{
	{ID: "U1", Role: "user", X: 200, Y: 380, Label: "Mahasiswa UNJA", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix"},
	{ID: "U2", Role: "user", X: 550, Y: 220, Label: "Mahasiswa UIN", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Aneka"},
	{ID: "U3", Role: "user", X: 400, Y: 120, Label: "Warga Mendalo Asri", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Grandma"},

	{ID: "D1", Role: "driver", X: 750, Y: 280, Label: "Ojek Simpang Rimbo"},
	{ID: "D2", Role: "driver", X: 600, Y: 320, Label: "Ojek Depan UIN"},
	{ID: "D3", Role: "driver", X: 500, Y: 280, Label: "Ojek Pasar Mendalo"},
	{ID: "D4", Role: "driver", X: 350, Y: 320, Label: "Ojek CitraRaya"},
	{ID: "D5", Role: "driver", X: 220, Y: 280, Label: "Ojek Gerbang UNJA"},
	{ID: "D6", Role: "driver", X: 50, Y: 300, Label: "Ojek Batas Kota"},
	{ID: "D7", Role: "driver", X: 400, Y: 450, Label: "Ojek Perumahan"},
	{ID: "D8", Role: "driver", X: 150, Y: 150, Label: "Ojek Pematang Sulur"},

	{ID: "I1", Role: "intersection", X: 750, Y: 300, Label: "Simpang Rimbo"},
	{ID: "I2", Role: "intersection", X: 550, Y: 300, Label: "Gerbang UIN"},
	{ID: "I3", Role: "intersection", X: 400, Y: 300, Label: "Pasar Mendalo"},
	{ID: "I4", Role: "intersection", X: 200, Y: 300, Label: "Gerbang UNJA"},
	{ID: "I5", Role: "intersection", X: 50, Y: 300, Label: "CitraRaya City"},
	{ID: "I6", Role: "intersection", X: 400, Y: 150, Label: "Mendalo Asri"},
	{ID: "I7", Role: "intersection", X: 200, Y: 450, Label: "Jalan Lingkar"},
	{ID: "I8", Role: "intersection", X: 550, Y: 220, Label: "Dalam Kampus UIN"},
	{ID: "I9", Role: "intersection", X: 200, Y: 380, Label: "Dalam Kampus UNJA"},
}

var mendaloRoads = [][2]string{
	// main road
	{"I1", "I2"},
	{"I2", "I3"},
	{"I3", "I4"},
	{"I4", "I5"},

	// branches
	{"I3", "I6"},
	{"I4", "I7"},
	{"I2", "I8"},
	{"I4", "I9"},

	// riders
	{"U1", "I9"},
	{"U2", "I8"},
	{"U3", "I6"},

	// driver spots
	{"D1", "I1"},
	{"D2", "I2"},
	{"D3", "I3"},
	{"D4", "I3"},
	{"D4", "I4"},
	{"D5", "I4"},
	{"D6", "I5"},
	{"D7", "I7"},
	{"D7", "I3"},
	{"D8", "I5"},
	{"D8", "I6"},
}

// MendaloSpec returns the declarative form of the built-in network. Roads
// carry no explicit weight.
func MendaloSpec() Spec {
	s := Spec{Nodes: append([]NodeSpec(nil), mendaloNodes...)}
	for _, r := range mendaloRoads {
		s.Roads = append(s.Roads, RoadSpec{From: r[0], To: r[1]})
	}

	return s
}

// Mendalo builds the built-in network. Weights default to Euclidean.
// The dataset is static and valid, so construction cannot fail.
func Mendalo(opts ...Option) *core.Graph {
	g, err := Build(MendaloSpec(), opts...)
	if err != nil {
		panic("roadmap: built-in dataset is invalid: " + err.Error())
	}

	return g
}

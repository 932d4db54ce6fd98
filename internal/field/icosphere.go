package field

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Wireframe is an edge list over a shared vertex table, in shell-local coordinates.
type Wireframe struct {
	Vertices []mgl32.Vec3
	Edges    [][2]int
}

var icosaFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

func icosaVertices() [12]mgl32.Vec3 {
	t := (1 + math32.Sqrt(5)) / 2
	return [12]mgl32.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
}

// vertexKey quantizes a position so vertices shared by neighbouring faces collapse to one index.
type vertexKey [3]int32

func keyOf(v mgl32.Vec3) vertexKey {
	const q = 1e4
	return vertexKey{int32(math32.Round(v[0] * q)), int32(math32.Round(v[1] * q)), int32(math32.Round(v[2] * q))}
}

// Icosphere builds an icosahedron of the given radius whose faces are each split into
// (detail+1)^2 triangles, with every vertex pushed out onto the sphere.
// detail 0 gives 12 vertices / 30 edges; detail 1 gives 42 / 120.
func Icosphere(radius float32, detail int) Wireframe {
	if detail < 0 {
		detail = 0
	}
	n := detail + 1
	base := icosaVertices()

	var w Wireframe
	index := make(map[vertexKey]int)
	edges := make(map[[2]int]struct{})

	vertexID := func(v mgl32.Vec3) int {
		v = v.Normalize().Mul(radius)
		k := keyOf(v)
		if id, ok := index[k]; ok {
			return id
		}
		id := len(w.Vertices)
		w.Vertices = append(w.Vertices, v)
		index[k] = id
		return id
	}
	addEdge := func(a, b int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		edges[[2]int{a, b}] = struct{}{}
	}
	addTri := func(a, b, c int) {
		addEdge(a, b)
		addEdge(b, c)
		addEdge(c, a)
	}

	for _, f := range icosaFaces {
		a, b, c := base[f[0]], base[f[1]], base[f[2]]
		grid := make([][]int, n+1)
		for i := 0; i <= n; i++ {
			p := float32(i) / float32(n)
			aj := lerpVec(a, c, p)
			bj := lerpVec(b, c, p)
			rows := n - i
			grid[i] = make([]int, rows+1)
			for j := 0; j <= rows; j++ {
				if rows == 0 {
					grid[i][j] = vertexID(aj)
					continue
				}
				grid[i][j] = vertexID(lerpVec(aj, bj, float32(j)/float32(rows)))
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < 2*(n-i)-1; j++ {
				k := j / 2
				if j%2 == 0 {
					addTri(grid[i][k+1], grid[i+1][k], grid[i][k])
				} else {
					addTri(grid[i][k+1], grid[i+1][k+1], grid[i+1][k])
				}
			}
		}
	}

	w.Edges = make([][2]int, 0, len(edges))
	for e := range edges {
		w.Edges = append(w.Edges, e)
	}
	sort.Slice(w.Edges, func(i, j int) bool {
		if w.Edges[i][0] != w.Edges[j][0] {
			return w.Edges[i][0] < w.Edges[j][0]
		}
		return w.Edges[i][1] < w.Edges[j][1]
	})
	return w
}

func lerpVec(a, b mgl32.Vec3, p float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(p))
}

// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skinrelax/mesh"
	"github.com/katalvlaran/skinrelax/relax"
	"github.com/katalvlaran/skinrelax/weights"
)

// scene is the YAML input: geometry, one weight row per vertex, and the
// lock state of every influence.
type scene struct {
	Points    [][3]float64 `yaml:"points"`
	Triangles []int        `yaml:"triangles"`
	Weights   [][]float64  `yaml:"weights"`
	Locked    []bool       `yaml:"locked"`
}

// result is the YAML output.
type result struct {
	Session  string            `yaml:"session"`
	Kernel   string            `yaml:"kernel"`
	Rounds   int               `yaml:"rounds"`
	Frontier int               `yaml:"frontier"`
	Reverted []int             `yaml:"reverted,omitempty"`
	Weights  map[int][]float64 `yaml:"weights"`
}

var errEmptyScene = errors.New("weightrelax: scene has no weights")

func parseScene(data []byte) (*scene, error) {
	var sc scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("weightrelax: scene: %w", err)
	}
	if len(sc.Weights) == 0 {
		return nil, errEmptyScene
	}
	if len(sc.Points) != len(sc.Weights) {
		return nil, fmt.Errorf("weightrelax: scene: %d points but %d weight rows", len(sc.Points), len(sc.Weights))
	}

	return &sc, nil
}

func loadScene(path string) (*scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("weightrelax: open scene: %w", err)
	}

	return parseScene(data)
}

// build turns the scene into the mesh and store a session runs against.
func (sc *scene) build() (*mesh.Mesh, *weights.MemoryStore, error) {
	pts := make([]r3.Vec, len(sc.Points))
	for i, p := range sc.Points {
		pts[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	m, err := mesh.FromTriangles(pts, sc.Triangles)
	if err != nil {
		return nil, nil, err
	}
	rows := make([]weights.WeightVector, len(sc.Weights))
	for i, w := range sc.Weights {
		rows[i] = w
	}
	st, err := weights.NewMemoryStore(len(rows[0]), rows)
	if err != nil {
		return nil, nil, err
	}

	return m, st, nil
}

// parseTargets reads a comma-separated vertex list. An empty list selects
// every vertex with at least one neighbor.
func parseTargets(s string, m *mesh.Mesh, n int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		var out []int
		for v := 0; v < n; v++ {
			if nbrs, err := m.NeighborIDs(v); err == nil && len(nbrs) > 0 {
				out = append(out, v)
			}
		}
		return out, nil
	}
	var out []int
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("weightrelax: target %q: %w", f, err)
		}
		out = append(out, v)
	}

	return out, nil
}

func newResult(rep *relax.Report) result {
	out := result{
		Session:  rep.SessionID,
		Kernel:   rep.Kernel.String(),
		Rounds:   rep.Rounds,
		Frontier: rep.Frontier,
		Weights:  make(map[int][]float64, len(rep.Weights)),
	}
	for v, w := range rep.Weights {
		out.Weights[v] = w
	}
	for _, w := range rep.Warnings {
		out.Reverted = append(out.Reverted, w.Vertex)
	}

	return out
}

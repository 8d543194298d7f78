// Copyright 2016 The Gomesh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the growing mesh and the active front used by
// the marching triangulator
package msh

import (
	"github.com/cpmech/gomesh/geo"
	"github.com/cpmech/gosl/io"
)

// Triangle holds the three surface-vertex records of one mesh triangle.
// Vertices are immutable after construction, so triangles keep the full
// records rather than indices into the vertex list.
type Triangle struct {
	V [3]*geo.Vertex
}

// Mesh holds the append-only vertex and triangle sequences
type Mesh struct {
	Verts []*geo.Vertex // every projected surface vertex ever produced
	Tris  []Triangle    // emitted triangles, in emission order
}

// AddVert appends a vertex
func (o *Mesh) AddVert(v *geo.Vertex) {
	o.Verts = append(o.Verts, v)
}

// AddTri appends a triangle
func (o *Mesh) AddTri(v0, v1, v2 *geo.Vertex) {
	o.Tris = append(o.Tris, Triangle{V: [3]*geo.Vertex{v0, v1, v2}})
}

// Ntri returns the number of emitted triangles
func (o *Mesh) Ntri() int {
	return len(o.Tris)
}

// String returns a summary line
func (o *Mesh) String() string {
	return io.Sf("mesh: %d vertices, %d triangles", len(o.Verts), len(o.Tris))
}
